package catalog

// Category is one topic area (e.g. "Sliding Window") bundling a tutorial,
// flashcards and a quiz.
type Category struct {
	ID            string         `json:"id"`   // "sliding-window"
	Name          string         `json:"name"` // "Sliding Window"
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Icon          string         `json:"icon"`      // icon asset name, opaque here
	Color         string         `json:"color"`     // hex, light theme
	ColorDark     string         `json:"colorDark"` // hex, dark theme
	Premium       *bool          `json:"premium,omitempty"`
	LearnContent  []LearnSection `json:"learnContent"`
	Flashcards    []Flashcard    `json:"flashcards"`
	QuizQuestions []QuizQuestion `json:"quizQuestions"`
}

// IsPremium reports whether the category is paywalled. An absent flag means free.
func (c *Category) IsPremium() bool {
	return c != nil && c.Premium != nil && *c.Premium
}

// LearnSection is one titled block of tutorial prose.
type LearnSection struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	CodeExample *string `json:"codeExample,omitempty"`
}

// HasCodeExample reports whether the section carries a code sample.
func (s *LearnSection) HasCodeExample() bool {
	return s.CodeExample != nil && *s.CodeExample != ""
}

// Flashcard is a prompt/answer pair.
type Flashcard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer is a zero-based
// index into Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// CorrectOption returns the text of the correct option, or false when
// CorrectAnswer does not index Options.
func (q *QuizQuestion) CorrectOption() (string, bool) {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return "", false
	}
	return q.Options[q.CorrectAnswer], true
}
