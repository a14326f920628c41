package catalog

import (
	"reflect"
	"sync"
	"testing"
)

func TestDefaultCatalogLoaded(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	if Default().Len() != len(cats) {
		t.Errorf("Len() = %d, want %d", Default().Len(), len(cats))
	}

	for _, c := range cats {
		t.Logf("  %s (%s): premium=%v sections=%d flashcards=%d quiz=%d",
			c.ID, c.Name, c.IsPremium(), len(c.LearnContent), len(c.Flashcards), len(c.QuizQuestions))
	}
}

func TestCategoryKeysUnique(t *testing.T) {
	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	for _, c := range Categories() {
		if ids[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		if slugs[c.Slug] {
			t.Errorf("duplicate category slug %q", c.Slug)
		}
		ids[c.ID] = true
		slugs[c.Slug] = true
	}
}

func TestItemIDsUniqueWithinCategory(t *testing.T) {
	for _, c := range Categories() {
		sections := make(map[string]bool)
		for _, s := range c.LearnContent {
			if sections[s.ID] {
				t.Errorf("%s: duplicate learn section id %q", c.ID, s.ID)
			}
			sections[s.ID] = true
		}

		cards := make(map[string]bool)
		for _, f := range c.Flashcards {
			if cards[f.ID] {
				t.Errorf("%s: duplicate flashcard id %q", c.ID, f.ID)
			}
			cards[f.ID] = true
		}

		questions := make(map[string]bool)
		for _, q := range c.QuizQuestions {
			if questions[q.ID] {
				t.Errorf("%s: duplicate quiz question id %q", c.ID, q.ID)
			}
			questions[q.ID] = true
		}
	}
}

func TestLookupFindsEveryCategory(t *testing.T) {
	for _, c := range Categories() {
		if got := GetCategoryBySlug(c.Slug); got != c {
			t.Errorf("GetCategoryBySlug(%q) = %v, want %s", c.Slug, got, c.ID)
		}
		if got := GetCategoryByID(c.ID); got != c {
			t.Errorf("GetCategoryByID(%q) = %v, want %s", c.ID, got, c.ID)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	tests := []string{"__does_not_exist__", "nonexistent-topic", "", "Two-Pointers", " two-pointers", "two-pointers "}
	for _, key := range tests {
		if got := GetCategoryBySlug(key); got != nil {
			t.Errorf("GetCategoryBySlug(%q) = %s, want nil", key, got.ID)
		}
		if got := GetCategoryByID(key); got != nil {
			t.Errorf("GetCategoryByID(%q) = %s, want nil", key, got.ID)
		}
	}
}

func TestQuizAnswersValid(t *testing.T) {
	for _, c := range Categories() {
		for _, q := range c.QuizQuestions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				t.Errorf("%s/%s: correctAnswer %d out of range for %d options", c.ID, q.ID, q.CorrectAnswer, len(q.Options))
			}
			if _, ok := q.CorrectOption(); !ok {
				t.Errorf("%s/%s: CorrectOption reported no option", c.ID, q.ID)
			}
		}
	}
}

func TestQuizHasFourOptions(t *testing.T) {
	for _, c := range Categories() {
		for _, q := range c.QuizQuestions {
			if len(q.Options) != 4 {
				t.Errorf("%s/%s: expected 4 options, got %d", c.ID, q.ID, len(q.Options))
			}
		}
	}
}

func TestRequiredFieldsNonEmpty(t *testing.T) {
	for _, c := range Categories() {
		if c.ID == "" || c.Name == "" || c.Slug == "" || c.Description == "" {
			t.Errorf("category %q has an empty id, name, slug or description", c.ID)
		}
		for _, f := range c.Flashcards {
			if f.Front == "" || f.Back == "" {
				t.Errorf("%s/%s: flashcard front/back must not be empty", c.ID, f.ID)
			}
		}
		for _, q := range c.QuizQuestions {
			if q.Question == "" || q.Explanation == "" {
				t.Errorf("%s/%s: question/explanation must not be empty", c.ID, q.ID)
			}
		}
	}
}

func TestLookupIsPure(t *testing.T) {
	before := Categories()
	snapshot := make([]Category, len(before))
	for i, c := range before {
		snapshot[i] = *c
	}

	first := GetCategoryBySlug("merge-intervals")
	second := GetCategoryBySlug("merge-intervals")
	if first == nil || !reflect.DeepEqual(first, second) {
		t.Fatal("GetCategoryBySlug returned different results for the same slug")
	}
	if !reflect.DeepEqual(GetCategoryByID("tree-bfs"), GetCategoryByID("tree-bfs")) {
		t.Fatal("GetCategoryByID returned different results for the same id")
	}

	after := Categories()
	if len(after) != len(before) {
		t.Fatalf("catalog size changed: %d -> %d", len(before), len(after))
	}
	for i, c := range after {
		if c != before[i] {
			t.Errorf("category %d changed identity", i)
		}
		if !reflect.DeepEqual(*c, snapshot[i]) {
			t.Errorf("category %s changed content", c.ID)
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0], cats[1] = cats[1], cats[0]

	if got := Categories()[0]; got.ID != "sliding-window" {
		t.Errorf("reordering the returned slice leaked into the catalog: first = %s", got.ID)
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range Categories() {
				if GetCategoryBySlug(c.Slug) != c || GetCategoryByID(c.ID) != c {
					t.Errorf("concurrent lookup mismatch for %s", c.ID)
				}
			}
		}()
	}
	wg.Wait()
}

func TestTwoPointersCategory(t *testing.T) {
	c := GetCategoryBySlug("two-pointers")
	if c == nil {
		t.Fatal("two-pointers category not found")
	}
	if c.Name != "Two Pointers" {
		t.Errorf("expected name 'Two Pointers', got '%s'", c.Name)
	}
	if len(c.Flashcards) != 30 {
		t.Errorf("expected 30 flashcards, got %d", len(c.Flashcards))
	}
	if len(c.QuizQuestions) != 20 {
		t.Errorf("expected 20 quiz questions, got %d", len(c.QuizQuestions))
	}
}

func TestCyclicSortIsPremium(t *testing.T) {
	c := GetCategoryByID("cyclic-sort")
	if c == nil {
		t.Fatal("cyclic-sort category not found")
	}
	if !c.IsPremium() {
		t.Error("expected cyclic-sort to be premium")
	}
}

func TestSlidingWindowFirstAnswer(t *testing.T) {
	c := GetCategoryBySlug("sliding-window")
	if c == nil {
		t.Fatal("sliding-window category not found")
	}
	if len(c.QuizQuestions) == 0 {
		t.Fatal("sliding-window has no quiz questions")
	}
	if got := c.QuizQuestions[0].CorrectAnswer; got != 1 {
		t.Errorf("expected first correctAnswer 1, got %d", got)
	}
}

func TestFreeCategories(t *testing.T) {
	var free []string
	for _, c := range Categories() {
		if !c.IsPremium() {
			free = append(free, c.ID)
		}
	}

	want := []string{"sliding-window", "two-pointers", "fast-slow-pointers", "merge-intervals"}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("free categories = %v, want %v", free, want)
	}
}

func TestLearnContentCodeExamples(t *testing.T) {
	c := GetCategoryBySlug("sliding-window")
	if c == nil {
		t.Fatal("sliding-window category not found")
	}
	if c.LearnContent[0].HasCodeExample() {
		t.Errorf("expected %s to have no code example", c.LearnContent[0].ID)
	}
	if !c.LearnContent[1].HasCodeExample() {
		t.Errorf("expected %s to have a code example", c.LearnContent[1].ID)
	}
}

func TestNewKeepsFirstDuplicate(t *testing.T) {
	first := &Category{ID: "a", Slug: "x", Name: "first"}
	second := &Category{ID: "a", Slug: "y", Name: "second"}
	third := &Category{ID: "b", Slug: "x", Name: "third"}

	c := New([]*Category{first, nil, second, third})
	if c.Len() != 3 {
		t.Fatalf("expected 3 categories, got %d", c.Len())
	}
	if got := c.GetCategoryByID("a"); got != first {
		t.Errorf("GetCategoryByID(a) = %s, want first", got.Name)
	}
	if got := c.GetCategoryBySlug("x"); got != first {
		t.Errorf("GetCategoryBySlug(x) = %s, want first", got.Name)
	}
	if got := c.GetCategoryBySlug("y"); got != second {
		t.Errorf("GetCategoryBySlug(y) = %v, want second", got)
	}
	if got := c.GetCategoryByID("b"); got != third {
		t.Errorf("GetCategoryByID(b) = %v, want third", got)
	}
}

func TestIDAndSlugIndependent(t *testing.T) {
	cat := &Category{ID: "dp", Slug: "dynamic-programming"}
	c := New([]*Category{cat})

	if c.GetCategoryByID("dynamic-programming") != nil {
		t.Error("GetCategoryByID matched on slug")
	}
	if c.GetCategoryBySlug("dp") != nil {
		t.Error("GetCategoryBySlug matched on id")
	}
	if c.GetCategoryByID("dp") != cat || c.GetCategoryBySlug("dynamic-programming") != cat {
		t.Error("lookup by own key failed")
	}
}

func TestCorrectOptionOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		q      QuizQuestion
		want   string
		wantOK bool
	}{
		{"valid", QuizQuestion{Options: []string{"a", "b"}, CorrectAnswer: 1}, "b", true},
		{"negative", QuizQuestion{Options: []string{"a", "b"}, CorrectAnswer: -1}, "", false},
		{"too large", QuizQuestion{Options: []string{"a", "b"}, CorrectAnswer: 2}, "", false},
		{"no options", QuizQuestion{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.q.CorrectOption()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CorrectOption() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsPremium(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name string
		c    *Category
		want bool
	}{
		{"absent", &Category{}, false},
		{"false", &Category{Premium: &no}, false},
		{"true", &Category{Premium: &yes}, true},
		{"nil category", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsPremium(); got != tt.want {
				t.Errorf("IsPremium() = %v, want %v", got, tt.want)
			}
		})
	}
}
