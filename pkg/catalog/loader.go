package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir loads a catalog from the category YAML files in dir.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path %q is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// MustLoadFS is like LoadFS but panics if the content cannot be loaded.
func MustLoadFS(fsys fs.FS) *Catalog {
	c, err := LoadFS(fsys)
	if err != nil {
		panic("algocards: load catalog: " + err.Error())
	}
	return c
}

// LoadFS loads one category from every *.yaml / *.yml file in the root of
// fsys. Categories are ordered by file name, so files are named
// "NN-<slug>.yaml".
func LoadFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir: %w", err)
	}

	var categories []*Category
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		cat, err := loadCategory(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		slog.Debug("category loaded", "slug", cat.Slug, "premium", cat.IsPremium(),
			"sections", len(cat.LearnContent),
			"flashcards", len(cat.Flashcards),
			"quiz_questions", len(cat.QuizQuestions))

		categories = append(categories, cat)
	}

	slog.Debug("catalog loaded", "categories", len(categories))
	return New(categories), nil
}

// loadCategory parses a single category file
func loadCategory(fsys fs.FS, name string) (*Category, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cf categoryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty category file")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cf.ID == "" {
		return nil, fmt.Errorf("category id is required")
	}
	if cf.Slug == "" {
		return nil, fmt.Errorf("category slug is required")
	}

	return cf.toCategory(), nil
}

// --- YAML file structs ---

// categoryFile represents the YAML structure of a category file
type categoryFile struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Slug          string             `yaml:"slug"`
	Description   string             `yaml:"description"`
	Icon          string             `yaml:"icon"`
	Color         string             `yaml:"color"`
	ColorDark     string             `yaml:"color_dark"`
	Premium       *bool              `yaml:"premium"`
	LearnContent  []learnSectionFile `yaml:"learn_content"`
	Flashcards    []flashcardFile    `yaml:"flashcards"`
	QuizQuestions []quizQuestionFile `yaml:"quiz_questions"`
}

type learnSectionFile struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Content     string  `yaml:"content"`
	CodeExample *string `yaml:"code_example"`
}

type flashcardFile struct {
	ID    string `yaml:"id"`
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

type quizQuestionFile struct {
	ID            string   `yaml:"id"`
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
}

func (cf *categoryFile) toCategory() *Category {
	cat := &Category{
		ID:            cf.ID,
		Name:          cf.Name,
		Slug:          cf.Slug,
		Description:   cf.Description,
		Icon:          cf.Icon,
		Color:         cf.Color,
		ColorDark:     cf.ColorDark,
		Premium:       cf.Premium,
		LearnContent:  make([]LearnSection, 0, len(cf.LearnContent)),
		Flashcards:    make([]Flashcard, 0, len(cf.Flashcards)),
		QuizQuestions: make([]QuizQuestion, 0, len(cf.QuizQuestions)),
	}

	for _, s := range cf.LearnContent {
		cat.LearnContent = append(cat.LearnContent, LearnSection{
			ID:          s.ID,
			Title:       s.Title,
			Content:     s.Content,
			CodeExample: s.CodeExample,
		})
	}
	for _, f := range cf.Flashcards {
		cat.Flashcards = append(cat.Flashcards, Flashcard{
			ID:    f.ID,
			Front: f.Front,
			Back:  f.Back,
		})
	}
	for _, q := range cf.QuizQuestions {
		cat.QuizQuestions = append(cat.QuizQuestions, QuizQuestion{
			ID:            q.ID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return cat
}
