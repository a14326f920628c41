package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/terra-clan/algocards/pkg/catalog"
)

// ErrCategoryNotFound is returned by show for an unknown slug or id
var ErrCategoryNotFound = errors.New("category not found")

func newShowCmd(a *app) *cobra.Command {
	var byID, asJSON bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print one category with its tutorial, flashcards and quiz",
		Long: `Print a category: its learn sections and code examples, every
flashcard, and every quiz question with the correct option marked.

Examples:
  # Show by slug
  algocards show two-pointers

  # Look up by id instead of slug
  algocards show --id cyclic-sort

  # Full record as JSON
  algocards show merge-intervals --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var c *catalog.Category
			if byID {
				c = a.catalog.GetCategoryByID(key)
			} else {
				c = a.catalog.GetCategoryBySlug(key)
			}
			if c == nil {
				return fmt.Errorf("%w: %s", ErrCategoryNotFound, key)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			a.printCategory(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as a category id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the category record as JSON")

	return cmd
}

func (a *app) printCategory(out io.Writer, c *catalog.Category) {
	s := newStyles(out, a.cfg.Output.Color)

	fmt.Fprintf(out, "%s  %s\n", s.category(c).Render(c.Name), s.muted.Render(c.Slug+" · ")+s.tier(c))
	if c.Description != "" {
		fmt.Fprintln(out, c.Description)
	}

	if len(c.LearnContent) > 0 {
		fmt.Fprintf(out, "\n%s\n", s.heading.Render("Learn"))
		for i, sec := range c.LearnContent {
			fmt.Fprintf(out, "\n%d. %s\n", i+1, s.heading.Render(sec.Title))
			fmt.Fprintln(out, indent(sec.Content, "   "))
			if sec.HasCodeExample() {
				fmt.Fprintln(out, indent(s.code.Render(*sec.CodeExample), "   "))
			}
		}
	}

	if len(c.Flashcards) > 0 {
		fmt.Fprintf(out, "\n%s\n", s.heading.Render(fmt.Sprintf("Flashcards (%d)", len(c.Flashcards))))
		for _, f := range c.Flashcards {
			fmt.Fprintf(out, "\n • %s\n", f.Front)
			fmt.Fprintln(out, indent(s.muted.Render(f.Back), "   "))
		}
	}

	if len(c.QuizQuestions) > 0 {
		fmt.Fprintf(out, "\n%s\n", s.heading.Render(fmt.Sprintf("Quiz (%d)", len(c.QuizQuestions))))
		for i, q := range c.QuizQuestions {
			fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				line := fmt.Sprintf("%c) %s", 'A'+j, opt)
				if j == q.CorrectAnswer {
					line = s.correct.Render(line + " ✓")
				}
				fmt.Fprintln(out, "   "+line)
			}
			if q.Explanation != "" {
				fmt.Fprintln(out, indent(s.muted.Render(q.Explanation), "   "))
			}
		}
	}

	if len(c.LearnContent) == 0 && len(c.Flashcards) == 0 && len(c.QuizQuestions) == 0 {
		fmt.Fprintf(out, "\n%s\n", s.muted.Render("No content yet"))
	}
}
