package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/terra-clan/algocards/pkg/catalog"
)

// categorySummary is the --json form of one list row
type categorySummary struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Premium       bool   `json:"premium"`
	Sections      int    `json:"sections"`
	Flashcards    int    `json:"flashcards"`
	QuizQuestions int    `json:"quizQuestions"`
}

func newListCmd(a *app) *cobra.Command {
	var freeOnly, premiumOnly, asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog categories",
		Long: `List the categories of the catalog in display order.

Examples:
  # List all categories
  algocards list

  # List premium categories
  algocards list --premium

  # Machine-readable output
  algocards list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := filterCategories(a.catalog.Categories(), freeOnly, premiumOnly)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summarize(cats))
			}
			return a.printList(cmd, cats)
		},
	}

	cmd.Flags().BoolVar(&freeOnly, "free", false, "Only list free categories")
	cmd.Flags().BoolVar(&premiumOnly, "premium", false, "Only list premium categories")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive("free", "premium")

	return cmd
}

func filterCategories(cats []*catalog.Category, freeOnly, premiumOnly bool) []*catalog.Category {
	if !freeOnly && !premiumOnly {
		return cats
	}

	filtered := make([]*catalog.Category, 0, len(cats))
	for _, c := range cats {
		if c.IsPremium() == premiumOnly {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func summarize(cats []*catalog.Category) []categorySummary {
	out := make([]categorySummary, 0, len(cats))
	for _, c := range cats {
		out = append(out, categorySummary{
			ID:            c.ID,
			Slug:          c.Slug,
			Name:          c.Name,
			Premium:       c.IsPremium(),
			Sections:      len(c.LearnContent),
			Flashcards:    len(c.Flashcards),
			QuizQuestions: len(c.QuizQuestions),
		})
	}
	return out
}

func (a *app) printList(cmd *cobra.Command, cats []*catalog.Category) error {
	out := cmd.OutOrStdout()
	if len(cats) == 0 {
		fmt.Fprintln(out, "No categories found")
		return nil
	}

	s := newStyles(out, a.cfg.Output.Color)
	cell := s.r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.muted).
		Headers("SLUG", "NAME", "TIER", "SECTIONS", "CARDS", "QUIZ").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.heading.Padding(0, 1)
			}
			if col == 1 && row >= 0 && row < len(cats) {
				return s.category(cats[row]).Padding(0, 1)
			}
			return cell
		})

	for _, c := range cats {
		t.Row(
			c.Slug,
			c.Name,
			s.tier(c),
			strconv.Itoa(len(c.LearnContent)),
			strconv.Itoa(len(c.Flashcards)),
			strconv.Itoa(len(c.QuizQuestions)),
		)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, s.muted.Render(fmt.Sprintf("%d categories", len(cats))))
	return nil
}
