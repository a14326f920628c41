// Package cli implements the algocards command line tool for browsing the
// study catalog from a terminal.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/terra-clan/algocards/internal/config"
	"github.com/terra-clan/algocards/pkg/catalog"
)

// app carries state shared by all subcommands
type app struct {
	cfg        *config.Config
	catalogDir string
	catalog    *catalog.Catalog
}

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "algocards",
		Short: "Browse the algocards study catalog",
		Long: `algocards - study catalog inspector

Lists the categories of the built-in catalog and prints their tutorials,
flashcards and quiz questions. Content authors can point it at a directory
of category YAML files to preview edits.

Examples:
  # List all categories
  algocards list

  # Only the free ones, as JSON
  algocards list --free --json

  # Print one category
  algocards show two-pointers

  # Preview a content directory
  algocards --catalog-dir ./content show sliding-window`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadCatalog()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.catalogDir, "catalog-dir", cfg.Catalog.Dir,
		"directory of category YAML files (default is the built-in catalog)")

	// Add subcommands
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))

	return rootCmd
}

func (a *app) loadCatalog() error {
	if a.catalogDir == "" {
		a.catalog = catalog.Default()
		return nil
	}

	c, err := catalog.LoadDir(a.catalogDir)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	slog.Info("catalog loaded from directory", "dir", a.catalogDir, "categories", c.Len())
	a.catalog = c
	return nil
}
