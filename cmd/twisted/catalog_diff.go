package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/pkg/diff"
)

func newCatalogDiffCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <catalog-file>",
		Short: "Show how a catalog file differs from the active catalog",
		Long: `Compare a catalog file with the active catalog (the built-in one, or --catalog when given).
Both are validated first, so the diff only ever shows loadable data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogDiff(cmd, flags, args[0])
		},
	}

	return cmd
}

func runCatalogDiff(cmd *cobra.Command, flags *rootFlags, path string) error {
	app, err := newAppContext(cmd, flags, "diff catalog", false)
	if err != nil {
		return err
	}
	defer app.Close()

	other, err := catalog.Load(path)
	if err != nil {
		return newCommandError("diff catalog", "loading "+path, err, "Run 'twisted --catalog "+path+" catalog' to see the validation error in context.")
	}

	activeLabel := "built-in"
	if app.settings.CatalogPath != "" {
		activeLabel = app.settings.CatalogPath
	}

	out, stats := diff.Lines(catalogText(app.catalog), catalogText(other), activeLabel, path)
	app.log.WithFields(map[string]any{"added": stats.Added, "removed": stats.Removed}).Debug("catalog diff computed")

	if !stats.Changed() {
		fmt.Fprintln(cmd.OutOrStdout(), "Catalogs are identical.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s lines\n", stats)
	return nil
}

// catalogText renders a catalog one record per line in a stable order so
// that a line diff shows product-level changes.
func catalogText(cat *catalog.Catalog) string {
	var b strings.Builder
	for _, p := range cat.Products() {
		fmt.Fprintf(&b, "product %d | %s | %s | %s | %s\n", p.ID, p.Title, p.Artist, p.Price.StringFixed(2), p.Image)
		if p.Description != "" {
			fmt.Fprintf(&b, "product %d description | %s\n", p.ID, p.Description)
		}
	}
	for _, r := range cat.Reviews() {
		target := "shop"
		if r.ProductID != 0 {
			target = fmt.Sprintf("product %d", r.ProductID)
		}
		fmt.Fprintf(&b, "review %s | %s | %d | %s\n", target, r.Author, r.Rating, r.Text)
	}
	return b.String()
}
