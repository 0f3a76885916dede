package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/tui/components"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the artworks for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.AddCommand(newCatalogDiffCmd(flags))

	return cmd
}

func runCatalog(cmd *cobra.Command, flags *rootFlags, opts *catalogOptions) error {
	app, err := newAppContext(cmd, flags, "list catalog", false)
	if err != nil {
		return err
	}
	defer app.Close()

	app.log.Debug("listing " + strconv.Itoa(app.catalog.Len()) + " products")

	if opts.jsonOutput {
		return renderCatalogJSON(cmd, app.catalog)
	}
	return renderCatalogTable(cmd, app.catalog, app.settings.Currency, app.settings.ASCII)
}

func renderCatalogTable(cmd *cobra.Command, cat *catalog.Catalog, currency string, ascii bool) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tARTIST\tPRICE\tRATING")

	useUnicode := !ascii && supportsUnicode(cmd.OutOrStdout())

	for _, p := range cat.Products() {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Title,
			p.Artist,
			components.FormatPrice(p.Price, currency),
			formatRating(cat.ReviewsFor(p.ID), useUnicode),
		)
	}

	return writer.Flush()
}

type catalogJSONProduct struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Reviews     int             `json:"reviews"`
}

type catalogJSONPayload struct {
	Version  string               `json:"version"`
	Count    int                  `json:"count"`
	Products []catalogJSONProduct `json:"products"`
	Reviews  []catalog.Review     `json:"reviews"`
}

func renderCatalogJSON(cmd *cobra.Command, cat *catalog.Catalog) error {
	products := cat.Products()
	payload := catalogJSONPayload{
		Version:  "1.0",
		Count:    len(products),
		Products: make([]catalogJSONProduct, len(products)),
		Reviews:  cat.Reviews(),
	}

	for i, p := range products {
		payload.Products[i] = catalogJSONProduct{
			ID:          p.ID,
			Title:       p.Title,
			Artist:      p.Artist,
			Price:       p.Price,
			Image:       p.Image,
			Description: p.Description,
			Reviews:     len(cat.ReviewsFor(p.ID)),
		}
	}
	if payload.Reviews == nil {
		payload.Reviews = []catalog.Review{}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// formatRating renders the mean rating of reviews, or "-" without reviews.
func formatRating(reviews []catalog.Review, useUnicode bool) string {
	if len(reviews) == 0 {
		return "-"
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))

	if useUnicode {
		stars := catalog.Review{Rating: int(math.Round(mean))}.Stars("★", "☆")
		return fmt.Sprintf("%s (%d)", stars, len(reviews))
	}
	return fmt.Sprintf("%.1f/5 (%d)", mean, len(reviews))
}
