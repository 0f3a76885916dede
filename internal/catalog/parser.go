package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/twistedcolors/storefront/internal/validation"
	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

//go:embed catalog.yaml
var builtin []byte

const builtinSource = "builtin:catalog.yaml"

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)

	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. The embedded document
// is covered by tests, so a failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(builtin, builtinSource)
		if err != nil {
			panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Load reads and validates a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, twistederrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML catalog document. source is only used in error
// messages.
func Parse(data []byte, source string) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, twistederrors.NewParseError(source, extractLine(err), err)
	}

	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(doc.Products))
	index := make(map[int]int, len(doc.Products))
	for i, p := range doc.Products {
		if _, exists := index[p.ID]; exists {
			return nil, twistederrors.NewValidationError(fieldForProduct(i, "id"), fmt.Sprintf("duplicate product id %d", p.ID), nil)
		}

		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, twistederrors.NewValidationError(fieldForProduct(i, "price"), fmt.Sprintf("invalid price %q", p.Price), err)
		}
		if price.IsNegative() {
			return nil, twistederrors.NewValidationError(fieldForProduct(i, "price"), "must not be negative", nil)
		}

		index[p.ID] = len(products)
		products = append(products, Product{
			ID:          p.ID,
			Title:       p.Title,
			Price:       price,
			Image:       p.Image,
			Description: p.Description,
			Artist:      p.Artist,
		})
	}

	reviews := make([]Review, 0, len(doc.Reviews))
	for i, r := range doc.Reviews {
		if r.ProductID != 0 {
			if _, ok := index[r.ProductID]; !ok {
				return nil, twistederrors.NewValidationError(fmt.Sprintf("reviews[%d].product_id", i), fmt.Sprintf("references unknown product %d", r.ProductID), nil)
			}
		}
		reviews = append(reviews, Review(r))
	}

	return &Catalog{products: products, index: index, reviews: reviews}, nil
}

func fieldForProduct(index int, field string) string {
	return fmt.Sprintf("products[%d].%s", index, field)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
