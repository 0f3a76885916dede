package shop

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/tui/components"
)

// productItem adapts a catalog product to the gallery list.
type productItem struct {
	product  catalog.Product
	currency string
	sep      string
}

func (i productItem) Title() string { return i.product.Title }

func (i productItem) Description() string {
	return i.product.Artist + " " + i.sep + " " + components.FormatPrice(i.product.Price, i.currency)
}

// FilterValue matches on title and artist.
func (i productItem) FilterValue() string { return i.product.Title + " " + i.product.Artist }

func galleryItems(products []catalog.Product, currency, sep string) []list.Item {
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{product: p, currency: currency, sep: sep})
	}
	return items
}
