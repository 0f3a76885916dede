package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a purchasable artwork. Products are defined when the catalog is
// loaded and never change afterwards.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Artist      string          `json:"artist"`
}

// String renders a short human label such as "Neon Dreams by Mara Vey".
func (p Product) String() string {
	if p.Artist == "" {
		return p.Title
	}
	return fmt.Sprintf("%s by %s", p.Title, p.Artist)
}

// Review is a customer testimonial. ProductID is zero for shop-wide reviews.
type Review struct {
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	ProductID int    `json:"product_id,omitempty"`
}

// Stars renders the rating as filled and empty stars.
func (r Review) Stars(filled, empty string) string {
	out := ""
	for i := 1; i <= 5; i++ {
		if i <= r.Rating {
			out += filled
		} else {
			out += empty
		}
	}
	return out
}

// document is the on-disk YAML shape of a catalog.
type document struct {
	Products []productDoc `yaml:"products" validate:"required,min=1,dive"`
	Reviews  []reviewDoc  `yaml:"reviews" validate:"omitempty,dive"`
}

type productDoc struct {
	ID          int    `yaml:"id" validate:"gt=0"`
	Title       string `yaml:"title" validate:"required,max=120"`
	Price       string `yaml:"price" validate:"required"`
	Image       string `yaml:"image" validate:"required,image_ref"`
	Description string `yaml:"description"`
	Artist      string `yaml:"artist" validate:"required"`
}

type reviewDoc struct {
	Author    string `yaml:"author" validate:"required"`
	Rating    int    `yaml:"rating" validate:"min=1,max=5"`
	Text      string `yaml:"text" validate:"required"`
	ProductID int    `yaml:"product_id" validate:"min=0"`
}
