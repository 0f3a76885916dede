package storefront

import (
	"github.com/twistedcolors/storefront/internal/cart"
	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/contact"
)

// ViewState is what the visitor is looking at.
type ViewState struct {
	Section Section
	// Selected is set only while Section is SectionProduct and always points
	// at a product from the catalog.
	Selected *catalog.Product
	CartOpen bool
}

// State is the whole application state driven by Reduce.
type State struct {
	View    ViewState
	Cart    cart.Cart
	Contact contact.Form
	// Acknowledged is true while the contact acknowledgement is on screen.
	Acknowledged bool
}

// Initial returns the state a fresh session starts in.
func Initial() State {
	return State{
		View: ViewState{Section: SectionHome},
		Cart: cart.New(),
	}
}

// SelectedProduct returns the product shown in the detail view, if any.
func (s State) SelectedProduct() (catalog.Product, bool) {
	if s.View.Section != SectionProduct || s.View.Selected == nil {
		return catalog.Product{}, false
	}
	return *s.View.Selected, true
}
