// Package storefront holds the storefront's application state and the single
// update function that moves it forward. Rendering layers dispatch actions and
// read State; they never change it directly.
package storefront

import (
	"errors"
	"fmt"

	"github.com/twistedcolors/storefront/internal/catalog"
	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

// ErrNoSelection is returned when navigating to the product view without
// choosing a product first.
var ErrNoSelection = errors.New("no product selected")

// Reduce applies a to s and returns the next state. s is never modified; when
// an error is returned the first result is s unchanged.
func Reduce(cat *catalog.Catalog, s State, a Action) (State, error) {
	switch a := a.(type) {
	case Navigate:
		if a.Section == SectionProduct {
			return s, ErrNoSelection
		}
		if _, ok := sectionNames[a.Section]; !ok {
			return s, twistederrors.NewValidationError("section", fmt.Sprintf("unknown section %d", int(a.Section)), nil)
		}
		s.View.Section = a.Section
		s.View.Selected = nil
		return s, nil

	case SelectProduct:
		p, ok := cat.Get(a.ProductID)
		if !ok {
			return s, twistederrors.NewUnknownProductError(a.ProductID)
		}
		s.View.Selected = &p
		s.View.Section = SectionProduct
		return s, nil

	case AddItem:
		p, ok := cat.Get(a.ProductID)
		if !ok {
			return s, twistederrors.NewUnknownProductError(a.ProductID)
		}
		s.Cart = s.Cart.Add(p)
		s.View.CartOpen = true
		return s, nil

	case RemoveItem:
		s.Cart = s.Cart.Remove(a.ProductID)
		return s, nil

	case ChangeQuantity:
		s.Cart = s.Cart.ChangeQuantity(a.ProductID, a.Delta)
		return s, nil

	case ClearCart:
		s.Cart = s.Cart.Clear()
		return s, nil

	case ToggleCart:
		s.View.CartOpen = !s.View.CartOpen
		return s, nil

	case OpenCart:
		s.View.CartOpen = true
		return s, nil

	case CloseCart:
		s.View.CartOpen = false
		return s, nil

	case SetContactField:
		form, err := s.Contact.Set(a.Field, a.Value)
		if err != nil {
			return s, err
		}
		s.Contact = form
		return s, nil

	case SubmitContact:
		if err := s.Contact.Validate(); err != nil {
			return s, err
		}
		s.Contact = s.Contact.Reset()
		s.Acknowledged = true
		return s, nil

	case DismissAcknowledgement:
		s.Acknowledged = false
		return s, nil

	case nil:
		return s, fmt.Errorf("nil action")

	default:
		return s, fmt.Errorf("unsupported action %T", a)
	}
}
