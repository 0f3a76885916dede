package storefront

import "github.com/twistedcolors/storefront/internal/contact"

// Action is a user intent applied to State by Reduce.
type Action interface {
	// Name identifies the action in logs.
	Name() string
}

// Navigate switches to another section and drops any product selection.
type Navigate struct {
	Section Section
}

// SelectProduct opens the detail view for a catalog product.
type SelectProduct struct {
	ProductID int
}

// AddItem puts one unit of a product in the cart and shows the cart.
type AddItem struct {
	ProductID int
}

// RemoveItem deletes a product's line from the cart.
type RemoveItem struct {
	ProductID int
}

// ChangeQuantity adjusts a cart line by Delta units.
type ChangeQuantity struct {
	ProductID int
	Delta     int
}

// ClearCart empties the cart.
type ClearCart struct{}

// ToggleCart flips cart overlay visibility.
type ToggleCart struct{}

// OpenCart shows the cart overlay.
type OpenCart struct{}

// CloseCart hides the cart overlay.
type CloseCart struct{}

// SetContactField stores one contact form input.
type SetContactField struct {
	Field contact.Field
	Value string
}

// SubmitContact validates the contact form and acknowledges it.
type SubmitContact struct{}

// DismissAcknowledgement hides the contact acknowledgement.
type DismissAcknowledgement struct{}

func (Navigate) Name() string               { return "navigate" }
func (SelectProduct) Name() string          { return "select_product" }
func (AddItem) Name() string                { return "add_item" }
func (RemoveItem) Name() string             { return "remove_item" }
func (ChangeQuantity) Name() string         { return "change_quantity" }
func (ClearCart) Name() string              { return "clear_cart" }
func (ToggleCart) Name() string             { return "toggle_cart" }
func (OpenCart) Name() string               { return "open_cart" }
func (CloseCart) Name() string              { return "close_cart" }
func (SetContactField) Name() string        { return "set_contact_field" }
func (SubmitContact) Name() string          { return "submit_contact" }
func (DismissAcknowledgement) Name() string { return "dismiss_acknowledgement" }
