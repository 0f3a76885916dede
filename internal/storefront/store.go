package storefront

import (
	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/logger"
)

// Store owns the current State for one session. It is not safe for
// concurrent use; the event loop is its only writer.
type Store struct {
	catalog *catalog.Catalog
	state   State
	log     *logger.Logger
}

// NewStore creates a store at the initial state. A nil logger discards.
func NewStore(cat *catalog.Catalog, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		catalog: cat,
		state:   Initial(),
		log:     log.With("component", "store"),
	}
}

// Catalog returns the reference data the store validates actions against.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Dispatch reduces a against the current state. On error the state is kept
// and the error is returned for display.
func (s *Store) Dispatch(a Action) error {
	next, err := Reduce(s.catalog, s.state, a)
	if err != nil {
		s.log.WithFields(map[string]any{
			"action":  actionName(a),
			"section": s.state.View.Section.String(),
		}).Warn("action rejected: " + err.Error())
		return err
	}

	s.state = next
	s.log.WithFields(map[string]any{
		"action":     actionName(a),
		"section":    next.View.Section.String(),
		"cart_lines": next.Cart.Len(),
		"cart_items": next.Cart.ItemCount(),
		"cart_total": next.Cart.Total().StringFixed(2),
		"cart_open":  next.View.CartOpen,
	}).Debug("action applied")

	if _, ok := a.(SubmitContact); ok {
		// No backend exists for the form; acknowledging is the whole effect.
		s.log.Info("contact form acknowledged")
	}

	return nil
}

func actionName(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.Name()
}
