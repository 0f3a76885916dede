package storefront

import (
	"fmt"
	"strings"

	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

// Section is the top-level view currently on screen.
type Section int

const (
	SectionHome Section = iota
	SectionShop
	SectionProduct
	SectionAbout
	SectionContact
)

var sectionNames = map[Section]string{
	SectionHome:    "home",
	SectionShop:    "shop",
	SectionProduct: "product",
	SectionAbout:   "about",
	SectionContact: "contact",
}

// String returns the lower-case section name.
func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Title returns the label used in the navigation bar.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionShop:
		return "Shop"
	case SectionProduct:
		return "Product"
	case SectionAbout:
		return "About"
	case SectionContact:
		return "Contact"
	default:
		return s.String()
	}
}

// Sections returns the sections reachable from the navigation bar, in menu
// order. Product detail is reached by selecting a product, not from the menu.
func Sections() []Section {
	return []Section{SectionHome, SectionShop, SectionAbout, SectionContact}
}

// ParseSection converts a section name into a Section.
func ParseSection(s string) (Section, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "detail" {
		name = "product"
	}
	for section, candidate := range sectionNames {
		if candidate == name {
			return section, nil
		}
	}
	return SectionHome, twistederrors.NewValidationError("section", fmt.Sprintf("unknown section %q", s), nil)
}
