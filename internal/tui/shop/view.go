package shop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/contact"
	"github.com/twistedcolors/storefront/internal/storefront"
	"github.com/twistedcolors/storefront/internal/tui/components"
)

const (
	brandName = "Twisted Colors"
	heroTitle = "Welcome to Twisted Colors!"
	tagline   = "Bold, vivid abstract art for spaces that refuse to be beige."

	featuredCount = 3
)

var aboutCopy = []string{
	"Twisted Colors is a small studio collective selling original abstract work and limited prints.",
	"Every piece is picked by the artists themselves, printed on archival stock and signed by hand.",
	"We believe a single loud canvas can change how a room feels, so we only sell the loud ones.",
}

// View renders the current model state
func (m Model) View() string {
	if m.tooSmall {
		return errorBannerStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight))
	}

	s := m.store.State()

	var content strings.Builder
	content.WriteString(m.renderHeader(s))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render("Error: " + m.errorMsg))
		content.WriteString("\n")
	}

	if s.Acknowledged {
		content.WriteString(m.renderAcknowledgement())
		content.WriteString("\n")
	}

	if s.View.CartOpen {
		content.WriteString(m.renderCart(s))
	} else {
		content.WriteString(m.renderSection(s))
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter(s))
	return content.String()
}

// renderHeader renders the brand, section menu and cart badge.
func (m Model) renderHeader(s storefront.State) string {
	entries := make([]components.MenuEntry, 0, 4)
	for i, section := range storefront.Sections() {
		active := s.View.Section == section ||
			(section == storefront.SectionShop && s.View.Section == storefront.SectionProduct)
		entries = append(entries, components.MenuEntry{
			Key:    strconv.Itoa(i + 1),
			Label:  section.Title(),
			Active: active,
		})
	}
	menu := components.NewMenu(entries).View(menuStyle, menuActiveStyle)

	badge := components.NewSummary(components.SummaryData{
		Items:    s.Cart.ItemCount(),
		Lines:    s.Cart.Len(),
		Total:    m.price(s.Cart.Total()),
		Icon:     m.glyphs.Cart,
		CartOpen: s.View.CartOpen,
	}).View()

	row := lipgloss.JoinHorizontal(lipgloss.Top, brandStyle.Render(brandName), menu, "   ", priceStyle.Render(badge))
	return headerStyle.Width(m.width - 2).Render(row)
}

func (m Model) renderAcknowledgement() string {
	msg := "Thanks for reaching out! We will get back to you soon."
	if m.ackRunning {
		msg += "  " + m.countdown.View(m.ackRemaining())
	}
	return infoBannerStyle.Render(msg)
}

// renderSection renders the body of the active section.
func (m Model) renderSection(s storefront.State) string {
	switch s.View.Section {
	case storefront.SectionHome:
		return m.renderHome()
	case storefront.SectionShop:
		return m.gallery.View()
	case storefront.SectionProduct:
		if p, ok := s.SelectedProduct(); ok {
			return m.renderProduct(p)
		}
		return emptyStateStyle.Render("No product selected.")
	case storefront.SectionAbout:
		return m.renderAbout()
	case storefront.SectionContact:
		return m.renderContact()
	default:
		return ""
	}
}

func (m Model) renderHome() string {
	cat := m.store.Catalog()

	var b strings.Builder
	b.WriteString(heroStyle.Render(heroTitle))
	b.WriteString("\n")
	b.WriteString(taglineStyle.Render(tagline))
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Featured"))
	b.WriteString("\n")
	featured := cat.Featured(featuredCount)
	cards := make([]string, 0, len(featured))
	for _, p := range featured {
		cards = append(cards, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(p.Title),
			artistStyle.Render(p.Artist),
			priceStyle.Render(m.price(p.Price)),
		)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	if reviews := cat.Reviews(); len(reviews) > 0 {
		b.WriteString(sectionTitleStyle.Render("What collectors say"))
		b.WriteString("\n")
		for _, r := range reviews {
			b.WriteString(m.renderReview(r))
			b.WriteString("\n")
		}
	}

	b.WriteString(mutedStyle.Render("Press enter to browse the shop."))
	return b.String()
}

func (m Model) renderReview(r catalog.Review) string {
	return fmt.Sprintf("%s %s %s %s",
		starStyle.Render(r.Stars(m.glyphs.StarFull, m.glyphs.StarEmpty)),
		bodyStyle.Render(fmt.Sprintf("%q", r.Text)),
		mutedStyle.Render(m.glyphs.Separator),
		artistStyle.Render(r.Author))
}

func (m Model) renderProduct(p catalog.Product) string {
	var b strings.Builder
	b.WriteString(heroStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(artistStyle.Render("by " + p.Artist))
	b.WriteString("\n\n")
	b.WriteString(priceStyle.Render(m.price(p.Price)))
	if qty := m.store.State().Cart.Quantity(p.ID); qty > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d in cart)", qty)))
	}
	b.WriteString("\n\n")
	if p.Description != "" {
		b.WriteString(bodyStyle.Width(m.width - 4).Render(p.Description))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("Image: " + p.Image))
	b.WriteString("\n")

	if reviews := m.store.Catalog().ReviewsFor(p.ID); len(reviews) > 0 {
		b.WriteString(sectionTitleStyle.Render("Reviews"))
		b.WriteString("\n")
		for _, r := range reviews {
			b.WriteString(m.renderReview(r))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderAbout() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("About " + brandName))
	b.WriteString("\n")
	for _, para := range aboutCopy {
		b.WriteString(bodyStyle.Width(m.width - 4).Render(para))
		b.WriteString("\n\n")
	}
	artists := make(map[string]bool)
	names := make([]string, 0)
	for _, p := range m.store.Catalog().Products() {
		if !artists[p.Artist] {
			artists[p.Artist] = true
			names = append(names, p.Artist)
		}
	}
	b.WriteString(sectionTitleStyle.Render("Artists"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%s %s\n", m.glyphs.Bullet, name))
	}
	return b.String()
}

func (m Model) renderContact() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Get in touch"))
	b.WriteString("\n")

	rows := []struct {
		field contact.Field
		label string
		view  string
	}{
		{contact.FieldName, "Name", m.name.View()},
		{contact.FieldEmail, "Email", m.email.View()},
		{contact.FieldMessage, "Message", m.message.View()},
	}
	for _, row := range rows {
		label := labelStyle.Render(row.label)
		if m.typing && m.focus == row.field {
			label = focusedLabelStyle.Render(row.label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, row.view))
		b.WriteString("\n")
	}

	if !m.typing {
		b.WriteString(mutedStyle.Render("Press enter to edit the form."))
	}
	return b.String()
}

// renderCart renders the cart overlay.
func (m Model) renderCart(s storefront.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your cart"))
	b.WriteString("\n\n")

	if s.Cart.IsEmpty() {
		b.WriteString(emptyStateStyle.Render("Your cart is empty."))
		return cartBoxStyle.Render(b.String())
	}

	for i, l := range s.Cart.Lines() {
		line := fmt.Sprintf("%-24s x%-3d %s", l.Product.Title, l.Quantity, m.price(l.Subtotal()))
		if i == m.cartCursor {
			b.WriteString(cartSelectedLineStyle.Render(m.glyphs.Cursor + " " + line))
		} else {
			b.WriteString(cartLineStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(cartTotalStyle.Render(fmt.Sprintf("Total: %s", m.price(s.Cart.Total()))))
	return cartBoxStyle.Render(b.String())
}

// renderFooter renders key help for the current context.
func (m Model) renderFooter(s storefront.State) string {
	return footerStyle.Width(m.width - 2).Render(m.help.View(m.contextKeys(s)))
}

func (m Model) contextKeys(s storefront.State) contextKeys {
	k := m.keys
	nav := []key.Binding{k.Home, k.Shop, k.About, k.Contact}
	general := []key.Binding{k.Cart, k.Help, k.Quit}

	var local []key.Binding
	switch {
	case s.View.CartOpen:
		local = []key.Binding{k.Up, k.Down, k.Increase, k.Decrease, k.Remove, k.Clear, k.Dismiss}
		nav = nil
	case s.View.Section == storefront.SectionContact && m.typing:
		local = []key.Binding{k.NextField, k.PrevField, k.Submit, k.Dismiss}
		general = []key.Binding{k.ForceQuit}
		nav = nil
	case s.View.Section == storefront.SectionContact:
		local = []key.Binding{k.Type, k.Submit}
	case s.View.Section == storefront.SectionShop:
		local = []key.Binding{k.Open, k.Add, k.Up, k.Down}
	case s.View.Section == storefront.SectionProduct:
		local = []key.Binding{k.Add, k.Back}
	case s.View.Section == storefront.SectionHome:
		local = []key.Binding{k.Open}
	}

	short := append(append([]key.Binding{}, local...), general...)
	full := [][]key.Binding{local, general}
	if len(nav) > 0 {
		full = append(full, nav)
	}
	return contextKeys{short: short, full: full}
}

func (m Model) price(amount decimal.Decimal) string {
	return components.FormatPrice(amount, m.currency)
}
