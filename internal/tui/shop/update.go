package shop

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twistedcolors/storefront/internal/contact"
	"github.com/twistedcolors/storefront/internal/storefront"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < minWidth || m.height < minHeight
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case timer.TickMsg:
		if !m.ackRunning || msg.ID != m.ackTimer.ID() {
			return m, nil
		}
		var cmd tea.Cmd
		m.ackTimer, cmd = m.ackTimer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if !m.ackRunning || msg.ID != m.ackTimer.ID() {
			// A newer submission replaced this timer.
			return m, nil
		}
		m.ackRunning = false
		m.dispatch(storefront.DismissAcknowledgement{})
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil
	}

	return m.updateComponents(msg)
}

// updateComponents forwards other messages (cursor blink, filter results) to
// the components of the visible section.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.store.State().View.Section {
	case storefront.SectionShop:
		m.gallery, cmd = m.gallery.Update(msg)
	case storefront.SectionContact:
		cmd = m.updateFocusedInput(msg)
	}
	return m, cmd
}

// handleKeyPress routes keys by what currently has focus: cart overlay,
// contact inputs, the gallery filter, then the section.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	s := m.store.State()
	section := s.View.Section

	if section == storefront.SectionContact && m.typing {
		return m.handleTypingKeys(msg)
	}
	if section == storefront.SectionShop && m.gallery.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(msg)
		return m, cmd
	}

	if m.showError && key.Matches(msg, m.keys.Dismiss) {
		m.clearError()
		return m, nil
	}

	if s.View.CartOpen {
		return m.handleCartKeys(msg)
	}

	if handled, next, cmd := m.handleGlobalKeys(msg); handled {
		return next, cmd
	}

	switch section {
	case storefront.SectionHome:
		return m.handleHomeKeys(msg)
	case storefront.SectionShop:
		return m.handleShopKeys(msg)
	case storefront.SectionProduct:
		return m.handleProductKeys(msg)
	case storefront.SectionContact:
		return m.handleContactKeys(msg)
	default:
		return m, nil
	}
}

// handleGlobalKeys handles keys that work on every section.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil

	case key.Matches(msg, m.keys.Cart):
		m.dispatch(storefront.ToggleCart{})
		m.clampCartCursor()
		return true, m, nil

	case key.Matches(msg, m.keys.Home):
		m.navigate(storefront.SectionHome)
		return true, m, nil

	case key.Matches(msg, m.keys.Shop):
		m.navigate(storefront.SectionShop)
		return true, m, nil

	case key.Matches(msg, m.keys.About):
		m.navigate(storefront.SectionAbout)
		return true, m, nil

	case key.Matches(msg, m.keys.Contact):
		if m.navigate(storefront.SectionContact) {
			m.typing = true
			m.focus = contact.FieldName
			m.syncFocus()
			return true, m, textinput.Blink
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m *Model) navigate(section storefront.Section) bool {
	if !m.dispatch(storefront.Navigate{Section: section}) {
		return false
	}
	m.typing = false
	m.syncFocus()
	return true
}

// handleHomeKeys handles keys on the landing page.
func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Open) {
		m.navigate(storefront.SectionShop)
	}
	return m, nil
}

// handleShopKeys handles keys in the gallery.
func (m Model) handleShopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.gallery.SelectedItem().(productItem); ok {
			m.dispatch(storefront.SelectProduct{ProductID: item.product.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if item, ok := m.gallery.SelectedItem().(productItem); ok {
			m.dispatch(storefront.AddItem{ProductID: item.product.ID})
			m.cartCursor = m.cartLineIndex(item.product.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.gallery, cmd = m.gallery.Update(msg)
	return m, cmd
}

// handleProductKeys handles keys in the product detail view.
func (m Model) handleProductKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.store.State().SelectedProduct()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.dispatch(storefront.AddItem{ProductID: p.ID})
		m.cartCursor = m.cartLineIndex(p.ID)
	case key.Matches(msg, m.keys.Back):
		m.navigate(storefront.SectionShop)
	}
	return m, nil
}

// handleContactKeys handles keys on the contact page outside typing mode.
func (m Model) handleContactKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Type) {
		m.typing = true
		m.syncFocus()
		return m, textinput.Blink
	}
	if key.Matches(msg, m.keys.Submit) {
		return m.submitContact()
	}
	return m, nil
}

// handleTypingKeys handles keys while a contact input has focus. Only
// ctrl+c quits here so that q and digits can be typed.
func (m Model) handleTypingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.clearError()
			return m, nil
		}
		m.typing = false
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.focus = nextField(m.focus, 1)
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focus = nextField(m.focus, -1)
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitContact()
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

// updateFocusedInput feeds msg to the focused input and mirrors its value
// into the form state.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var value string
	switch m.focus {
	case contact.FieldName:
		m.name, cmd = m.name.Update(msg)
		value = m.name.Value()
	case contact.FieldEmail:
		m.email, cmd = m.email.Update(msg)
		value = m.email.Value()
	case contact.FieldMessage:
		m.message, cmd = m.message.Update(msg)
		value = m.message.Value()
	default:
		return nil
	}

	if value != m.store.State().Contact.Get(m.focus) {
		m.dispatch(storefront.SetContactField{Field: m.focus, Value: value})
	}
	return cmd
}

// submitContact validates and acknowledges the form, restarting the
// acknowledgement timer. Any pending timer is superseded.
func (m Model) submitContact() (tea.Model, tea.Cmd) {
	if !m.dispatch(storefront.SubmitContact{}) {
		return m, nil
	}

	m.clearError()
	m.name.Reset()
	m.email.Reset()
	m.message.Reset()
	m.focus = contact.FieldName
	m.typing = false
	m.syncFocus()

	m.ackTimer = timer.New(m.ackDuration)
	m.ackRunning = true
	m.log.Debug(fmt.Sprintf("acknowledgement shown for %s", m.ackDuration))
	return m, m.ackTimer.Init()
}

// handleCartKeys handles keys while the cart overlay is open.
func (m Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cart), key.Matches(msg, m.keys.Dismiss):
		m.dispatch(storefront.CloseCart{})
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < m.store.State().Cart.Len()-1 {
			m.cartCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		if id, ok := m.selectedCartLine(); ok {
			m.dispatch(storefront.ChangeQuantity{ProductID: id, Delta: 1})
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		if id, ok := m.selectedCartLine(); ok {
			m.dispatch(storefront.ChangeQuantity{ProductID: id, Delta: -1})
			m.clampCartCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if id, ok := m.selectedCartLine(); ok {
			m.dispatch(storefront.RemoveItem{ProductID: id})
			m.clampCartCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.dispatch(storefront.ClearCart{})
		m.cartCursor = 0
		return m, nil
	}

	return m, nil
}

func (m Model) cartLineIndex(id int) int {
	for i, l := range m.store.State().Cart.Lines() {
		if l.Product.ID == id {
			return i
		}
	}
	return 0
}

func nextField(f contact.Field, step int) contact.Field {
	fields := contact.Fields()
	for i, candidate := range fields {
		if candidate == f {
			return fields[(i+step+len(fields))%len(fields)]
		}
	}
	return fields[0]
}
