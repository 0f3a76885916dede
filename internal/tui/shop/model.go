// Package shop is the terminal presentation of the storefront. It turns key
// presses into storefront actions and renders the resulting state.
package shop

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twistedcolors/storefront/internal/contact"
	"github.com/twistedcolors/storefront/internal/logger"
	"github.com/twistedcolors/storefront/internal/storefront"
	"github.com/twistedcolors/storefront/internal/tui/components"
)

const (
	minWidth  = 60
	minHeight = 20

	// chromeHeight is the space taken by header, banners and footer.
	chromeHeight = 9
)

// Options tunes presentation details.
type Options struct {
	Currency    string
	ASCII       bool
	AckDuration time.Duration
	Logger      *logger.Logger
}

// Model is the Bubble Tea model of the storefront.
type Model struct {
	store *storefront.Store
	log   *logger.Logger

	keys    keyMap
	help    help.Model
	gallery list.Model

	// Contact form inputs
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   contact.Field
	typing  bool

	// Acknowledgement banner
	ackTimer    timer.Model
	ackRunning  bool
	ackDuration time.Duration
	countdown   components.Countdown

	cartCursor int

	showError bool
	errorMsg  string
	tooSmall  bool

	width  int
	height int

	currency string
	glyphs   glyphs
}

// NewModel creates a model over store. The store's current section decides
// the first screen.
func NewModel(store *storefront.Store, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	if opts.AckDuration <= 0 {
		opts.AckDuration = contact.DefaultAckDuration
	}

	g := unicodeGlyphs()
	if opts.ASCII {
		g = asciiGlyphs()
	}

	gallery := list.New(galleryItems(store.Catalog().Products(), opts.Currency, g.Separator), newGalleryDelegate(), 0, 0)
	gallery.Title = "Gallery"
	gallery.SetShowHelp(false)
	gallery.KeyMap.Quit.SetEnabled(false)
	gallery.KeyMap.ForceQuit.SetEnabled(false)
	gallery.KeyMap.ShowFullHelp.SetEnabled(false)
	gallery.KeyMap.CloseFullHelp.SetEnabled(false)
	styleGallery(&gallery)

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = ""

	message := textarea.New()
	message.Placeholder = "Tell us what you are looking for"
	message.CharLimit = 2000
	message.ShowLineNumbers = false
	message.SetHeight(5)

	m := Model{
		store:       store,
		log:         log.With("component", "tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		gallery:     gallery,
		name:        name,
		email:       email,
		message:     message,
		focus:       contact.FieldName,
		ackDuration: opts.AckDuration,
		countdown:   components.NewCountdown(opts.AckDuration),
		currency:    opts.Currency,
		glyphs:      g,
		width:       80,
		height:      24,
	}
	m.resize()

	if store.State().View.Section == storefront.SectionContact {
		m.typing = true
		m.syncFocus()
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the store's current state.
func (m Model) State() storefront.State {
	return m.store.State()
}

// dispatch applies a through the store and surfaces a rejection in the
// error banner. It reports whether the action was applied.
func (m *Model) dispatch(a storefront.Action) bool {
	if err := m.store.Dispatch(a); err != nil {
		m.showError = true
		m.errorMsg = err.Error()
		return false
	}
	return true
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}

func (m *Model) resize() {
	bodyHeight := m.height - chromeHeight
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	m.gallery.SetSize(m.width-2, bodyHeight)
	m.help.Width = m.width

	inputWidth := m.width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.name.Width = inputWidth
	m.email.Width = inputWidth
	m.message.SetWidth(inputWidth)
}

// syncFocus focuses the input matching m.focus and blurs the others.
func (m *Model) syncFocus() {
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	if !m.typing {
		return
	}
	switch m.focus {
	case contact.FieldName:
		m.name.Focus()
	case contact.FieldEmail:
		m.email.Focus()
	case contact.FieldMessage:
		m.message.Focus()
	}
}

// clampCartCursor keeps the overlay cursor on an existing line.
func (m *Model) clampCartCursor() {
	n := m.store.State().Cart.Len()
	if m.cartCursor >= n {
		m.cartCursor = n - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

// selectedCartLine returns the product id under the overlay cursor.
func (m Model) selectedCartLine() (int, bool) {
	lines := m.store.State().Cart.Lines()
	if m.cartCursor < 0 || m.cartCursor >= len(lines) {
		return 0, false
	}
	return lines[m.cartCursor].Product.ID, true
}

// ackRemaining is how long the acknowledgement banner stays up.
func (m Model) ackRemaining() time.Duration {
	if !m.ackRunning {
		return 0
	}
	return m.ackTimer.Timeout
}
