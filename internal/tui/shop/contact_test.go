package shop

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twistedcolors/storefront/internal/contact"
)

func fillContact(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, "4", "Ada", "tab", "ada@example.com", "tab", "Do you ship prints?")
	return m
}

func TestTypingDoesNotQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := press(t, m, "4", "q", "1")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q1", m.State().Contact.Get(contact.FieldName))
	assert.Equal(t, "q1", m.name.Value())

	_, cmd = press(t, m, "ctrl+c")
	assert.True(t, isQuit(cmd))
}

func TestTabCyclesFields(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, "4")
	assert.Equal(t, contact.FieldName, m.focus)

	m, _ = press(t, m, "tab")
	assert.Equal(t, contact.FieldEmail, m.focus)
	assert.True(t, m.email.Focused())
	assert.False(t, m.name.Focused())

	m, _ = press(t, m, "tab", "tab")
	assert.Equal(t, contact.FieldName, m.focus)

	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, contact.FieldMessage, m.focus)
	assert.True(t, m.message.Focused())
}

func TestFormMirrorsInputs(t *testing.T) {
	m := fillContact(t, newTestModel(t, Options{}))

	form := m.State().Contact
	assert.Equal(t, "Ada", form.Name)
	assert.Equal(t, "ada@example.com", form.Email)
	assert.Equal(t, "Do you ship prints?", form.Message)
}

func TestSubmitInvalidShowsError(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, "4", "ctrl+s")
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "name")
	assert.False(t, m.State().Acknowledged)
	assert.True(t, m.typing)

	// First esc dismisses the banner, the second leaves typing mode.
	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
	assert.True(t, m.typing)

	m, _ = press(t, m, "esc")
	assert.False(t, m.typing)

	m, _ = press(t, m, "2")
	assert.Equal(t, "shop", m.State().View.Section.String())
}

func TestSubmitAcknowledgesAndResets(t *testing.T) {
	m := fillContact(t, newTestModel(t, Options{AckDuration: 2 * time.Second}))

	m, cmd := press(t, m, "ctrl+s")
	require.NotNil(t, cmd)

	s := m.State()
	assert.True(t, s.Acknowledged)
	assert.True(t, s.Contact.IsEmpty())
	assert.Empty(t, m.name.Value())
	assert.Empty(t, m.message.Value())
	assert.False(t, m.typing)
	assert.True(t, m.ackRunning)
	assert.Equal(t, 2*time.Second, m.ackRemaining())
	assert.Contains(t, m.View(), "Thanks for reaching out")
}

func TestAckTimeoutDismisses(t *testing.T) {
	m := fillContact(t, newTestModel(t, Options{}))
	m, _ = press(t, m, "ctrl+s")

	next, _ := m.Update(timer.TimeoutMsg{ID: m.ackTimer.ID()})
	m = next.(Model)
	assert.False(t, m.State().Acknowledged)
	assert.False(t, m.ackRunning)
	assert.NotContains(t, m.View(), "Thanks for reaching out")
}

func TestNewSubmissionReplacesTimer(t *testing.T) {
	m := fillContact(t, newTestModel(t, Options{}))
	m, _ = press(t, m, "ctrl+s")
	first := m.ackTimer.ID()

	m, _ = press(t, m, "enter", "Bo", "tab", "bo@example.com", "tab", "Hello again", "ctrl+s")
	second := m.ackTimer.ID()
	require.NotEqual(t, first, second)

	// The superseded timer firing must not hide the newer banner.
	next, _ := m.Update(timer.TimeoutMsg{ID: first})
	m = next.(Model)
	assert.True(t, m.State().Acknowledged)
	assert.True(t, m.ackRunning)

	next, _ = m.Update(timer.TimeoutMsg{ID: second})
	assert.False(t, next.(Model).State().Acknowledged)
}

func TestAckTickCountsDown(t *testing.T) {
	m := fillContact(t, newTestModel(t, Options{AckDuration: 3 * time.Second}))
	m, _ = press(t, m, "ctrl+s")

	next, cmd := m.Update(timer.TickMsg{ID: m.ackTimer.ID()})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, 2*time.Second, m.ackRemaining())

	// Ticks for unknown timers are ignored.
	next, cmd = m.Update(timer.TickMsg{ID: m.ackTimer.ID() + 100})
	assert.Nil(t, cmd)
	assert.Equal(t, 2*time.Second, next.(Model).ackRemaining())
}

func TestBlinkMessagesReachInputs(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(t, m, "4")

	next, _ := m.Update(tea.FocusMsg{})
	_, ok := next.(Model)
	assert.True(t, ok)
}
