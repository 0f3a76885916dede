package components

import (
	"fmt"
)

// SummaryData aggregates cart figures for the header badge.
type SummaryData struct {
	Items    int
	Lines    int
	Total    string
	Icon     string
	CartOpen bool
}

// Summary renders a one-line cart summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	prefix := s.data.Icon
	if prefix != "" {
		prefix += " "
	}

	if s.data.Items == 0 {
		return prefix + "Cart empty"
	}

	noun := "items"
	if s.data.Items == 1 {
		noun = "item"
	}
	out := fmt.Sprintf("%s%d %s · %s", prefix, s.data.Items, noun, s.data.Total)
	if s.data.CartOpen {
		out += " (open)"
	}
	return out
}
