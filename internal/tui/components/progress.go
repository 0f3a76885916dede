package components

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Countdown renders the time left on a fixed-duration banner as a draining
// bar.
type Countdown struct {
	bar   progress.Model
	total time.Duration
}

// NewCountdown creates a countdown for the given total duration.
func NewCountdown(total time.Duration) Countdown {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return Countdown{bar: bar, total: total}
}

// Ratio reports the fraction of the duration still remaining, clamped to [0, 1].
func (c Countdown) Ratio(remaining time.Duration) float64 {
	if c.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(remaining)/float64(c.total)))
}

// View renders the bar for the remaining duration.
func (c Countdown) View(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(math.Ceil(remaining.Seconds()))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%ds", seconds))
	return lipgloss.JoinHorizontal(lipgloss.Left, c.bar.ViewAs(c.Ratio(remaining)), " ", label)
}
