package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewCountdown(t *testing.T) {
	t.Parallel()

	c := NewCountdown(3 * time.Second)
	require.Equal(t, 3*time.Second, c.total)
	require.Equal(t, 20, c.bar.Width)
}

func TestCountdownRatio(t *testing.T) {
	t.Parallel()

	c := NewCountdown(4 * time.Second)
	require.InDelta(t, 1.0, c.Ratio(4*time.Second), 0.0001)
	require.InDelta(t, 0.5, c.Ratio(2*time.Second), 0.0001)
	require.InDelta(t, 0.0, c.Ratio(-time.Second), 0.0001)
	require.InDelta(t, 1.0, c.Ratio(10*time.Second), 0.0001)

	require.Zero(t, NewCountdown(0).Ratio(time.Second))
}

func TestCountdownView(t *testing.T) {
	t.Parallel()

	c := NewCountdown(3 * time.Second)
	require.Contains(t, c.View(3*time.Second), "3s")
	require.Contains(t, c.View(1500*time.Millisecond), "2s")
	require.Contains(t, c.View(-time.Second), "0s")
}
