package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
)

func TestRenderFillsScreen(t *testing.T) {
	s := playground.NewSession()
	screen := ScreenFor(s.Orientation(), DefaultScale)

	out := Render(Layout(s.Project(), screen, DefaultScale), screen, DefaultTheme())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, screen.Height)
	for _, line := range lines {
		assert.Equal(t, screen.Width, lipgloss.Width(line))
	}
	for _, label := range []string{"1", "2", "3"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "┌")
}

func TestRenderDrawsRingAroundSelected(t *testing.T) {
	s := playground.NewSession()
	s.SelectItem(0)
	screen := ScreenFor(s.Orientation(), DefaultScale)

	out := Render(Layout(s.Project(), screen, DefaultScale), screen, DefaultTheme())

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
}

func TestRenderClipsOverflow(t *testing.T) {
	screen := Screen{Width: 4, Height: 2}
	boxes := []Box{{Index: 0, Label: "1", X: -2, Y: 1, W: 10, H: 5}}

	out := Render(boxes, screen, DefaultTheme())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lipgloss.Width(lines[1]))
}

func TestRenderEmptyScreen(t *testing.T) {
	assert.Equal(t, "", Render(nil, Screen{}, DefaultTheme()))
}

func TestGradientForCycles(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.GradientFor(0), theme.GradientFor(6))
	assert.NotEqual(t, theme.GradientFor(0), theme.GradientFor(1))

	theme.Gradients = nil
	assert.Equal(t, string(theme.Screen), theme.GradientFor(3).From)
}
