package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a left-to-right colour pair painted across an item.
type Gradient struct {
	From string
	To   string
}

// DefaultGradients cycle across items by index.
var DefaultGradients = []Gradient{
	{From: "#ec4899", To: "#a855f7"},
	{From: "#4ade80", To: "#3b82f6"},
	{From: "#facc15", To: "#f97316"},
	{From: "#60a5fa", To: "#6366f1"},
	{From: "#f87171", To: "#ec4899"},
	{From: "#818cf8", To: "#a855f7"},
}

// Theme controls how the screen is painted.
type Theme struct {
	Screen    lipgloss.Color
	Label     lipgloss.Color
	Ring      lipgloss.Color
	Gradients []Gradient
}

// DefaultTheme matches the dark device screen.
func DefaultTheme() Theme {
	return Theme{
		Screen:    lipgloss.Color("#111827"),
		Label:     lipgloss.Color("#ffffff"),
		Ring:      lipgloss.Color("#ffffff"),
		Gradients: DefaultGradients,
	}
}

// GradientFor returns the gradient of the item at index.
func (t Theme) GradientFor(index int) Gradient {
	if len(t.Gradients) == 0 {
		return Gradient{From: string(t.Screen), To: string(t.Screen)}
	}
	return t.Gradients[index%len(t.Gradients)]
}

// cell is one painted terminal cell.
type cell struct {
	ch rune
	bg lipgloss.Color
	fg lipgloss.Color
}

// Render paints boxes onto a screen-sized canvas. Later boxes are painted
// over earlier ones, the same stacking a browser uses for siblings. Boxes
// that overflow the screen are clipped.
func Render(boxes []Box, screen Screen, theme Theme) string {
	if screen.Width <= 0 || screen.Height <= 0 {
		return ""
	}

	grid := make([][]cell, screen.Height)
	for y := range grid {
		grid[y] = make([]cell, screen.Width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', bg: theme.Screen}
		}
	}

	for _, box := range boxes {
		paintBox(grid, box, theme)
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteString("\n")
		}
		writeRow(&b, row)
	}
	return b.String()
}

func paintBox(grid [][]cell, box Box, theme Theme) {
	if box.W <= 0 || box.H <= 0 {
		return
	}
	grad := theme.GradientFor(box.Index)
	from, errFrom := colorful.Hex(grad.From)
	to, errTo := colorful.Hex(grad.To)

	labelY := box.Y + box.H/2
	labelX := box.X + (box.W-len(box.Label))/2
	ring := box.Selected && box.W >= 2 && box.H >= 2

	// Only the on-screen part of the box is visited.
	for dy := max(0, -box.Y); dy < min(box.H, len(grid)-box.Y); dy++ {
		y := box.Y + dy
		for dx := max(0, -box.X); dx < min(box.W, len(grid[y])-box.X); dx++ {
			x := box.X + dx

			bg := lipgloss.Color(grad.From)
			if errFrom == nil && errTo == nil && box.W > 1 {
				t := float64(dx) / float64(box.W-1)
				bg = lipgloss.Color(from.BlendLuv(to, t).Clamped().Hex())
			}

			c := cell{ch: ' ', bg: bg, fg: theme.Label}
			if ring {
				c.fg = theme.Ring
				c.ch = ringRune(dx, dy, box.W, box.H)
			}
			if y == labelY && x >= labelX && x < labelX+len(box.Label) {
				c.ch = rune(box.Label[x-labelX])
				c.fg = theme.Label
			}
			grid[y][x] = c
		}
	}
}

func ringRune(dx, dy, w, h int) rune {
	top, bottom := dy == 0, dy == h-1
	left, right := dx == 0, dx == w-1
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	case left || right:
		return '│'
	}
	return ' '
}

// writeRow renders runs of identically styled cells with a single style.
func writeRow(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].bg == row[start].bg && row[i].fg == row[start].fg {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range row[start:i] {
			run = append(run, c.ch)
		}
		style := lipgloss.NewStyle().Background(row[start].bg)
		if row[start].fg != "" {
			style = style.Foreground(row[start].fg).Bold(true)
		}
		b.WriteString(style.Render(string(run)))
		start = i
	}
}
