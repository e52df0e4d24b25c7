package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	warningColor = lipgloss.Color("226") // Yellow
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink
	textColor    = lipgloss.Color("252")
	frameColor   = lipgloss.Color("240")

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	// Header style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	// Tab styles
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(accentColor)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 1).
				BorderStyle(lipgloss.HiddenBorder()).
				BorderBottom(true)

	// Control column
	controlsStyle = lipgloss.NewStyle().
			Width(40).
			PaddingRight(2)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginBottom(1)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)

	focusedLabelStyle = fieldLabelStyle.
				Foreground(accentColor).
				Bold(true)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Item controls
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(frameColor).
				Strikethrough(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	selectedChipStyle = chipStyle.
				Foreground(accentColor).
				Bold(true)

	// Device frame
	deviceFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(frameColor).
				Padding(1, 1)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Align(lipgloss.Center)

	// Styles panel
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginLeft(2).
			Width(34)

	panelHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor).
				MarginTop(1)

	declPropertyStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	declValueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	// Warning banner style
	warningBannerStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(warningColor)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	// Help styles
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
