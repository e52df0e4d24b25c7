package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	"github.com/alexisbeaulieu97/flexplay/internal/preview"
)

const noSelection = "No item selected"

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showWarning {
		content.WriteString(warningBannerStyle.Render(m.warningMsg))
		content.WriteString("\n")
	}

	columns := []string{m.renderControls(), m.renderDevice()}
	if m.session.StylesPanelVisible() {
		columns = append(columns, m.renderStylesPanel())
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and the tab bar
func (m Model) renderHeader() string {
	title := titleStyle.Render("flexplay")

	tabs := make([]string, 0, 2)
	for _, tab := range []playground.Tab{playground.TabContainer, playground.TabItem} {
		label := "Container"
		if tab == playground.TabItem {
			label = "Item"
		}
		if tab == m.session.ActiveTab() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom,
		title, lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)))
}

// renderControls renders the field list and the item controls
func (m Model) renderControls() string {
	var lines []string

	if m.session.ActiveTab() == playground.TabItem {
		lines = append(lines, sectionTitleStyle.Render("Item Properties"))
		if _, ok := m.session.Selection().Index(); !ok {
			lines = append(lines, hintStyle.Render("Select an item to apply these"))
		}
	} else {
		lines = append(lines, sectionTitleStyle.Render("Container Properties"))
	}

	cursor := m.FieldCursor()
	for i, f := range m.fields() {
		lines = append(lines, m.renderField(f, i == cursor))
	}

	lines = append(lines, "", m.renderItemControls())

	return controlsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderField(f field, focused bool) string {
	marker := "  "
	label := fieldLabelStyle.Render(f.label)
	if focused {
		marker = "› "
		label = focusedLabelStyle.Render(f.label)
	}

	var value string
	switch {
	case focused && m.editing:
		value = m.input.View()
	case f.enumerated():
		value = fieldValueStyle.Render("‹ " + f.value + " ›")
	case f.value == "":
		value = placeholderStyle.Render(f.placeholder)
	default:
		value = fieldValueStyle.Render(f.value)
	}

	return marker + label + value
}

// renderItemControls renders the count with add/remove availability and one
// chip per item
func (m Model) renderItemControls() string {
	s := m.session

	remove := disabledButtonStyle.Render("[-]")
	if s.CanRemoveItem() {
		remove = buttonStyle.Render("[-]")
	}
	add := disabledButtonStyle.Render("[+]")
	if s.CanAddItem() {
		add = buttonStyle.Render("[+]")
	}
	count := fmt.Sprintf("Items %d/%d  %s %s", s.ItemCount(), playground.MaxItems, remove, add)

	selection := s.Selection()
	chips := make([]string, s.ItemCount())
	for i := range chips {
		label := strconv.Itoa(i + 1)
		style := chipStyle
		if selection.IsSelected(i) {
			style = selectedChipStyle
			label = "●" + label
		}
		if i == m.itemCursor {
			style = style.Underline(true).Bold(true)
		}
		chips[i] = style.Render(label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(count),
		lipgloss.NewStyle().Width(34).Render(strings.Join(chips, "")),
	)
}

// renderDevice renders the simulated screen with the laid-out items
func (m Model) renderDevice() string {
	s := m.session
	screen := preview.ScreenFor(s.Orientation(), m.scale)
	boxes := preview.Layout(s.Project(), screen, m.scale)
	canvas := preview.Render(boxes, screen, m.theme)

	w, h := s.Orientation().ScreenSize()
	caption := captionStyle.
		Width(screen.Width + 4).
		Render(fmt.Sprintf("%s · %d×%d", s.Orientation(), w, h))

	return lipgloss.JoinVertical(lipgloss.Center, deviceFrameStyle.Render(canvas), caption)
}

// renderStylesPanel renders the current styles panel
func (m Model) renderStylesPanel() string {
	s := m.session
	projection := s.Project()

	lines := []string{sectionTitleStyle.UnsetMarginBottom().Render("Current Styles")}

	lines = append(lines, panelHeadingStyle.Render("Container"))
	lines = append(lines, renderDeclarations(projection.Container.Declarations())...)

	lines = append(lines, panelHeadingStyle.Render("Selected Item"))
	if idx, ok := s.Selection().Index(); ok && idx < len(projection.Items) {
		lines = append(lines, hintStyle.Render(fmt.Sprintf("item %d", idx+1)))
		lines = append(lines, renderDeclarations(projection.Items[idx].Declarations())...)
	} else {
		lines = append(lines, hintStyle.Render(noSelection))
	}

	lines = append(lines,
		panelHeadingStyle.Render("Device"),
		renderDeclaration("orientation", s.Orientation().String()),
		renderDeclaration("items", strconv.Itoa(s.ItemCount())),
	)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderDeclarations(decls []playground.Declaration) []string {
	lines := make([]string, len(decls))
	for i, d := range decls {
		lines[i] = renderDeclaration(d.Property, d.Value)
	}
	return lines
}

func renderDeclaration(property, value string) string {
	return declPropertyStyle.Render(property+":") + " " + declValueStyle.Render(value)
}

// renderFooter renders the key help
func (m Model) renderFooter() string {
	if m.editing {
		return footerStyle.Render(m.help.View(m.editKeys))
	}
	return footerStyle.Render(m.help.View(m.keys))
}
