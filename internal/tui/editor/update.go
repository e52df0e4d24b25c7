package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showWarning = true
			m.warningMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else {
			m.showWarning = false
			m.warningMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeyPress(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keys while browsing fields and items
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	// Tabs
	case key.Matches(msg, m.keys.NextTab):
		s.SetActiveTab(s.ActiveTab().Next())
	case key.Matches(msg, m.keys.ContainerTab):
		s.SetActiveTab(playground.TabContainer)
	case key.Matches(msg, m.keys.ItemTab):
		s.SetActiveTab(playground.TabItem)

	// Fields
	case key.Matches(msg, m.keys.Up):
		m.moveField(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveField(1)
	case key.Matches(msg, m.keys.Left):
		m.cycleField(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycleField(1)
	case key.Matches(msg, m.keys.Edit):
		return m.startEditing()

	// Items
	case key.Matches(msg, m.keys.PrevItem):
		m.moveItem(-1)
	case key.Matches(msg, m.keys.NextItem):
		m.moveItem(1)
	case key.Matches(msg, m.keys.Select):
		s.SelectItem(m.itemCursor)
	case key.Matches(msg, m.keys.Add):
		s.AddItem()
	case key.Matches(msg, m.keys.Remove):
		s.RemoveItem()
		m.clampItemCursor()

	// View
	case key.Matches(msg, m.keys.Reset):
		s.ResetActiveScope()
	case key.Matches(msg, m.keys.Orientation):
		s.ToggleOrientation()
	case key.Matches(msg, m.keys.Styles):
		s.ToggleStylesPanel()

	default:
		// Direct selection with number keys
		switch k := msg.String(); k {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			index := int(k[0] - '1')
			if index < s.ItemCount() {
				m.itemCursor = index
				s.SelectItem(index)
			}
		}
	}

	return m, nil
}

// handleEditKeys routes keys to the text input until the value is
// committed or abandoned
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.editKeys.Commit):
		if f, ok := m.currentField(); ok {
			f.set(m.input.Value())
			m.log.Debug("value committed", "field", f.label, "value", m.input.Value())
		}
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.editKeys.Cancel):
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleField steps an enumerated field through its options.
func (m *Model) cycleField(step int) {
	f, ok := m.currentField()
	if !ok || !f.enumerated() {
		return
	}
	f.set(playground.CycleOption(f.options, f.value, step))
}

// startEditing opens the text input on the field under the cursor.
// Enumerated fields cycle forward instead.
func (m Model) startEditing() (tea.Model, tea.Cmd) {
	f, ok := m.currentField()
	if !ok {
		return m, nil
	}
	if f.enumerated() {
		m.cycleField(1)
		return m, nil
	}

	m.editing = true
	m.input.Placeholder = f.placeholder
	m.input.SetValue(f.value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}
