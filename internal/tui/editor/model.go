// Package editor is the interactive flexplay editor built on Bubble Tea.
package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexplay/internal/logger"
	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	"github.com/alexisbeaulieu97/flexplay/internal/preview"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Model is the interactive editor. All layout state lives in the session;
// the model only keeps cursors and view state.
type Model struct {
	session *playground.Session
	log     *logger.Logger

	// Cursors
	fieldCursor [2]int
	itemCursor  int

	// Text entry
	input   textinput.Model
	editing bool

	// Components
	keys     KeyMap
	editKeys EditKeyMap
	help     help.Model
	showHelp bool

	// Preview
	scale preview.Scale
	theme preview.Theme

	// Banner
	showWarning bool
	warningMsg  string

	// Dimensions
	width  int
	height int
}

// Option customises a new Model.
type Option func(*Model)

// WithLogger attaches a logger to the editor.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log.Component("editor") }
}

// WithTheme overrides the preview palette.
func WithTheme(theme preview.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// WithScale overrides the pixel to cell ratio of the preview.
func WithScale(scale preview.Scale) Option {
	return func(m *Model) { m.scale = scale }
}

// NewModel creates an editor bound to session.
func NewModel(session *playground.Session, opts ...Option) Model {
	if session == nil {
		session = playground.NewSession()
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = 20

	h := help.New()
	h.ShortSeparator = "  •  "
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.FullDesc = helpDescStyle

	m := Model{
		session:  session,
		input:    input,
		keys:     DefaultKeyMap(),
		editKeys: DefaultEditKeyMap(),
		help:     h,
		scale:    preview.DefaultScale,
		theme:    preview.DefaultTheme(),
		width:    minWidth,
		height:   minHeight,
	}
	if idx, ok := session.Selection().Index(); ok {
		m.itemCursor = idx
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the session the editor mutates.
func (m Model) Session() *playground.Session {
	return m.session
}

// field is one editable row of the active tab.
type field struct {
	label       string
	value       string
	placeholder string
	options     []string
	set         func(string)
}

func (f field) enumerated() bool {
	return len(f.options) > 0
}

// fields returns the rows of the active tab in display order.
func (m Model) fields() []field {
	s := m.session
	if s.ActiveTab() == playground.TabItem {
		props := s.Item()
		all := playground.ItemFields()
		rows := make([]field, len(all))
		for i, f := range all {
			f := f
			rows[i] = field{
				label:       f.Label(),
				value:       props.Get(f),
				placeholder: f.Placeholder(),
				options:     f.Options(),
				set:         func(v string) { s.SetItemField(f, v) },
			}
		}
		return rows
	}

	props := s.Container()
	all := playground.ContainerFields()
	rows := make([]field, len(all))
	for i, f := range all {
		f := f
		rows[i] = field{
			label:       f.Label(),
			value:       props.Get(f),
			placeholder: f.Placeholder(),
			options:     f.Options(),
			set:         func(v string) { s.SetContainerField(f, v) },
		}
	}
	return rows
}

// FieldCursor returns the cursor position in the active tab.
func (m Model) FieldCursor() int {
	return m.fieldCursor[m.session.ActiveTab()]
}

// ItemCursor returns the index of the item under the cursor.
func (m Model) ItemCursor() int {
	return m.itemCursor
}

// Editing reports whether a free-form value is being typed.
func (m Model) Editing() bool {
	return m.editing
}

func (m Model) currentField() (field, bool) {
	rows := m.fields()
	cur := m.FieldCursor()
	if cur < 0 || cur >= len(rows) {
		return field{}, false
	}
	return rows[cur], true
}

func (m *Model) moveField(step int) {
	n := len(m.fields())
	if n == 0 {
		return
	}
	tab := m.session.ActiveTab()
	m.fieldCursor[tab] = ((m.fieldCursor[tab]+step)%n + n) % n
}

func (m *Model) moveItem(step int) {
	n := m.session.ItemCount()
	m.itemCursor = ((m.itemCursor+step)%n + n) % n
}

// clampItemCursor keeps the cursor on an existing slot after removals.
func (m *Model) clampItemCursor() {
	if last := m.session.ItemCount() - 1; m.itemCursor > last {
		m.itemCursor = last
	}
}
