package playground

import (
	"github.com/alexisbeaulieu97/flexplay/internal/logger"
)

// Orientation of the simulated device screen.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ScreenSize returns the device screen size in CSS pixels.
func (o Orientation) ScreenSize() (width, height int) {
	if o == Landscape {
		return 600, 300
	}
	return 300, 600
}

// Session owns all editor state for one run. Every mutator runs to
// completion and leaves the invariants intact: the item count stays within
// [MinItems, MaxItems] and the selection always names an existing slot.
type Session struct {
	container   ContainerProperties
	item        ItemProperties
	items       ItemCollection
	selection   Selection
	orientation Orientation
	stylesPanel bool

	log *logger.Logger
}

// Option customises a new Session.
type Option func(*Session)

// WithLogger attaches a logger; mutations are logged at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) { s.log = log.Component("session") }
}

// WithContainer seeds the container properties.
func WithContainer(props ContainerProperties) Option {
	return func(s *Session) { s.container = props }
}

// WithItem seeds the item override properties.
func WithItem(props ItemProperties) Option {
	return func(s *Session) { s.item = props }
}

// WithItemCount seeds the item count, clamped to [MinItems, MaxItems].
func WithItemCount(n int) Option {
	return func(s *Session) { s.items = NewItemCollection(n) }
}

// WithSelectedItem seeds the selection. Out-of-range indices are dropped.
func WithSelectedItem(index int) Option {
	return func(s *Session) {
		s.selection = Selection{index: index, selected: true, tab: s.selection.tab}
	}
}

// WithActiveTab seeds the active tab.
func WithActiveTab(tab Tab) Option {
	return func(s *Session) { s.selection = s.selection.WithTab(tab) }
}

// WithOrientation seeds the device orientation.
func WithOrientation(o Orientation) Option {
	return func(s *Session) { s.orientation = o }
}

// WithStylesPanel seeds the styles panel visibility.
func WithStylesPanel(visible bool) Option {
	return func(s *Session) { s.stylesPanel = visible }
}

// NewSession returns a session at the documented defaults: three items,
// nothing selected, container tab, portrait, styles panel shown.
func NewSession(opts ...Option) *Session {
	s := &Session{
		container:   DefaultContainerProperties(),
		item:        DefaultItemProperties(),
		items:       NewItemCollection(DefaultItemCount),
		selection:   NewSelection(),
		orientation: Portrait,
		stylesPanel: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selection = s.selection.Within(s.items.Count())
	return s
}

// Container returns a copy of the container properties.
func (s *Session) Container() ContainerProperties { return s.container }

// Item returns a copy of the item override properties.
func (s *Session) Item() ItemProperties { return s.item }

// ItemCount returns the number of rendered items.
func (s *Session) ItemCount() int { return s.items.Count() }

// Selection returns the selection state.
func (s *Session) Selection() Selection { return s.selection }

// ActiveTab returns the tab the editing surface targets.
func (s *Session) ActiveTab() Tab { return s.selection.Tab() }

// Orientation returns the device orientation.
func (s *Session) Orientation() Orientation { return s.orientation }

// StylesPanelVisible reports whether the styles panel is shown.
func (s *Session) StylesPanelVisible() bool { return s.stylesPanel }

// CanAddItem reports whether AddItem would change the count.
func (s *Session) CanAddItem() bool { return s.items.CanAdd() }

// CanRemoveItem reports whether RemoveItem would change the count.
func (s *Session) CanRemoveItem() bool { return s.items.CanRemove() }

// SetContainerField replaces one container field.
func (s *Session) SetContainerField(field ContainerField, value string) {
	s.container.Set(field, value)
	s.log.Debug("container field set", "field", field.String(), "value", value)
}

// ResetContainer restores the container defaults.
func (s *Session) ResetContainer() {
	s.container.Reset()
	s.log.Debug("container reset")
}

// SetItemField replaces one field of the shared item override.
func (s *Session) SetItemField(field ItemField, value string) {
	s.item.Set(field, value)
	s.log.Debug("item field set", "field", field.String(), "value", value)
}

// ResetItem restores the item override defaults.
func (s *Session) ResetItem() {
	s.item.Reset()
	s.log.Debug("item reset")
}

// AddItem adds a slot; a no-op at MaxItems.
func (s *Session) AddItem() {
	if !s.items.Add() {
		s.log.Debug("add item ignored at capacity", "count", s.items.Count())
		return
	}
	s.log.Debug("item added", "count", s.items.Count())
}

// RemoveItem removes the last slot; a no-op at MinItems. Removing the
// selected slot clears the selection in the same update.
func (s *Session) RemoveItem() {
	lastIndex := s.items.LastIndex()
	if !s.items.Remove() {
		s.log.Debug("remove item ignored at floor", "count", s.items.Count())
		return
	}
	if s.selection.IsSelected(lastIndex) {
		s.selection = s.selection.Clear()
	}
	s.selection = s.selection.Within(s.items.Count())
	s.log.Debug("item removed", "count", s.items.Count())
}

// SelectItem toggles the selection of index and moves to the item tab.
// Indices outside the collection are ignored.
func (s *Session) SelectItem(index int) {
	if !s.items.Contains(index) {
		return
	}
	s.selection = s.selection.Select(index)
	selected, ok := s.selection.Index()
	s.log.Debug("item selection changed", "index", selected, "selected", ok)
}

// SetActiveTab switches the editing target.
func (s *Session) SetActiveTab(tab Tab) {
	s.selection = s.selection.WithTab(tab)
}

// ResetActiveScope resets whichever property set the active tab targets.
func (s *Session) ResetActiveScope() {
	switch s.selection.Tab() {
	case TabItem:
		s.ResetItem()
	default:
		s.ResetContainer()
	}
}

// ToggleOrientation flips the device between portrait and landscape.
func (s *Session) ToggleOrientation() {
	if s.orientation == Landscape {
		s.orientation = Portrait
	} else {
		s.orientation = Landscape
	}
	s.log.Debug("orientation changed", "orientation", s.orientation.String())
}

// ToggleStylesPanel shows or hides the styles panel.
func (s *Session) ToggleStylesPanel() {
	s.stylesPanel = !s.stylesPanel
}

// Project returns the current render input.
func (s *Session) Project() Projection {
	return Project(s.container, s.item, s.selection, s.items.Count())
}
