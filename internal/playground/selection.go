package playground

// Tab is the property category the editing surface currently targets.
type Tab int

const (
	TabContainer Tab = iota
	TabItem
)

func (t Tab) String() string {
	if t == TabItem {
		return "item"
	}
	return "container"
}

// Next returns the other tab.
func (t Tab) Next() Tab {
	if t == TabItem {
		return TabContainer
	}
	return TabItem
}

// Selection holds the selected item slot, if any, and the active tab. It is
// a value type: every transition returns the next state.
type Selection struct {
	index    int
	selected bool
	tab      Tab
}

// NewSelection returns the session-start state: nothing selected, container tab.
func NewSelection() Selection {
	return Selection{tab: TabContainer}
}

// Index returns the selected index and whether one is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.selected
}

// Tab returns the active tab.
func (s Selection) Tab() Tab { return s.tab }

// IsSelected reports whether index is the selected slot.
func (s Selection) IsSelected(index int) bool {
	return s.selected && s.index == index
}

// Select selects index, or clears the selection when index is already
// selected. The tab always moves to TabItem, including when clearing.
func (s Selection) Select(index int) Selection {
	if s.IsSelected(index) {
		return Selection{tab: TabItem}
	}
	return Selection{index: index, selected: true, tab: TabItem}
}

// WithTab switches the active tab without touching the selection.
func (s Selection) WithTab(tab Tab) Selection {
	s.tab = tab
	return s
}

// Clear drops the selection and keeps the tab.
func (s Selection) Clear() Selection {
	return Selection{tab: s.tab}
}

// Within clears the selection when it no longer names one of count slots.
func (s Selection) Within(count int) Selection {
	if s.selected && (s.index < 0 || s.index >= count) {
		return s.Clear()
	}
	return s
}
