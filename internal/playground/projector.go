package playground

const (
	// ItemExtent is the fixed size given to an item along the direction
	// that is not left automatic.
	ItemExtent = "60px"
	// ContainerPadding is always applied to the wrapper around the items.
	ContainerPadding = "0.7rem"
	// ItemPadding is always applied to every item.
	ItemPadding = "0.75rem"

	autoSize = "auto"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ContainerStyle is the style handed to the wrapper of the item collection.
type ContainerStyle struct {
	Properties ContainerProperties
	Padding    string
}

// Declarations returns the nine container properties followed by padding,
// with values passed through verbatim.
func (s ContainerStyle) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(containerDefs)+1)
	for _, field := range ContainerFields() {
		decls = append(decls, Declaration{Property: field.CSSName(), Value: s.Properties.Get(field)})
	}
	return append(decls, Declaration{Property: "padding", Value: s.Padding})
}

// SizingHint fixes one dimension of an item and leaves the other automatic.
type SizingHint struct {
	Width  string
	Height string
}

// SizingFor derives the hint from the flex direction: column directions get
// a fixed height and automatic width, row directions the reverse.
func SizingFor(direction FlexDirection) SizingHint {
	if direction.IsColumn() {
		return SizingHint{Width: autoSize, Height: ItemExtent}
	}
	return SizingHint{Width: ItemExtent, Height: autoSize}
}

// ItemStyle is the projected style of one item slot.
type ItemStyle struct {
	Index    int
	Selected bool
	Flex     ItemProperties
	Sizing   SizingHint
	Padding  string
}

// Declarations returns the item's CSS declarations.
func (s ItemStyle) Declarations() []Declaration {
	decls := []Declaration{
		{Property: "width", Value: s.Sizing.Width},
		{Property: "height", Value: s.Sizing.Height},
		{Property: "padding", Value: s.Padding},
	}
	for _, field := range ItemFields() {
		decls = append(decls, Declaration{Property: field.CSSName(), Value: s.Flex.Get(field)})
	}
	return decls
}

// ProjectContainer returns the wrapper style for the container properties.
func ProjectContainer(container ContainerProperties) ContainerStyle {
	return ContainerStyle{Properties: container, Padding: ContainerPadding}
}

// ProjectStyle returns the style of the item at index. Only the selected
// item carries the override; every other index gets the default item style.
// Values are never interpreted.
func ProjectStyle(container ContainerProperties, item ItemProperties, selection Selection, index int) ItemStyle {
	style := ItemStyle{
		Index:   index,
		Flex:    DefaultItemProperties(),
		Sizing:  SizingFor(container.FlexDirection),
		Padding: ItemPadding,
	}
	if selection.IsSelected(index) {
		style.Selected = true
		style.Flex = item
	}
	return style
}

// Projection is the complete render input: one container style and one
// style per item slot, indexed 0..count-1.
type Projection struct {
	Container ContainerStyle
	Items     []ItemStyle
}

// Project computes the container style once and every item style for count
// slots.
func Project(container ContainerProperties, item ItemProperties, selection Selection, count int) Projection {
	items := make([]ItemStyle, count)
	for i := range items {
		items[i] = ProjectStyle(container, item, selection, i)
	}
	return Projection{Container: ProjectContainer(container), Items: items}
}
