package playground

// Display is the container's outer display type.
type Display string

const (
	DisplayFlex       Display = "flex"
	DisplayInlineFlex Display = "inline-flex"
)

// FlexDirection selects the main axis and its orientation.
type FlexDirection string

const (
	DirectionRow           FlexDirection = "row"
	DirectionRowReverse    FlexDirection = "row-reverse"
	DirectionColumn        FlexDirection = "column"
	DirectionColumnReverse FlexDirection = "column-reverse"
)

// IsColumn reports whether the main axis is vertical.
func (d FlexDirection) IsColumn() bool {
	return d == DirectionColumn || d == DirectionColumnReverse
}

// IsReverse reports whether items run from the main-end edge.
func (d FlexDirection) IsReverse() bool {
	return d == DirectionRowReverse || d == DirectionColumnReverse
}

// JustifyContent distributes free space along the main axis.
type JustifyContent string

const (
	JustifyFlexStart    JustifyContent = "flex-start"
	JustifyFlexEnd      JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

// AlignItems positions items on the cross axis within their line.
type AlignItems string

const (
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsStretch   AlignItems = "stretch"
	AlignItemsBaseline  AlignItems = "baseline"
)

// AlignContent distributes lines on the cross axis when wrapping.
type AlignContent string

const (
	AlignContentFlexStart    AlignContent = "flex-start"
	AlignContentFlexEnd      AlignContent = "flex-end"
	AlignContentCenter       AlignContent = "center"
	AlignContentStretch      AlignContent = "stretch"
	AlignContentSpaceBetween AlignContent = "space-between"
	AlignContentSpaceAround  AlignContent = "space-around"
)

// FlexWrap controls whether items break onto multiple lines.
type FlexWrap string

const (
	WrapNoWrap      FlexWrap = "nowrap"
	WrapWrap        FlexWrap = "wrap"
	WrapWrapReverse FlexWrap = "wrap-reverse"
)

// ContainerProperties is the flex container configuration. The store does
// not validate values: enumerated fields normally receive one of their
// options but any string is kept as given.
type ContainerProperties struct {
	Display        Display
	FlexDirection  FlexDirection
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent
	FlexWrap       FlexWrap
	Gap            string
	RowGap         string
	ColumnGap      string
}

// DefaultContainerProperties returns the session-start container configuration.
func DefaultContainerProperties() ContainerProperties {
	return ContainerProperties{
		Display:        DisplayFlex,
		FlexDirection:  DirectionRow,
		JustifyContent: JustifyCenter,
		AlignItems:     AlignItemsCenter,
		AlignContent:   AlignContentStretch,
		FlexWrap:       WrapNoWrap,
		Gap:            "0.5rem",
		RowGap:         "0.5rem",
		ColumnGap:      "0.5rem",
	}
}

// ContainerField identifies one ContainerProperties field.
type ContainerField int

const (
	FieldDisplay ContainerField = iota
	FieldFlexDirection
	FieldJustifyContent
	FieldAlignItems
	FieldAlignContent
	FieldFlexWrap
	FieldGap
	FieldRowGap
	FieldColumnGap
)

var containerDefs = [...]fieldDef{
	FieldDisplay: {
		key: "display", css: "display", label: "Display",
		options: []string{"flex", "inline-flex"},
	},
	FieldFlexDirection: {
		key: "flexDirection", css: "flex-direction", label: "Flex Direction",
		options: []string{"row", "row-reverse", "column", "column-reverse"},
	},
	FieldJustifyContent: {
		key: "justifyContent", css: "justify-content", label: "Justify Content",
		options: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"},
	},
	FieldAlignItems: {
		key: "alignItems", css: "align-items", label: "Align Items",
		options: []string{"flex-start", "flex-end", "center", "stretch", "baseline"},
	},
	FieldAlignContent: {
		key: "alignContent", css: "align-content", label: "Align Content",
		options: []string{"flex-start", "flex-end", "center", "stretch", "space-between", "space-around"},
	},
	FieldFlexWrap: {
		key: "flexWrap", css: "flex-wrap", label: "Flex Wrap",
		options: []string{"nowrap", "wrap", "wrap-reverse"},
	},
	FieldGap:       {key: "gap", css: "gap", label: "Gap", placeholder: "e.g., 1rem"},
	FieldRowGap:    {key: "rowGap", css: "row-gap", label: "Row Gap", placeholder: "e.g., 1rem"},
	FieldColumnGap: {key: "columnGap", css: "column-gap", label: "Column Gap", placeholder: "e.g., 1rem"},
}

// ContainerFields lists every container field in display order.
func ContainerFields() []ContainerField {
	fields := make([]ContainerField, len(containerDefs))
	for i := range containerDefs {
		fields[i] = ContainerField(i)
	}
	return fields
}

// ParseContainerField resolves a camelCase, kebab-case or snake_case
// property name.
func ParseContainerField(name string) (ContainerField, bool) {
	for i, def := range containerDefs {
		if def.matches(name) {
			return ContainerField(i), true
		}
	}
	return 0, false
}

func (f ContainerField) def() fieldDef {
	if f < 0 || int(f) >= len(containerDefs) {
		return fieldDef{}
	}
	return containerDefs[f]
}

// String returns the camelCase key, e.g. "flexDirection".
func (f ContainerField) String() string { return f.def().key }

// CSSName returns the CSS property name, e.g. "flex-direction".
func (f ContainerField) CSSName() string { return f.def().css }

// Label returns the human-readable field title.
func (f ContainerField) Label() string { return f.def().label }

// Options returns the enumerated values, or nil for free-form fields.
func (f ContainerField) Options() []string { return f.def().options }

// Placeholder returns an input hint for free-form fields.
func (f ContainerField) Placeholder() string { return f.def().placeholder }

// Get returns the field value as a string.
func (p ContainerProperties) Get(field ContainerField) string {
	switch field {
	case FieldDisplay:
		return string(p.Display)
	case FieldFlexDirection:
		return string(p.FlexDirection)
	case FieldJustifyContent:
		return string(p.JustifyContent)
	case FieldAlignItems:
		return string(p.AlignItems)
	case FieldAlignContent:
		return string(p.AlignContent)
	case FieldFlexWrap:
		return string(p.FlexWrap)
	case FieldGap:
		return p.Gap
	case FieldRowGap:
		return p.RowGap
	case FieldColumnGap:
		return p.ColumnGap
	}
	return ""
}

// Set replaces exactly one field, leaving the others unchanged. Unknown
// fields are ignored.
func (p *ContainerProperties) Set(field ContainerField, value string) {
	switch field {
	case FieldDisplay:
		p.Display = Display(value)
	case FieldFlexDirection:
		p.FlexDirection = FlexDirection(value)
	case FieldJustifyContent:
		p.JustifyContent = JustifyContent(value)
	case FieldAlignItems:
		p.AlignItems = AlignItems(value)
	case FieldAlignContent:
		p.AlignContent = AlignContent(value)
	case FieldFlexWrap:
		p.FlexWrap = FlexWrap(value)
	case FieldGap:
		p.Gap = value
	case FieldRowGap:
		p.RowGap = value
	case FieldColumnGap:
		p.ColumnGap = value
	}
}

// Reset restores every field to its default.
func (p *ContainerProperties) Reset() {
	*p = DefaultContainerProperties()
}
