package playground

// AlignSelf overrides the container's align-items for one item.
type AlignSelf string

const (
	AlignSelfAuto      AlignSelf = "auto"
	AlignSelfFlexStart AlignSelf = "flex-start"
	AlignSelfFlexEnd   AlignSelf = "flex-end"
	AlignSelfCenter    AlignSelf = "center"
	AlignSelfBaseline  AlignSelf = "baseline"
	AlignSelfStretch   AlignSelf = "stretch"
)

// ItemProperties is the override being edited. There is one record per
// session; it applies only to the selected item.
type ItemProperties struct {
	FlexGrow   string
	FlexShrink string
	FlexBasis  string
	AlignSelf  AlignSelf
	Order      string
}

// DefaultItemProperties returns the fixed default item style. Unselected
// items always render with these values.
func DefaultItemProperties() ItemProperties {
	return ItemProperties{
		FlexGrow:   "0",
		FlexShrink: "1",
		FlexBasis:  "auto",
		AlignSelf:  AlignSelfAuto,
		Order:      "0",
	}
}

// ItemField identifies one ItemProperties field.
type ItemField int

const (
	FieldFlexGrow ItemField = iota
	FieldFlexShrink
	FieldFlexBasis
	FieldAlignSelf
	FieldOrder
)

var itemDefs = [...]fieldDef{
	FieldFlexGrow:   {key: "flexGrow", css: "flex-grow", label: "Flex Grow", placeholder: "e.g., 1"},
	FieldFlexShrink: {key: "flexShrink", css: "flex-shrink", label: "Flex Shrink", placeholder: "e.g., 1"},
	FieldFlexBasis:  {key: "flexBasis", css: "flex-basis", label: "Flex Basis", placeholder: "e.g., auto, 100px"},
	FieldAlignSelf: {
		key: "alignSelf", css: "align-self", label: "Align Self",
		options: []string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"},
	},
	FieldOrder: {key: "order", css: "order", label: "Order", placeholder: "e.g., 0, 1, -1"},
}

// ItemFields lists every item field in display order.
func ItemFields() []ItemField {
	fields := make([]ItemField, len(itemDefs))
	for i := range itemDefs {
		fields[i] = ItemField(i)
	}
	return fields
}

// ParseItemField resolves a camelCase, kebab-case or snake_case property name.
func ParseItemField(name string) (ItemField, bool) {
	for i, def := range itemDefs {
		if def.matches(name) {
			return ItemField(i), true
		}
	}
	return 0, false
}

func (f ItemField) def() fieldDef {
	if f < 0 || int(f) >= len(itemDefs) {
		return fieldDef{}
	}
	return itemDefs[f]
}

// String returns the camelCase key, e.g. "flexGrow".
func (f ItemField) String() string { return f.def().key }

// CSSName returns the CSS property name, e.g. "flex-grow".
func (f ItemField) CSSName() string { return f.def().css }

// Label returns the human-readable field title.
func (f ItemField) Label() string { return f.def().label }

// Options returns the enumerated values, or nil for free-form fields.
func (f ItemField) Options() []string { return f.def().options }

// Placeholder returns an input hint for free-form fields.
func (f ItemField) Placeholder() string { return f.def().placeholder }

// Get returns the field value as a string.
func (p ItemProperties) Get(field ItemField) string {
	switch field {
	case FieldFlexGrow:
		return p.FlexGrow
	case FieldFlexShrink:
		return p.FlexShrink
	case FieldFlexBasis:
		return p.FlexBasis
	case FieldAlignSelf:
		return string(p.AlignSelf)
	case FieldOrder:
		return p.Order
	}
	return ""
}

// Set replaces exactly one field without validating the value.
func (p *ItemProperties) Set(field ItemField, value string) {
	switch field {
	case FieldFlexGrow:
		p.FlexGrow = value
	case FieldFlexShrink:
		p.FlexShrink = value
	case FieldFlexBasis:
		p.FlexBasis = value
	case FieldAlignSelf:
		p.AlignSelf = AlignSelf(value)
	case FieldOrder:
		p.Order = value
	}
}

// Reset restores every field to its default.
func (p *ItemProperties) Reset() {
	*p = DefaultItemProperties()
}
