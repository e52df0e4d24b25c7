package playground

import "strings"

// fieldDef describes one editable property: its camelCase key, CSS name,
// display label and, for enumerated properties, the legal options in
// display order.
type fieldDef struct {
	key         string
	css         string
	label       string
	placeholder string
	options     []string
}

func (s fieldDef) matches(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(name, s.key) || strings.EqualFold(name, s.css) ||
		strings.EqualFold(strings.ReplaceAll(name, "_", "-"), s.css)
}

// CycleOption returns the option step positions away from current, wrapping
// at both ends. A current value outside options starts from the first option.
func CycleOption(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	pos := -1
	for i, opt := range options {
		if opt == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return options[0]
	}
	n := len(options)
	return options[((pos+step)%n+n)%n]
}
