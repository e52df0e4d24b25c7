package preview

import (
	"math"
	"strconv"
	"strings"
)

// RemPx is the root font size used to resolve rem and em lengths.
const RemPx = 16.0

type unit int

const (
	unitPx unit = iota
	unitPercent
)

// length is a parsed CSS length. Only the units a playground user is likely
// to type are understood; anything else is rejected so the caller can fall
// back to the property's default.
type length struct {
	value float64
	unit  unit
}

var lengthUnits = []struct {
	suffix string
	scale  float64
	unit   unit
}{
	{"rem", RemPx, unitPx},
	{"em", RemPx, unitPx},
	{"px", 1, unitPx},
	{"%", 1, unitPercent},
}

func parseLength(raw string) (length, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "auto" {
		return length{}, false
	}
	for _, u := range lengthUnits {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return length{}, false
		}
		return length{value: v * u.scale, unit: u.unit}, true
	}
	// Unitless numbers are read as pixels.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return length{}, false
	}
	return length{value: v, unit: unitPx}, true
}

// MaxCells bounds any resolved length. It is far larger than any terminal
// and small enough that sums over a full line of items cannot overflow.
const MaxCells = 1 << 16

// cells resolves the length to terminal cells. ref is the percentage basis
// in cells, pxPerCell the number of CSS pixels one cell covers on this axis.
// Results are clamped to MaxCells.
func (l length) cells(ref int, pxPerCell float64) int {
	var v float64
	switch {
	case l.unit == unitPercent:
		v = float64(ref) * l.value / 100
	case pxPerCell <= 0:
		return 0
	default:
		v = l.value / pxPerCell
	}
	return int(math.Round(math.Min(v, MaxCells)))
}

// parseFactor reads a non-negative flex-grow/flex-shrink factor.
func parseFactor(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseOrder reads an integer order value.
func parseOrder(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}
