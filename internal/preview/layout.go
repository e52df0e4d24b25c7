package preview

import (
	"math"
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
)

// Scale maps CSS pixels onto terminal cells. Cells are roughly twice as tall
// as they are wide, so the vertical ratio is doubled.
type Scale struct {
	PxPerCol float64
	PxPerRow float64
}

// DefaultScale turns the 300x600 portrait screen into a 30x30 cell area.
var DefaultScale = Scale{PxPerCol: 10, PxPerRow: 20}

// Screen is the simulated device screen size in cells.
type Screen struct {
	Width  int
	Height int
}

// ScreenFor returns the device screen for an orientation.
func ScreenFor(o playground.Orientation, scale Scale) Screen {
	w, h := o.ScreenSize()
	return Screen{
		Width:  int(math.Round(float64(w) / scale.PxPerCol)),
		Height: int(math.Round(float64(h) / scale.PxPerRow)),
	}
}

// Box is the computed rectangle of one item, in cells relative to the
// screen's top-left corner.
type Box struct {
	Index    int
	Label    string
	X, Y     int
	W, H     int
	Selected bool
}

type flexItem struct {
	style     playground.ItemStyle
	order     int
	main      int
	cross     int
	crossAuto bool
	grow      float64
	shrink    float64
	mainPos   int
	crossPos  int
}

type flexLine struct {
	items []*flexItem
	cross int
	pos   int
}

// axes groups the per-axis values of one layout pass.
type axes struct {
	horizontal bool
	mainLen    int
	crossLen   int
	mainPx     float64
	mainGap    int
	crossGap   int
}

// Layout positions every item of the projection inside the screen. Values
// the engine cannot interpret fall back to the property's default, the same
// way a browser drops an invalid declaration.
func Layout(p playground.Projection, screen Screen, scale Scale) []Box {
	props := p.Container.Properties

	padX, padY := 0, 0
	if l, ok := parseLength(p.Container.Padding); ok {
		padX = l.cells(screen.Width, scale.PxPerCol)
		padY = l.cells(screen.Width, scale.PxPerRow)
	}
	contentW := max(screen.Width-2*padX, 0)
	contentH := max(screen.Height-2*padY, 0)

	ax := resolveAxes(props, contentW, contentH, scale)

	items := make([]*flexItem, len(p.Items))
	for i, style := range p.Items {
		items[i] = newFlexItem(style, ax, scale)
	}
	ordered := make([]*flexItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	wrap := props.FlexWrap == playground.WrapWrap || props.FlexWrap == playground.WrapWrapReverse
	lines := breakLines(ordered, ax, wrap)

	for _, line := range lines {
		resolveFlexible(line, ax)
		justify(line, ax, props.JustifyContent)
		if props.FlexDirection.IsReverse() {
			for _, it := range line.items {
				it.mainPos = ax.mainLen - it.mainPos - it.main
			}
		}
	}

	placeLines(lines, ax, props, wrap)

	boxes := make([]Box, len(items))
	for i, it := range items {
		box := Box{
			Index:    it.style.Index,
			Label:    strconv.Itoa(it.style.Index + 1),
			Selected: it.style.Selected,
		}
		if ax.horizontal {
			box.X, box.Y, box.W, box.H = it.mainPos, it.crossPos, it.main, it.cross
		} else {
			box.X, box.Y, box.W, box.H = it.crossPos, it.mainPos, it.cross, it.main
		}
		box.X += padX
		box.Y += padY
		boxes[i] = box
	}
	return boxes
}

func resolveAxes(props playground.ContainerProperties, contentW, contentH int, scale Scale) axes {
	colGap := firstLength(contentW, scale.PxPerCol, props.ColumnGap, props.Gap)
	rowGap := firstLength(contentH, scale.PxPerRow, props.RowGap, props.Gap)

	if props.FlexDirection.IsColumn() {
		return axes{
			mainLen:  contentH,
			crossLen: contentW,
			mainPx:   scale.PxPerRow,
			mainGap:  rowGap,
			crossGap: colGap,
		}
	}
	return axes{
		horizontal: true,
		mainLen:    contentW,
		crossLen:   contentH,
		mainPx:     scale.PxPerCol,
		mainGap:    colGap,
		crossGap:   rowGap,
	}
}

// firstLength resolves the first parseable candidate. The longhand gaps win
// over the shorthand, matching declaration order on the wrapper.
func firstLength(ref int, pxPerCell float64, candidates ...string) int {
	for _, c := range candidates {
		if l, ok := parseLength(c); ok {
			return l.cells(ref, pxPerCell)
		}
	}
	return 0
}

func newFlexItem(style playground.ItemStyle, ax axes, scale Scale) *flexItem {
	defaults := playground.DefaultItemProperties()

	padCol, padRow := 0, 0
	if l, ok := parseLength(style.Padding); ok {
		padCol = l.cells(0, scale.PxPerCol)
		padRow = l.cells(0, scale.PxPerRow)
	}
	label := len(strconv.Itoa(style.Index + 1))
	contentW := label + 2*padCol
	contentH := 1 + 2*padRow

	refW, refH := ax.mainLen, ax.crossLen
	if !ax.horizontal {
		refW, refH = refH, refW
	}
	width, widthAuto := contentW, true
	if l, ok := parseLength(style.Sizing.Width); ok {
		width, widthAuto = l.cells(refW, scale.PxPerCol), false
	}
	height, heightAuto := contentH, true
	if l, ok := parseLength(style.Sizing.Height); ok {
		height, heightAuto = l.cells(refH, scale.PxPerRow), false
	}

	it := &flexItem{style: style}
	if ax.horizontal {
		it.main, it.cross, it.crossAuto = width, height, heightAuto
	} else {
		it.main, it.cross, it.crossAuto = height, width, widthAuto
	}
	if l, ok := parseLength(style.Flex.FlexBasis); ok {
		it.main = l.cells(ax.mainLen, ax.mainPx)
	}
	it.main = max(it.main, 1)
	it.cross = max(it.cross, 1)

	it.grow, _ = parseFactor(defaults.FlexGrow)
	if v, ok := parseFactor(style.Flex.FlexGrow); ok {
		it.grow = v
	}
	it.shrink, _ = parseFactor(defaults.FlexShrink)
	if v, ok := parseFactor(style.Flex.FlexShrink); ok {
		it.shrink = v
	}
	if v, ok := parseOrder(style.Flex.Order); ok {
		it.order = v
	}
	return it
}

func breakLines(items []*flexItem, ax axes, wrap bool) []*flexLine {
	if !wrap {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	current := &flexLine{}
	used := 0
	for _, it := range items {
		next := used + it.main
		if len(current.items) > 0 {
			next += ax.mainGap
		}
		if len(current.items) > 0 && next > ax.mainLen {
			lines = append(lines, current)
			current = &flexLine{}
			next = it.main
		}
		current.items = append(current.items, it)
		used = next
	}
	if len(current.items) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func lineFree(line *flexLine, ax axes) int {
	used := 0
	for _, it := range line.items {
		used += it.main
	}
	if n := len(line.items); n > 1 {
		used += ax.mainGap * (n - 1)
	}
	return ax.mainLen - used
}

// resolveFlexible grows or shrinks the items of a line to absorb free space.
func resolveFlexible(line *flexLine, ax axes) {
	free := lineFree(line, ax)
	switch {
	case free > 0:
		total := 0.0
		for _, it := range line.items {
			total += it.grow
		}
		if total == 0 {
			return
		}
		// A sum of factors below one only hands out that fraction.
		share := float64(free) / math.Max(total, 1)
		distribute(line.items, func(it *flexItem) float64 { return it.grow * share })
	case free < 0:
		total := 0.0
		for _, it := range line.items {
			total += it.shrink * float64(it.main)
		}
		if total == 0 {
			return
		}
		over := float64(-free)
		distribute(line.items, func(it *flexItem) float64 {
			return -over * it.shrink * float64(it.main) / total
		})
		for _, it := range line.items {
			it.main = max(it.main, 1)
		}
	}
}

// distribute applies fractional deltas with cumulative rounding so the
// rounded total matches the exact one.
func distribute(items []*flexItem, delta func(*flexItem) float64) {
	exact := 0.0
	applied := 0
	for _, it := range items {
		exact += delta(it)
		step := int(math.Round(exact)) - applied
		it.main += step
		applied += step
	}
}

func justify(line *flexLine, ax axes, mode playground.JustifyContent) {
	n := len(line.items)
	free := float64(lineFree(line, ax))
	start, between := 0.0, 0.0

	switch mode {
	case playground.JustifyFlexEnd:
		start = free
	case playground.JustifyCenter:
		start = free / 2
	case playground.JustifySpaceBetween:
		if free > 0 && n > 1 {
			between = free / float64(n-1)
		}
	case playground.JustifySpaceAround:
		if free > 0 {
			between = free / float64(n)
			start = between / 2
		} else {
			start = free / 2
		}
	case playground.JustifySpaceEvenly:
		if free > 0 {
			between = free / float64(n+1)
			start = between
		} else {
			start = free / 2
		}
	}

	pos := start
	for _, it := range line.items {
		it.mainPos = int(math.Round(pos))
		pos += float64(it.main+ax.mainGap) + between
	}
}

func placeLines(lines []*flexLine, ax axes, props playground.ContainerProperties, wrap bool) {
	for _, line := range lines {
		for _, it := range line.items {
			line.cross = max(line.cross, it.cross)
		}
	}

	if !wrap {
		lines[0].cross = ax.crossLen
	} else {
		alignContent(lines, ax, props.AlignContent)
	}

	for _, line := range lines {
		for _, it := range line.items {
			alignInLine(it, line, props.AlignItems)
			if props.FlexWrap == playground.WrapWrapReverse {
				it.crossPos = ax.crossLen - it.crossPos - it.cross
			}
		}
	}
}

func alignContent(lines []*flexLine, ax axes, mode playground.AlignContent) {
	n := len(lines)
	used := ax.crossGap * (n - 1)
	for _, line := range lines {
		used += line.cross
	}
	free := float64(ax.crossLen - used)
	start, between := 0.0, 0.0

	switch mode {
	case playground.AlignContentFlexStart:
	case playground.AlignContentFlexEnd:
		start = free
	case playground.AlignContentCenter:
		start = free / 2
	case playground.AlignContentSpaceBetween:
		if free > 0 && n > 1 {
			between = free / float64(n-1)
		}
	case playground.AlignContentSpaceAround:
		if free > 0 {
			between = free / float64(n)
			start = between / 2
		} else {
			start = free / 2
		}
	default:
		if free > 0 {
			extra := free / float64(n)
			exact, applied := 0.0, 0
			for _, line := range lines {
				exact += extra
				step := int(math.Round(exact)) - applied
				line.cross += step
				applied += step
			}
		}
	}

	pos := start
	for _, line := range lines {
		line.pos = int(math.Round(pos))
		pos += float64(line.cross+ax.crossGap) + between
	}
}

func alignInLine(it *flexItem, line *flexLine, items playground.AlignItems) {
	mode := string(items)
	switch self := it.style.Flex.AlignSelf; self {
	case playground.AlignSelfFlexStart, playground.AlignSelfFlexEnd, playground.AlignSelfCenter,
		playground.AlignSelfBaseline, playground.AlignSelfStretch:
		mode = string(self)
	}

	offset := 0
	switch mode {
	case "flex-start", "baseline":
	case "flex-end":
		offset = line.cross - it.cross
	case "center":
		offset = (line.cross - it.cross) / 2
	default:
		if it.crossAuto {
			it.cross = max(line.cross, 1)
		}
	}
	it.crossPos = line.pos + offset
}
