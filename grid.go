package artboard

import "math"

// LineOrientation distinguishes the two grid-line directions.
type LineOrientation uint8

const (
	// Vertical lines run parallel to the Y axis; Position is their X
	// coordinate.
	Vertical LineOrientation = iota
	// Horizontal lines run parallel to the X axis; Position is their Y
	// coordinate.
	Horizontal
)

// String returns a human-readable name for the orientation.
func (o LineOrientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// GridLine is one ruler/snap-grid line descriptor. Position is in
// pixels along the axis perpendicular to the line.
type GridLine struct {
	Orientation LineOrientation
	Position    float64
}

// Span returns the line's two endpoints across an artboard of the
// given size, for renderers that draw lines as segments.
func (l GridLine) Span(artboardWidth, artboardHeight float64) (Point, Point) {
	if l.Orientation == Vertical {
		return Pt(l.Position, 0), Pt(l.Position, artboardHeight)
	}
	return Pt(0, l.Position), Pt(artboardWidth, l.Position)
}

// GridLineSet is the grid-line generator's output: line descriptors in
// axis-major order (all vertical lines ascending by position, then all
// horizontal lines ascending), plus the stroke metadata shared by
// every line. Renderers can draw it without re-sorting.
type GridLineSet struct {
	Lines       []GridLine
	StrokeWidth float64
	Stroke      RGBA
}

// strideSlack is the allowance above the line budget for the forced
// far-boundary line on each axis.
const strideSlack = 2

// ComputeGridLines computes the ruler/snap-grid lines for an artboard.
//
// Dimensions, spacings, and lineWidth are pixel magnitudes; maxLines
// is a hard rendering-performance budget on the number of descriptors
// emitted. The stroke color and lineWidth pass through to the result
// unchanged.
//
// A nil result means "draw no grid" and is the normal outcome for
// degenerate input: any of artboardWidth, artboardHeight, spacingX,
// spacingY, lineWidth, or maxLines being zero or negative.
//
// Each axis naively carries floor(dimension/spacing)+1 lines,
// inclusive of both the line at 0 and the far boundary. When the
// combined count would exceed maxLines, every stride-th line is
// emitted instead, with the smallest stride that brings the total
// within maxLines plus a small slack for the always-included far
// boundaries. The stride search is deterministic and bounded for any
// positive input, so even 1px spacing over a huge artboard stays near
// the budget.
//
// Pure: identical inputs always yield identical output.
func ComputeGridLines(artboardWidth, artboardHeight, spacingX, spacingY, lineWidth float64, stroke RGBA, maxLines int) *GridLineSet {
	if artboardWidth <= 0 || artboardHeight <= 0 ||
		spacingX <= 0 || spacingY <= 0 ||
		lineWidth <= 0 || maxLines <= 0 {
		return nil
	}

	nx := axisCount(artboardWidth, spacingX)
	ny := axisCount(artboardHeight, spacingY)

	stride := 1
	if nx+ny > maxLines {
		stride = chooseStride(nx, ny, maxLines)
		Logger().Debug("grid line budget exceeded, applying stride",
			"naive", nx+ny,
			"maxLines", maxLines,
			"stride", stride,
			"emitted", stridedCount(nx, stride)+stridedCount(ny, stride))
	}

	lines := make([]GridLine, 0, stridedCount(nx, stride)+stridedCount(ny, stride))
	lines = appendAxisLines(lines, Vertical, nx, stride, spacingX)
	lines = appendAxisLines(lines, Horizontal, ny, stride, spacingY)

	return &GridLineSet{
		Lines:       lines,
		StrokeWidth: lineWidth,
		Stroke:      stroke,
	}
}

// axisCount is the naive line count for one axis,
// floor(dimension/spacing)+1, saturated so that pathological spacing
// (sub-nanopixel over a huge artboard) cannot overflow the count; the
// stride search keeps the emitted total near the budget either way.
func axisCount(dim, spacing float64) int {
	const maxAxisCount = 1 << 30
	n := math.Floor(dim/spacing) + 1
	if n > maxAxisCount {
		return maxAxisCount
	}
	return int(n)
}

// chooseStride returns the smallest stride >= 1 whose emitted total
// fits within maxLines+strideSlack. The search starts at the naive
// quotient (the emitted total shrinks roughly as naive/stride) and
// walks upward; it stops at the stride that reduces each axis to its
// boundary lines, which is the best any stride can do.
func chooseStride(nx, ny, maxLines int) int {
	s := (nx + ny) / maxLines
	if s < 1 {
		s = 1
	}
	maxStride := max(nx, ny)
	for s < maxStride && stridedCount(nx, s)+stridedCount(ny, s) > maxLines+strideSlack {
		s++
	}
	return s
}

// stridedCount is the number of lines one axis emits for a naive count
// of n at the given stride: indices 0, stride, 2*stride, ... plus the
// far boundary index n-1 when the stride does not land on it.
func stridedCount(n, stride int) int {
	if n <= 1 {
		return n
	}
	last := n - 1
	c := last/stride + 1
	if last%stride != 0 {
		c++
	}
	return c
}

// appendAxisLines emits one axis's lines in ascending position order.
// The far boundary line is always included, even when the stride would
// step past it.
func appendAxisLines(lines []GridLine, o LineOrientation, n, stride int, spacing float64) []GridLine {
	last := n - 1
	for i := 0; i <= last; i += stride {
		lines = append(lines, GridLine{Orientation: o, Position: float64(i) * spacing})
	}
	if last > 0 && last%stride != 0 {
		lines = append(lines, GridLine{Orientation: o, Position: float64(last) * spacing})
	}
	return lines
}
