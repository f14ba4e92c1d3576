package artboard

import (
	"reflect"
	"testing"
)

func TestComputeGridLinesDegenerate(t *testing.T) {
	stroke := RGB(0.8, 0.8, 0.8)
	tests := []struct {
		name           string
		w, h, sx, sy   float64
		lineWidth      float64
		maxLines       int
	}{
		{"zero width", 0, 100, 10, 10, 1, 600},
		{"zero height", 100, 0, 10, 10, 1, 600},
		{"zero spacingX", 100, 100, 0, 10, 1, 600},
		{"zero spacingY", 100, 100, 10, 0, 1, 600},
		{"zero lineWidth", 100, 100, 10, 10, 0, 600},
		{"negative width", -100, 100, 10, 10, 1, 600},
		{"negative spacing", 100, 100, -10, 10, 1, 600},
		{"zero budget", 100, 100, 10, 10, 1, 0},
		{"negative budget", 100, 100, 10, 10, 1, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGridLines(tt.w, tt.h, tt.sx, tt.sy, tt.lineWidth, stroke, tt.maxLines)
			if got != nil {
				t.Errorf("ComputeGridLines() = %d lines, want nil (no grid)", len(got.Lines))
			}
		})
	}
}

func TestComputeGridLinesExactCount(t *testing.T) {
	got := ComputeGridLines(100, 100, 10, 10, 1, RGB(0, 0, 0), 600)
	if got == nil {
		t.Fatal("ComputeGridLines() = nil, want grid")
	}
	// 11 vertical + 11 horizontal, inclusive of 0 and 100 on each axis.
	if len(got.Lines) != 22 {
		t.Fatalf("line count = %d, want 22", len(got.Lines))
	}
	for i := 0; i < 11; i++ {
		want := GridLine{Orientation: Vertical, Position: float64(i) * 10}
		if got.Lines[i] != want {
			t.Errorf("Lines[%d] = %+v, want %+v", i, got.Lines[i], want)
		}
	}
	for i := 0; i < 11; i++ {
		want := GridLine{Orientation: Horizontal, Position: float64(i) * 10}
		if got.Lines[11+i] != want {
			t.Errorf("Lines[%d] = %+v, want %+v", 11+i, got.Lines[11+i], want)
		}
	}
}

func TestComputeGridLinesStrideCap(t *testing.T) {
	got := ComputeGridLines(20000, 20000, 1, 1, 1, RGB(0, 0, 0), 600)
	if got == nil {
		t.Fatal("ComputeGridLines() = nil, want strided grid")
	}
	if n := len(got.Lines); n > 650 {
		t.Errorf("line count = %d, want <= 650 (600 cap plus slack)", n)
	}
	if n := len(got.Lines); n < 4 {
		t.Errorf("line count = %d, suspiciously sparse for a 600 budget", n)
	}
	assertAxisMajor(t, got)
	assertBoundariesPresent(t, got, 20000, 20000)
}

// Sub-nanopixel spacing over a large artboard must still terminate
// with a line count near the budget; the stride is the sole safety
// valve against unbounded output.
func TestComputeGridLinesUltrafineSpacing(t *testing.T) {
	got := ComputeGridLines(20000, 20000, 1e-9, 1e-9, 1, RGB(0, 0, 0), 600)
	if got == nil {
		t.Fatal("ComputeGridLines() = nil, want strided grid")
	}
	if n := len(got.Lines); n > 650 {
		t.Errorf("line count = %d, want <= 650", n)
	}
	assertAxisMajor(t, got)
}

// The far boundary line is emitted even when the stride steps past it,
// and even when the artboard is not a spacing multiple.
func TestComputeGridLinesBoundaryInclusion(t *testing.T) {
	tests := []struct {
		name         string
		w, h, sx, sy float64
		maxLines     int
		lastX, lastY float64
	}{
		{"no stride, non-multiple size", 105, 95, 10, 10, 600, 100, 90},
		{"strided square", 1000, 1000, 1, 1, 100, 1000, 1000},
		{"strided, stride misses boundary", 997, 997, 1, 1, 100, 997, 997},
		{"tiny budget keeps boundaries", 1000, 1000, 1, 1, 4, 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGridLines(tt.w, tt.h, tt.sx, tt.sy, 1, RGB(0, 0, 0), tt.maxLines)
			if got == nil {
				t.Fatal("ComputeGridLines() = nil, want grid")
			}
			assertAxisMajor(t, got)
			assertBoundariesPresent(t, got, tt.lastX, tt.lastY)
		})
	}
}

func TestComputeGridLinesStrokePassThrough(t *testing.T) {
	stroke := Hex("#ffcc00")
	got := ComputeGridLines(50, 50, 25, 25, 2.5, stroke, 600)
	if got == nil {
		t.Fatal("ComputeGridLines() = nil, want grid")
	}
	if got.Stroke != stroke {
		t.Errorf("Stroke = %+v, want %+v passed through", got.Stroke, stroke)
	}
	if got.StrokeWidth != 2.5 {
		t.Errorf("StrokeWidth = %v, want 2.5", got.StrokeWidth)
	}
}

func TestComputeGridLinesDeterministic(t *testing.T) {
	a := ComputeGridLines(20000, 12345, 1, 3, 1, RGB(1, 0, 0), 500)
	b := ComputeGridLines(20000, 12345, 1, 3, 1, RGB(1, 0, 0), 500)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different grids")
	}
}

func TestGridLineSpan(t *testing.T) {
	v := GridLine{Orientation: Vertical, Position: 30}
	p0, p1 := v.Span(100, 80)
	if p0 != Pt(30, 0) || p1 != Pt(30, 80) {
		t.Errorf("vertical Span = %v..%v, want (30,0)..(30,80)", p0, p1)
	}
	h := GridLine{Orientation: Horizontal, Position: 40}
	p0, p1 = h.Span(100, 80)
	if p0 != Pt(0, 40) || p1 != Pt(100, 40) {
		t.Errorf("horizontal Span = %v..%v, want (0,40)..(100,40)", p0, p1)
	}
}

func TestStridedCount(t *testing.T) {
	tests := []struct {
		n, stride, want int
	}{
		{1, 1, 1},
		{1, 5, 1},
		{11, 1, 11},
		{11, 2, 6},  // 0,2,4,6,8,10: boundary landed on
		{11, 3, 5},  // 0,3,6,9 + forced 10
		{11, 10, 2}, // 0,10
		{11, 100, 2},
		{20001, 67, 300},
	}
	for _, tt := range tests {
		if got := stridedCount(tt.n, tt.stride); got != tt.want {
			t.Errorf("stridedCount(%d, %d) = %d, want %d", tt.n, tt.stride, got, tt.want)
		}
	}
}

func assertAxisMajor(t *testing.T, set *GridLineSet) {
	t.Helper()
	sawHorizontal := false
	var prev *GridLine
	for i := range set.Lines {
		l := set.Lines[i]
		if l.Orientation == Horizontal {
			sawHorizontal = true
		} else if sawHorizontal {
			t.Fatal("vertical line after horizontal block: output not axis-major")
		}
		if prev != nil && prev.Orientation == l.Orientation && l.Position <= prev.Position {
			t.Fatalf("positions not strictly ascending: %v then %v", prev.Position, l.Position)
		}
		prev = &set.Lines[i]
	}
}

func assertBoundariesPresent(t *testing.T, set *GridLineSet, lastX, lastY float64) {
	t.Helper()
	var haveX0, haveXLast, haveY0, haveYLast bool
	for _, l := range set.Lines {
		switch l.Orientation {
		case Vertical:
			haveX0 = haveX0 || l.Position == 0
			haveXLast = haveXLast || l.Position == lastX
		case Horizontal:
			haveY0 = haveY0 || l.Position == 0
			haveYLast = haveYLast || l.Position == lastY
		}
	}
	if !haveX0 || !haveXLast {
		t.Errorf("vertical boundary lines missing: 0 present=%v, %v present=%v", haveX0, lastX, haveXLast)
	}
	if !haveY0 || !haveYLast {
		t.Errorf("horizontal boundary lines missing: 0 present=%v, %v present=%v", haveY0, lastY, haveYLast)
	}
}
