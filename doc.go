// Package artboard implements the numeric core of a canvas image editor.
//
// # Overview
//
// artboard owns the geometry math that the surrounding editor persists
// and renders: the fixed-point micro-pixel unit used for all stored
// geometry, the wire serialization of an image's placement on the
// artboard, the grid-line generator behind on-screen rulers and snap
// grids, and (in the nav subpackage) the selection identifiers the UI
// tree navigates with.
//
// # Quick Start
//
//	import "github.com/pxkit/artboard"
//
//	// Persisted geometry is fixed-point, never floating.
//	g := artboard.Geometry{
//	    Width:       artboard.MicroPxFromPixels(800),
//	    Height:      artboard.MicroPxFromPixels(600),
//	    RotationDeg: 15,
//	}
//	wire := g.ToWire() // clamp-and-stringify, ready for the storage layer
//
//	// Grid lines for the visible artboard, capped at 600 descriptors.
//	grid := artboard.ComputeGridLines(1024, 768, 10, 10, 1, artboard.RGB(0.8, 0.8, 0.8), 600)
//
// # Units
//
// One pixel is 1,000,000 micro-pixels. Stored geometry is integer
// micro-pixels; converting a user-facing unit into micro-pixels rounds
// exactly once ([MicroPxFromPixels]), and no later stage rounds again.
// Out-of-range values are clamped, never rejected, so the editor stays
// renderable even with legacy or corrupted stored data.
//
// # Purity
//
// Every function in this package and its subpackages is a pure function
// of its arguments: no I/O, no shared mutable state, no hidden
// dependence on call order. Callers may memoize or debounce freely.
package artboard

// Version is the current version of the library.
const Version = "0.1.0"
