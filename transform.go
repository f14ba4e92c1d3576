package artboard

import "math"

// Bounds resolves g's axis-aligned placement on an artboard of the
// given pixel size, before rotation is applied.
//
// Width and height are the clamped pixel magnitudes of the stored
// geometry. An unset X or Y (nil, as opposed to an explicit zero)
// resolves to the position that centers the image on that axis. The
// conversion to pixels here is display-only; nothing computed by
// Bounds flows back to persistence.
func (g Geometry) Bounds(artboardWidth, artboardHeight float64) (x, y, w, h float64) {
	w = g.Width.Clamp().Pixels()
	h = g.Height.Clamp().Pixels()
	if g.X != nil {
		x = g.X.Clamp().Pixels()
	} else {
		x = (artboardWidth - w) / 2
	}
	if g.Y != nil {
		y = g.Y.Clamp().Pixels()
	} else {
		y = (artboardHeight - h) / 2
	}
	return x, y, w, h
}

// Transform returns the affine transform that places g on an artboard
// of the given pixel size: image-local coordinates (0,0)..(w,h) map to
// artboard coordinates, rotated by RotationDeg about the image center.
func (g Geometry) Transform(artboardWidth, artboardHeight float64) Matrix {
	x, y, w, h := g.Bounds(artboardWidth, artboardHeight)
	cx := x + w/2
	cy := y + h/2
	return Translate(cx, cy).
		Multiply(Rotate(g.RotationDeg * math.Pi / 180)).
		Multiply(Translate(-w/2, -h/2))
}
