package artboard

import "fmt"

// RoleMaster identifies the master image's geometry on the wire. It is
// the only role the editor currently persists.
const RoleMaster = "master"

// Geometry is the in-memory placement of an image on the artboard.
//
// X and Y are optional: nil means "unset, center on the artboard",
// which is distinct from an explicit position of zero. Width and
// Height are mandatory and are clamped before they ever reach the
// wire. RotationDeg is a plain floating degree value; this package
// does not normalize it to any range — that is the caller's concern.
type Geometry struct {
	X, Y          *MicroPx
	Width, Height MicroPx
	RotationDeg   float64
}

// WireGeometry is the persistence form of a Geometry. Micro-pixel
// fields travel as base-10 integer strings so that no numeric
// precision is lost between the editor and the storage layer.
type WireGeometry struct {
	Role        string  `json:"role"`
	XPxU        *string `json:"x_px_u,omitempty"`
	YPxU        *string `json:"y_px_u,omitempty"`
	WidthPxU    string  `json:"width_px_u"`
	HeightPxU   string  `json:"height_px_u"`
	RotationDeg float64 `json:"rotation_deg"`
}

// ToWire maps g to its wire form.
//
// Width and height are always clamped; x and y are clamped only when
// present, and absence is preserved (an unset position never becomes
// "0"). ToWire performs no rounding: the values it receives were baked
// into micro-pixels exactly once upstream, and re-rounding at save
// time would drift geometry on every save. Pure and total.
func (g Geometry) ToWire() WireGeometry {
	w := WireGeometry{
		Role:        RoleMaster,
		WidthPxU:    g.Width.Clamp().String(),
		HeightPxU:   g.Height.Clamp().String(),
		RotationDeg: g.RotationDeg,
	}
	if g.X != nil {
		s := g.X.Clamp().String()
		w.XPxU = &s
	}
	if g.Y != nil {
		s := g.Y.Clamp().String()
		w.YPxU = &s
	}
	return w
}

// FromWire maps a wire record back to an in-memory Geometry.
//
// Numeric values are reproduced exactly as stored — no clamping, no
// rounding — so ToWire/FromWire round-trips are lossless. Absent x/y
// stay absent. A malformed micro-pixel string fails with an error
// wrapping ErrMalformedMicroPx naming the offending field; it is never
// defaulted to zero. The role is carried as-is and not validated, so
// readers stay compatible with roles introduced later.
func FromWire(w WireGeometry) (Geometry, error) {
	var g Geometry
	var err error
	if g.Width, err = ParseMicroPx(w.WidthPxU); err != nil {
		return Geometry{}, fmt.Errorf("width_px_u: %w", err)
	}
	if g.Height, err = ParseMicroPx(w.HeightPxU); err != nil {
		return Geometry{}, fmt.Errorf("height_px_u: %w", err)
	}
	if w.XPxU != nil {
		x, err := ParseMicroPx(*w.XPxU)
		if err != nil {
			return Geometry{}, fmt.Errorf("x_px_u: %w", err)
		}
		g.X = &x
	}
	if w.YPxU != nil {
		y, err := ParseMicroPx(*w.YPxU)
		if err != nil {
			return Geometry{}, fmt.Errorf("y_px_u: %w", err)
		}
		g.Y = &y
	}
	g.RotationDeg = w.RotationDeg
	return g, nil
}
