package artboard

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// MicroPerPixel is the fixed-point scale factor: one pixel is
// 1,000,000 micro-pixels. All persisted geometry is integer
// micro-pixels so that repeated load/edit/save cycles never accumulate
// floating-point drift.
const MicroPerPixel = 1_000_000

// maxExtentU bounds representable geometry at ±100,000,000 pixels,
// expressed in micro-pixels.
const maxExtentU = 100_000_000 * MicroPerPixel

// MinPxU and MaxPxU are the process-wide extent bounds. Every MicroPx
// that reaches the wire lies in the closed range [MinPxU, MaxPxU];
// values outside are clamped, never rejected.
var (
	MinPxU = MicroPxFromInt64(-maxExtentU)
	MaxPxU = MicroPxFromInt64(maxExtentU)
)

// ErrMalformedMicroPx reports an integer string that could not be
// parsed as a micro-pixel quantity. Detectable with errors.Is.
var ErrMalformedMicroPx = errors.New("artboard: malformed micro-pixel integer")

// MicroPx is a fixed-point pixel quantity in micro-pixels, backed by
// an arbitrary-precision integer. The zero value is 0 micro-pixels and
// ready to use.
//
// MicroPx values are immutable: every method returns a new value and
// never mutates its receiver, so values can be shared freely.
type MicroPx struct {
	v big.Int
}

// MicroPxFromInt64 returns the MicroPx for v micro-pixels.
func MicroPxFromInt64(v int64) MicroPx {
	var m MicroPx
	m.v.SetInt64(v)
	return m
}

// MicroPxFromBig returns the MicroPx for v micro-pixels. The value is
// copied; the caller keeps ownership of v. A nil v yields zero.
func MicroPxFromBig(v *big.Int) MicroPx {
	var m MicroPx
	if v != nil {
		m.v.Set(v)
	}
	return m
}

// MicroPxFromPixels converts a pixel magnitude into micro-pixels.
//
// This is the bake-in point: the single place in the pipeline where
// rounding is permitted (half away from zero). Everything downstream —
// serialization included — only clamps, never rounds, so geometry that
// has been baked once is never silently re-rounded on save.
//
// NaN converts to zero; infinities and values beyond the representable
// extent clamp to MinPxU/MaxPxU.
func MicroPxFromPixels(px float64) MicroPx {
	if math.IsNaN(px) {
		return MicroPx{}
	}
	if math.IsInf(px, 1) {
		return MaxPxU
	}
	if math.IsInf(px, -1) {
		return MinPxU
	}
	u := math.Round(px * MicroPerPixel)
	if u > maxExtentU {
		return MaxPxU
	}
	if u < -maxExtentU {
		return MinPxU
	}
	return MicroPxFromInt64(int64(u))
}

// ParseMicroPx parses a base-10 integer string (optional leading sign,
// no fractional part, no whitespace) into a MicroPx.
//
// Malformed input fails with an error wrapping ErrMalformedMicroPx; it
// is never silently turned into zero, so corrupted stored data stays
// visible. ParseMicroPx does not clamp — callers that need range
// safety compose with Clamp.
func ParseMicroPx(s string) (MicroPx, error) {
	if !isIntegerString(s) {
		return MicroPx{}, fmt.Errorf("%w: %q", ErrMalformedMicroPx, s)
	}
	var m MicroPx
	if _, ok := m.v.SetString(s, 10); !ok {
		return MicroPx{}, fmt.Errorf("%w: %q", ErrMalformedMicroPx, s)
	}
	return m, nil
}

// isIntegerString reports whether s is an optionally signed run of
// ASCII digits with at least one digit.
func isIntegerString(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Clamp returns m limited to [MinPxU, MaxPxU]. It is total and
// idempotent: in-range values pass through unchanged.
func (m MicroPx) Clamp() MicroPx {
	if m.Cmp(MinPxU) < 0 {
		return MinPxU
	}
	if m.Cmp(MaxPxU) > 0 {
		return MaxPxU
	}
	return m
}

// Clamp returns m limited to the representable extent [MinPxU, MaxPxU].
func Clamp(m MicroPx) MicroPx { return m.Clamp() }

// Cmp compares m and o, returning -1, 0, or +1.
func (m MicroPx) Cmp(o MicroPx) int { return m.v.Cmp(&o.v) }

// Equal reports whether m and o are the same quantity.
func (m MicroPx) Equal(o MicroPx) bool { return m.Cmp(o) == 0 }

// Sign returns -1, 0, or +1 depending on the sign of m.
func (m MicroPx) Sign() int { return m.v.Sign() }

// Add returns m + o.
func (m MicroPx) Add(o MicroPx) MicroPx {
	var r MicroPx
	r.v.Add(&m.v, &o.v)
	return r
}

// Sub returns m - o.
func (m MicroPx) Sub(o MicroPx) MicroPx {
	var r MicroPx
	r.v.Sub(&m.v, &o.v)
	return r
}

// Neg returns -m.
func (m MicroPx) Neg() MicroPx {
	var r MicroPx
	r.v.Neg(&m.v)
	return r
}

// String returns the canonical base-10 representation. It round-trips
// exactly through ParseMicroPx; this is the form used on the wire.
func (m MicroPx) String() string { return m.v.String() }

// Big returns a copy of the underlying integer.
func (m MicroPx) Big() *big.Int { return new(big.Int).Set(&m.v) }

// Int64 returns the value as an int64 and whether it fit. Clamped
// values always fit: the extent bounds are well inside int64 range.
func (m MicroPx) Int64() (int64, bool) {
	if !m.v.IsInt64() {
		return 0, false
	}
	return m.v.Int64(), true
}

// Pixels converts m to a floating pixel magnitude for display. The
// result is for rendering only and must never be persisted back —
// round-tripping through float64 would reintroduce the drift the
// fixed-point representation exists to prevent.
func (m MicroPx) Pixels() float64 {
	f, _ := new(big.Float).SetInt(&m.v).Float64()
	return f / MicroPerPixel
}
