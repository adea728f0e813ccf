package pixel

import "math"

// Component is the closed set of numeric types a buffer can store per
// channel. The list is exact rather than underlying-type based so that
// casting and type-erased dispatch can enumerate every member.
type Component interface {
	uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Cast converts v to the destination component type. Values the destination
// cannot represent resolve to the destination's zero value rather than
// saturating: out-of-range values, NaN into an integer, and negatives into
// an unsigned type all come back as zero. In-range floats truncate toward
// zero when the destination is an integer, and NaN survives between float
// widths.
func Cast[To, From Component](v From) To {
	switch s := any(v).(type) {
	case float32:
		return castFloat[To](float64(s))
	case float64:
		return castFloat[To](s)
	default:
		// Unsigned sources stay on the integer path so uint64 values above
		// 2^53 survive intact.
		return castUint[To](uint64(v))
	}
}

func castUint[To Component](u uint64) To {
	var zero To
	switch any(zero).(type) {
	case uint8:
		if u > math.MaxUint8 {
			return zero
		}
	case uint16:
		if u > math.MaxUint16 {
			return zero
		}
	case uint32:
		if u > math.MaxUint32 {
			return zero
		}
	}
	// uint64 holds any unsigned source; the float widths round above their
	// integer precision but never overflow.
	return To(u)
}

func castFloat[To Component](f float64) To {
	var zero To
	switch any(zero).(type) {
	case float32:
		if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return zero
		}
	case float64:
		// Every float64 represents itself.
	case uint8:
		if !fitsUint(f, math.MaxUint8) {
			return zero
		}
	case uint16:
		if !fitsUint(f, math.MaxUint16) {
			return zero
		}
	case uint32:
		if !fitsUint(f, math.MaxUint32) {
			return zero
		}
	case uint64:
		if math.IsNaN(f) || f < 0 || f >= 1<<64 {
			return zero
		}
	}
	return To(f)
}

func fitsUint(f, max float64) bool {
	return !math.IsNaN(f) && f >= 0 && math.Trunc(f) <= max
}
