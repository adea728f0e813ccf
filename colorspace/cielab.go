package colorspace

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/jnickg/better-images/pixel"
)

// srgbToXYZ is the linear sRGB to XYZ matrix, rows X, Y, Z.
var srgbToXYZ = f32.Mat3{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// RGBToCIELab converts one RGB pixel tuple, conventionally holding values in
// the 8-bit range, into a CIELAB tuple.
//
// The pipeline divides each channel by 255, applies srgbToXYZ, compands each
// coordinate, and scales to L, a, b. It skips the gamma decoding and
// reference-white normalization of the full CIELAB pipeline, so the output
// only approximates colorimetric CIELAB. Downstream comparisons are pinned
// to the numbers this exact arithmetic produces; do not correct it.
//
// The final casts follow pixel.Cast, so an L, a, or b outside the
// destination type's range comes back as zero.
func RGBToCIELab[To, From pixel.Component](rgb []From) []To {
	v := f32.Vec3{
		pixel.Cast[float32](rgb[0]) / 255,
		pixel.Cast[float32](rgb[1]) / 255,
		pixel.Cast[float32](rgb[2]) / 255,
	}
	x := compand(srgbToXYZ[0]*v[0] + srgbToXYZ[1]*v[1] + srgbToXYZ[2]*v[2])
	y := compand(srgbToXYZ[3]*v[0] + srgbToXYZ[4]*v[1] + srgbToXYZ[5]*v[2])
	z := compand(srgbToXYZ[6]*v[0] + srgbToXYZ[7]*v[1] + srgbToXYZ[8]*v[2])
	return []To{
		pixel.Cast[To](116*y - 16),
		pixel.Cast[To](500 * (x - y)),
		pixel.Cast[To](200 * (y - z)),
	}
}

// compand applies the CIE nonlinearity: cube root above the threshold, the
// linear segment below it.
func compand(v float32) float32 {
	if v > 0.008856 {
		return float32(math.Cbrt(float64(v)))
	}
	return 7.787*v + 16.0/116.0
}

// MapCIELab converts an RGB-tagged image into a CIELab-tagged one by running
// RGBToCIELab over every pixel. The source tag must be RGB.
func MapCIELab[To, From pixel.Component](c ColorSpace[From]) (ColorSpace[To], error) {
	if c.space != RGB {
		return ColorSpace[To]{}, fmt.Errorf("%w: cannot convert %v to CIELab",
			ErrSpaceMismatch, c.space)
	}
	buf := pixel.MapInto(c.buf, CIELabLayout, func(dst []To, src []From) {
		copy(dst, RGBToCIELab[To](src))
	})
	return ColorSpace[To]{space: CIELab, buf: buf}, nil
}
