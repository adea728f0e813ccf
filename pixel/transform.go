package pixel

import "fmt"

// Map returns a new buffer of identical layout where fn has rewritten every
// pixel. fn receives the full source tuple, alpha included, and writes the
// result into dst. Pixels are independent: output pixel i depends only on
// input pixel i, so fn must not carry state between calls.
func (b *Buffer[T]) Map(fn func(dst, src []T)) *Buffer[T] {
	out := Empty[T](b.layout, b.width, b.height)
	n := b.layout.Channels
	for i := 0; i < len(b.pix); i += n {
		fn(out.pix[i:i+n:i+n], b.pix[i:i+n:i+n])
	}
	return out
}

// Apply rewrites every pixel in place. fn mutates the full tuple directly;
// writes land in the buffer's backing store.
func (b *Buffer[T]) Apply(fn func(pel []T)) {
	for pel := range b.IterWithAlphaMut() {
		fn(pel)
	}
}

// MapInto builds a buffer of a possibly different component type and layout
// from src, one pixel at a time. fn writes the destination tuple, layout
// channels wide, from the source tuple. Cross-color-space conversions are
// expressed through this. It is a free function because Go methods cannot
// introduce type parameters.
func MapInto[To, From Component](src *Buffer[From], layout Layout, fn func(dst []To, src []From)) *Buffer[To] {
	out := Empty[To](layout, src.width, src.height)
	sn, dn := src.layout.Channels, layout.Channels
	for i, j := 0, 0; i < len(src.pix); i, j = i+sn, j+dn {
		fn(out.pix[j:j+dn:j+dn], src.pix[i:i+sn:i+sn])
	}
	return out
}

// AsOther converts src channel by channel into a new buffer. Channels align
// by position, not meaning: surplus destination channels stay zero, surplus
// source channels are dropped, and every copied value goes through Cast with
// its fallback-to-zero policy. The caller is responsible for pairing
// compatible layouts.
func AsOther[To, From Component](src *Buffer[From], layout Layout) *Buffer[To] {
	n := min(src.layout.Channels, layout.Channels)
	return MapInto(src, layout, func(dst []To, s []From) {
		for c := 0; c < n; c++ {
			dst[c] = Cast[To](s[c])
		}
	})
}

// Plane extracts channel i into a new single-channel buffer of the same
// geometry.
func (b *Buffer[T]) Plane(i int) (*Buffer[T], error) {
	if i < 0 || i >= b.layout.Channels {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrPlaneIndexOutOfRange,
			i, b.layout.Channels)
	}
	out := Empty[T](PlaneLayout, b.width, b.height)
	n := b.layout.Channels
	for j, k := 0, 0; j < len(b.pix); j, k = j+n, k+1 {
		out.pix[k] = b.pix[j+i]
	}
	return out, nil
}

// Alpha extracts the alpha plane. The second return is false when the
// layout has no alpha channel.
func (b *Buffer[T]) Alpha() (*Buffer[T], bool) {
	idx, ok := b.layout.AlphaIndex()
	if !ok {
		return nil, false
	}
	plane, err := b.Plane(idx)
	if err != nil {
		return nil, false
	}
	return plane, true
}

// SetPlane writes plane back into channel i of every pixel in row-major
// lockstep. The plane must be single channel and share the receiver's
// geometry; a size disagreement is an error, never a silent truncation.
func (b *Buffer[T]) SetPlane(i int, plane *Buffer[T]) error {
	if i < 0 || i >= b.layout.Channels {
		return fmt.Errorf("%w: channel %d of %d", ErrPlaneIndexOutOfRange,
			i, b.layout.Channels)
	}
	if plane.layout.Channels != 1 {
		return fmt.Errorf("%w: plane has %d channels", ErrLayoutMismatch,
			plane.layout.Channels)
	}
	if plane.width != b.width || plane.height != b.height {
		return fmt.Errorf("%w: plane is %dx%d, buffer is %dx%d",
			ErrPlaneSizeMismatch, plane.width, plane.height, b.width, b.height)
	}
	n := b.layout.Channels
	for j, k := 0, 0; j < len(b.pix); j, k = j+n, k+1 {
		b.pix[j+i] = plane.pix[k]
	}
	return nil
}
