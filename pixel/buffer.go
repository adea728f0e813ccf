// Package pixel provides a flat, typed, in-memory raster container that is
// generic over the numeric type stored per channel. The channel count and
// the presence of an alpha channel are fixed per buffer at construction and
// never change afterwards.
package pixel

import "fmt"

// Layout describes a buffer's per-pixel channel geometry. When HasAlpha is
// set, the alpha channel is always the last one.
type Layout struct {
	Channels int
	HasAlpha bool
}

// PlaneLayout is the layout of a single extracted channel.
var PlaneLayout = Layout{Channels: 1}

// AlphaIndex returns the index of the alpha channel, if the layout has one.
func (l Layout) AlphaIndex() (int, bool) {
	if !l.HasAlpha {
		return 0, false
	}
	return l.Channels - 1, true
}

// ColorChannels returns the number of non-alpha channels.
func (l Layout) ColorChannels() int {
	if l.HasAlpha {
		return l.Channels - 1
	}
	return l.Channels
}

func (l Layout) valid() bool {
	return l.Channels >= 1
}

// Buffer is a flat row-major raster of component values. The pixel at
// (x, y) is the run of Channels components starting at
// (y*width+x)*Channels. Every construction path guarantees
// len(pix) == width*height*Channels, and the layout cannot be changed after
// construction.
type Buffer[T Component] struct {
	pix    []T
	width  int
	height int
	layout Layout
}

// WithData adopts pix as the buffer's backing storage without copying. It
// fails with ErrLayoutMismatch when len(pix) disagrees with the requested
// geometry, or when the geometry itself is malformed.
func WithData[T Component](layout Layout, pix []T, width, height int) (*Buffer[T], error) {
	if !layout.valid() || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d channels, %dx%d", ErrLayoutMismatch,
			layout.Channels, width, height)
	}
	if want := width * height * layout.Channels; len(pix) != want {
		return nil, fmt.Errorf("%w: have %d components, want %d (%dx%d, %d channels)",
			ErrLayoutMismatch, len(pix), want, width, height, layout.Channels)
	}
	return &Buffer[T]{pix: pix, width: width, height: height, layout: layout}, nil
}

// Empty allocates a zero-filled buffer. Zero width or height yields an
// empty buffer, not an error.
func Empty[T Component](layout Layout, width, height int) *Buffer[T] {
	checkGeometry(layout, width, height)
	return &Buffer[T]{
		pix:    make([]T, width*height*layout.Channels),
		width:  width,
		height: height,
		layout: layout,
	}
}

// WithVal allocates a buffer with every pixel, alpha included, set to pel.
// pel must have exactly layout.Channels entries.
func WithVal[T Component](layout Layout, pel []T, width, height int) *Buffer[T] {
	if len(pel) != layout.Channels {
		panic("pixel: pixel value length does not match layout")
	}
	b := Empty[T](layout, width, height)
	for p := range b.IterWithAlphaMut() {
		copy(p, pel)
	}
	return b
}

func checkGeometry(layout Layout, width, height int) {
	if !layout.valid() {
		panic("pixel: layout needs at least one channel")
	}
	if width < 0 || height < 0 {
		panic("pixel: negative buffer dimensions")
	}
}

// Pix returns the mutable backing storage in row-major channel order.
func (b *Buffer[T]) Pix() []T { return b.pix }

func (b *Buffer[T]) Width() int  { return b.width }
func (b *Buffer[T]) Height() int { return b.height }

// Layout returns the channel geometry fixed at construction.
func (b *Buffer[T]) Layout() Layout { return b.layout }

func (b *Buffer[T]) Channels() int  { return b.layout.Channels }
func (b *Buffer[T]) HasAlpha() bool { return b.layout.HasAlpha }

func (b *Buffer[T]) AlphaIndex() (int, bool) { return b.layout.AlphaIndex() }
func (b *Buffer[T]) ColorChannels() int      { return b.layout.ColorChannels() }

// Pixel returns the component run of the pixel at (x, y), alpha included.
// The slice aliases the backing store.
func (b *Buffer[T]) Pixel(x, y int) []T {
	i := (y*b.width + x) * b.layout.Channels
	return b.pix[i : i+b.layout.Channels : i+b.layout.Channels]
}

// Clone returns a deep copy sharing no storage with the receiver.
func (b *Buffer[T]) Clone() *Buffer[T] {
	pix := make([]T, len(b.pix))
	copy(pix, b.pix)
	return &Buffer[T]{pix: pix, width: b.width, height: b.height, layout: b.layout}
}
