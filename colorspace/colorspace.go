// Package colorspace names the channel layouts a pixel buffer can carry and
// provides the RGB to CIELAB conversion.
package colorspace

import (
	"errors"
	"fmt"

	"github.com/jnickg/better-images/pixel"
)

// ErrSpaceMismatch reports a conversion applied to the wrong color space.
var ErrSpaceMismatch = errors.New("colorspace: wrong source color space")

// Space tags the channel interpretation of a buffer. The set is closed;
// every tag mandates one buffer layout.
type Space int

const (
	RGBA Space = iota
	RGB
	HSV
	CIELab
)

func (s Space) String() string {
	switch s {
	case RGBA:
		return "RGBA"
	case RGB:
		return "RGB"
	case HSV:
		return "HSV"
	case CIELab:
		return "CIELab"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Buffer layouts mandated by each tag. RGBA is the only one carrying alpha.
var (
	RGBALayout   = pixel.Layout{Channels: 4, HasAlpha: true}
	RGBLayout    = pixel.Layout{Channels: 3}
	HSVLayout    = pixel.Layout{Channels: 3}
	CIELabLayout = pixel.Layout{Channels: 3}
)

// Layout returns the buffer layout the tag mandates.
func (s Space) Layout() pixel.Layout {
	if s == RGBA {
		return RGBALayout
	}
	return RGBLayout
}

// ColorSpace pairs a tag with a pixel buffer whose layout matches it. The
// pairing is validated once at construction; the zero value is not
// meaningful.
type ColorSpace[T pixel.Component] struct {
	space Space
	buf   *pixel.Buffer[T]
}

// New wraps buf under the given tag. It fails with pixel.ErrLayoutMismatch
// when the buffer's layout is not the one the tag mandates.
func New[T pixel.Component](space Space, buf *pixel.Buffer[T]) (ColorSpace[T], error) {
	want := space.Layout()
	if buf.Layout() != want {
		return ColorSpace[T]{}, fmt.Errorf(
			"%w: %v wants %d channels (alpha %t), buffer has %d (alpha %t)",
			pixel.ErrLayoutMismatch, space, want.Channels, want.HasAlpha,
			buf.Channels(), buf.HasAlpha())
	}
	return ColorSpace[T]{space: space, buf: buf}, nil
}

func NewRGBA[T pixel.Component](buf *pixel.Buffer[T]) (ColorSpace[T], error) {
	return New(RGBA, buf)
}

func NewRGB[T pixel.Component](buf *pixel.Buffer[T]) (ColorSpace[T], error) {
	return New(RGB, buf)
}

func NewHSV[T pixel.Component](buf *pixel.Buffer[T]) (ColorSpace[T], error) {
	return New(HSV, buf)
}

func NewCIELab[T pixel.Component](buf *pixel.Buffer[T]) (ColorSpace[T], error) {
	return New(CIELab, buf)
}

// Space returns the tag.
func (c ColorSpace[T]) Space() Space { return c.space }

// Buffer returns the wrapped pixel buffer.
func (c ColorSpace[T]) Buffer() *pixel.Buffer[T] { return c.buf }

func (c ColorSpace[T]) Width() int  { return c.buf.Width() }
func (c ColorSpace[T]) Height() int { return c.buf.Height() }
