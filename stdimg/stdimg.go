// Package stdimg converts between pixel buffers and the standard library's
// in-memory image types. It handles representation only; decoding and
// encoding file formats stays with the callers that own the bytes.
package stdimg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jnickg/better-images/colorspace"
	"github.com/jnickg/better-images/pixel"
)

// FromImage flattens m into an 8-bit RGBA-layout buffer. *image.NRGBA rows
// are copied directly; anything else goes through the color model and loses
// premultiplication the way image/color does.
func FromImage(m image.Image) *pixel.Buffer[uint8] {
	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := pixel.Empty[uint8](colorspace.RGBALayout, w, h)
	pix := out.Pix()

	if src, ok := m.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(pix[y*w*4:(y+1)*w*4], row[:w*4])
		}
		return out
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return out
}

// FromGray extracts m's single channel into a plane buffer.
func FromGray(m *image.Gray) *pixel.Buffer[uint8] {
	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := pixel.Empty[uint8](pixel.PlaneLayout, w, h)
	pix := out.Pix()
	for y := 0; y < h; y++ {
		row := m.Pix[m.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		copy(pix[y*w:(y+1)*w], row[:w])
	}
	return out
}

// ToNRGBA copies b into a stdlib NRGBA image. The buffer must use the RGBA
// layout.
func ToNRGBA(b *pixel.Buffer[uint8]) (*image.NRGBA, error) {
	if b.Layout() != colorspace.RGBALayout {
		return nil, fmt.Errorf("%w: need %d channels with alpha, have %d (alpha %t)",
			pixel.ErrLayoutMismatch, colorspace.RGBALayout.Channels,
			b.Channels(), b.HasAlpha())
	}
	m := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	copy(m.Pix, b.Pix())
	return m, nil
}

// ToGray copies a plane buffer into a stdlib Gray image.
func ToGray(b *pixel.Buffer[uint8]) (*image.Gray, error) {
	if b.Layout() != pixel.PlaneLayout {
		return nil, fmt.Errorf("%w: need a single-channel plane, have %d channels",
			pixel.ErrLayoutMismatch, b.Channels())
	}
	m := image.NewGray(image.Rect(0, 0, b.Width(), b.Height()))
	copy(m.Pix, b.Pix())
	return m, nil
}
