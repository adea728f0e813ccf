// Package img erases the component type of a color-space buffer so that
// images of different sample depths can travel through one concrete value.
package img

import (
	"errors"
	"fmt"

	"github.com/jnickg/better-images/colorspace"
	"github.com/jnickg/better-images/pixel"
)

// ErrUnsupportedComponent reports a component type with no erased variant.
var ErrUnsupportedComponent = errors.New("img: unsupported component type")

// Kind identifies which component type an Image holds.
type Kind int

const (
	Uint8 Kind = iota
	Uint16
	Uint32
	Float32
	Float64
)

func (k Kind) String() string {
	switch k {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Image holds a color-space buffer of one of five component types behind a
// single concrete value. The component set is closed, so this is a tagged
// variant dispatched by switch rather than an open interface. Only the
// field selected by kind is meaningful.
type Image struct {
	kind Kind
	u8   colorspace.ColorSpace[uint8]
	u16  colorspace.ColorSpace[uint16]
	u32  colorspace.ColorSpace[uint32]
	f32  colorspace.ColorSpace[float32]
	f64  colorspace.ColorSpace[float64]
}

func NewUint8(c colorspace.ColorSpace[uint8]) Image   { return Image{kind: Uint8, u8: c} }
func NewUint16(c colorspace.ColorSpace[uint16]) Image { return Image{kind: Uint16, u16: c} }
func NewUint32(c colorspace.ColorSpace[uint32]) Image { return Image{kind: Uint32, u32: c} }
func NewFloat32(c colorspace.ColorSpace[float32]) Image {
	return Image{kind: Float32, f32: c}
}
func NewFloat64(c colorspace.ColorSpace[float64]) Image {
	return Image{kind: Float64, f64: c}
}

// New erases the component type of c, selecting the matching variant.
// uint64 has no erased variant and is rejected at run time.
func New[T pixel.Component](c colorspace.ColorSpace[T]) (Image, error) {
	switch c := any(c).(type) {
	case colorspace.ColorSpace[uint8]:
		return NewUint8(c), nil
	case colorspace.ColorSpace[uint16]:
		return NewUint16(c), nil
	case colorspace.ColorSpace[uint32]:
		return NewUint32(c), nil
	case colorspace.ColorSpace[float32]:
		return NewFloat32(c), nil
	case colorspace.ColorSpace[float64]:
		return NewFloat64(c), nil
	}
	var zero T
	return Image{}, fmt.Errorf("%w: %T", ErrUnsupportedComponent, zero)
}

// Kind returns the component type tag.
func (m Image) Kind() Kind { return m.kind }

// Width dispatches across the five variants.
func (m Image) Width() int {
	switch m.kind {
	case Uint8:
		return m.u8.Width()
	case Uint16:
		return m.u16.Width()
	case Uint32:
		return m.u32.Width()
	case Float32:
		return m.f32.Width()
	default:
		return m.f64.Width()
	}
}

// Height dispatches across the five variants.
func (m Image) Height() int {
	switch m.kind {
	case Uint8:
		return m.u8.Height()
	case Uint16:
		return m.u16.Height()
	case Uint32:
		return m.u32.Height()
	case Float32:
		return m.f32.Height()
	default:
		return m.f64.Height()
	}
}

// Space dispatches the color-space tag across the five variants.
func (m Image) Space() colorspace.Space {
	switch m.kind {
	case Uint8:
		return m.u8.Space()
	case Uint16:
		return m.u16.Space()
	case Uint32:
		return m.u32.Space()
	case Float32:
		return m.f32.Space()
	default:
		return m.f64.Space()
	}
}

// Uint8 returns the wrapped value when the image holds uint8 components.
func (m Image) Uint8() (colorspace.ColorSpace[uint8], bool) {
	return m.u8, m.kind == Uint8
}

// Uint16 returns the wrapped value when the image holds uint16 components.
func (m Image) Uint16() (colorspace.ColorSpace[uint16], bool) {
	return m.u16, m.kind == Uint16
}

// Uint32 returns the wrapped value when the image holds uint32 components.
func (m Image) Uint32() (colorspace.ColorSpace[uint32], bool) {
	return m.u32, m.kind == Uint32
}

// Float32 returns the wrapped value when the image holds float32 components.
func (m Image) Float32() (colorspace.ColorSpace[float32], bool) {
	return m.f32, m.kind == Float32
}

// Float64 returns the wrapped value when the image holds float64 components.
func (m Image) Float64() (colorspace.ColorSpace[float64], bool) {
	return m.f64, m.kind == Float64
}
