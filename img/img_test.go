package img_test

import (
	"errors"
	"testing"

	"github.com/jnickg/better-images/colorspace"
	"github.com/jnickg/better-images/img"
	"github.com/jnickg/better-images/pixel"
)

func rgbaOf[T pixel.Component](t *testing.T, w, h int) colorspace.ColorSpace[T] {
	t.Helper()
	cs, err := colorspace.NewRGBA(pixel.Empty[T](colorspace.RGBALayout, w, h))
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	return cs
}

func TestNewDispatchesByComponent(t *testing.T) {
	tests := []struct {
		name string
		make func() (img.Image, error)
		kind img.Kind
	}{
		{"uint8", func() (img.Image, error) { return img.New(rgbaOf[uint8](t, 4, 4)) }, img.Uint8},
		{"uint16", func() (img.Image, error) { return img.New(rgbaOf[uint16](t, 4, 4)) }, img.Uint16},
		{"uint32", func() (img.Image, error) { return img.New(rgbaOf[uint32](t, 4, 4)) }, img.Uint32},
		{"float32", func() (img.Image, error) { return img.New(rgbaOf[float32](t, 4, 4)) }, img.Float32},
		{"float64", func() (img.Image, error) { return img.New(rgbaOf[float64](t, 4, 4)) }, img.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.make()
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if m.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", m.Kind(), tt.kind)
			}
			if m.Width() != 4 || m.Height() != 4 {
				t.Errorf("geometry = %dx%d, want 4x4", m.Width(), m.Height())
			}
			if m.Space() != colorspace.RGBA {
				t.Errorf("Space() = %v, want RGBA", m.Space())
			}
		})
	}
}

func TestNewRejectsUint64(t *testing.T) {
	cs, err := colorspace.NewRGBA(pixel.Empty[uint64](colorspace.RGBALayout, 2, 2))
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	if _, err := img.New(cs); !errors.Is(err, img.ErrUnsupportedComponent) {
		t.Errorf("New over uint64: err = %v, want ErrUnsupportedComponent", err)
	}
}

func TestVariantAccessors(t *testing.T) {
	m := img.NewUint8(rgbaOf[uint8](t, 5, 7))

	cs, ok := m.Uint8()
	if !ok {
		t.Fatal("Uint8() reported the wrong variant")
	}
	if cs.Width() != 5 || cs.Height() != 7 {
		t.Errorf("unwrapped geometry = %dx%d, want 5x7", cs.Width(), cs.Height())
	}
	if _, ok := m.Float64(); ok {
		t.Error("Float64() matched a uint8 image")
	}
}

func TestMutateBeforeErasure(t *testing.T) {
	buf := pixel.WithVal(colorspace.RGBALayout, []uint16{1, 2, 3, 9}, 2, 2)
	buf.Apply(func(pel []uint16) {
		pel[0] *= 10
	})
	cs, err := colorspace.NewRGBA(buf)
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	m, err := img.New(cs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, ok := m.Uint16()
	if !ok {
		t.Fatal("Uint16() reported the wrong variant")
	}
	if got.Buffer().Pixel(0, 0)[0] != 10 {
		t.Errorf("erased buffer lost the pre-erasure mutation")
	}
}
