package colorspace_test

import (
	"errors"
	"testing"

	"github.com/jnickg/better-images/colorspace"
	"github.com/jnickg/better-images/pixel"
)

func TestConstructorsAcceptMatchingLayouts(t *testing.T) {
	rgba, err := colorspace.NewRGBA(pixel.Empty[uint8](colorspace.RGBALayout, 4, 4))
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	if rgba.Space() != colorspace.RGBA {
		t.Errorf("Space() = %v, want RGBA", rgba.Space())
	}
	if rgba.Width() != 4 || rgba.Height() != 4 {
		t.Errorf("geometry = %dx%d, want 4x4", rgba.Width(), rgba.Height())
	}

	for _, tt := range []struct {
		space colorspace.Space
		ctor  func(*pixel.Buffer[float32]) (colorspace.ColorSpace[float32], error)
	}{
		{colorspace.RGB, colorspace.NewRGB[float32]},
		{colorspace.HSV, colorspace.NewHSV[float32]},
		{colorspace.CIELab, colorspace.NewCIELab[float32]},
	} {
		cs, err := tt.ctor(pixel.Empty[float32](colorspace.RGBLayout, 2, 3))
		if err != nil {
			t.Fatalf("constructor for %v: %v", tt.space, err)
		}
		if cs.Space() != tt.space {
			t.Errorf("Space() = %v, want %v", cs.Space(), tt.space)
		}
	}
}

func TestConstructorsRejectWrongLayouts(t *testing.T) {
	three := pixel.Empty[uint8](colorspace.RGBLayout, 4, 4)
	if _, err := colorspace.NewRGBA(three); !errors.Is(err, pixel.ErrLayoutMismatch) {
		t.Errorf("NewRGBA over 3-channel buffer: err = %v, want ErrLayoutMismatch", err)
	}

	four := pixel.Empty[uint8](colorspace.RGBALayout, 4, 4)
	if _, err := colorspace.NewRGB(four); !errors.Is(err, pixel.ErrLayoutMismatch) {
		t.Errorf("NewRGB over RGBA buffer: err = %v, want ErrLayoutMismatch", err)
	}
}

func TestSpaceLayouts(t *testing.T) {
	if l := colorspace.RGBA.Layout(); l.Channels != 4 || !l.HasAlpha {
		t.Errorf("RGBA layout = %+v, want 4 channels with alpha", l)
	}
	for _, s := range []colorspace.Space{colorspace.RGB, colorspace.HSV, colorspace.CIELab} {
		if l := s.Layout(); l.Channels != 3 || l.HasAlpha {
			t.Errorf("%v layout = %+v, want 3 channels without alpha", s, l)
		}
	}
}
