package soft

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/uiquad"
)

func TestNewTexture_InvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}} {
		if _, err := NewTexture(dims[0], dims[1]); err == nil {
			t.Errorf("NewTexture(%d, %d) succeeded, want error", dims[0], dims[1])
		}
	}
}

func TestNewTextureFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 128})

	tex, err := NewTextureFromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("texture size = %dx%d, want 2x2", tex.Width(), tex.Height())
	}

	if got := tex.fetch(0, 0); got != (uiquad.RGBA{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("texel (0,0) = %v, want red", got)
	}
	got := tex.fetch(1, 1)
	if got.G != 1 {
		t.Errorf("texel (1,1) green = %v, want 1", got.G)
	}
	const eps = 0.01
	if d := got.A - 128.0/255; d > eps || d < -eps {
		t.Errorf("texel (1,1) alpha = %v, want ~0.5 (unpremultiplied)", got.A)
	}
}

func TestNewTextureFromImage_OffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 5))
	src.SetNRGBA(3, 3, color.NRGBA{B: 255, A: 255})

	tex, err := NewTextureFromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.fetch(0, 0); got != (uiquad.RGBA{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("texel (0,0) = %v, want blue from source min corner", got)
	}
}

func TestTexture_Fill(t *testing.T) {
	tex, err := NewTexture(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	tex.Fill(uiquad.RGBA{R: 0.5, G: 0.2, B: 0.8, A: 1})

	got := tex.fetch(2, 2)
	const eps = float32(1.0 / 255)
	for i, pair := range [][2]float32{{got.R, 0.5}, {got.G, 0.2}, {got.B, 0.8}, {got.A, 1}} {
		if d := pair[0] - pair[1]; d > eps || d < -eps {
			t.Errorf("channel %d = %v, want %v", i, pair[0], pair[1])
		}
	}
}

func TestTexture_SetRGBAOutOfBounds(t *testing.T) {
	tex, err := NewTexture(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	tex.SetRGBA(-1, 0, uiquad.White) // must not panic
	tex.SetRGBA(2, 2, uiquad.White)
}
