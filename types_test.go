package shade

import (
	"math"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(7, 5)
	if f.Width != 7 || f.Height != 5 {
		t.Errorf("expected 7x5, got %dx%d", f.Width, f.Height)
	}
	if len(f.Pix) != 7*5*4 {
		t.Errorf("expected %d channel values, got %d", 7*5*4, len(f.Pix))
	}
	for i, v := range f.Pix {
		if v != 0 {
			t.Fatalf("new frame not zeroed at %d: %v", i, v)
		}
	}
}

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(2, 1, 0.1, 0.2, 0.3, 0.4)

	r, g, b, a := f.At(2, 1)
	if r != 0.1 || g != 0.2 || b != 0.3 || a != 0.4 {
		t.Errorf("expected 0.1,0.2,0.3,0.4, got %v,%v,%v,%v", r, g, b, a)
	}

	// Neighboring pixel untouched.
	if r, _, _, _ := f.At(1, 1); r != 0 {
		t.Errorf("neighbor modified: %v", r)
	}
}

func TestFrameFinite(t *testing.T) {
	f := NewFrame(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f.Set(x, y, float32(x)/3, float32(y)/3, 0.5, 1)
		}
	}
	for i, v := range f.Pix {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("non-finite value at %d: %v", i, v)
		}
	}
}
