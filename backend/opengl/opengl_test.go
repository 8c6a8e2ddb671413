package opengl

import (
	"strings"
	"testing"
)

// GL calls need a live context, so tests here cover the GPU-independent
// pieces: geometry data, config validation and name handling.

func TestQuadData(t *testing.T) {
	if len(quadVertices) != 8 {
		t.Fatalf("expected 4 vertices of 2 floats, got %d values", len(quadVertices))
	}
	if len(quadIndices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quadIndices))
	}

	// Two triangles covering the full NDC square.
	wantIndices := []uint32{0, 1, 2, 2, 1, 3}
	for i, idx := range quadIndices {
		if idx != wantIndices[i] {
			t.Errorf("index %d: expected %d, got %d", i, wantIndices[i], idx)
		}
	}

	for i := 0; i < len(quadVertices); i += 2 {
		x, y := quadVertices[i], quadVertices[i+1]
		if x != -1 && x != 1 {
			t.Errorf("vertex %d: x=%v not on NDC edge", i/2, x)
		}
		if y != -1 && y != 1 {
			t.Errorf("vertex %d: y=%v not on NDC edge", i/2, y)
		}
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []Config{
		{Width: 0, Height: 10},
		{Width: 10, Height: 0},
		{Width: -1, Height: -1},
	}
	for _, cfg := range tests {
		if _, err := New(cfg); err == nil {
			t.Errorf("%dx%d: expected error", cfg.Width, cfg.Height)
		}
	}
}

func TestUniformNameFallbackOrder(t *testing.T) {
	// Primary spec names come first; shadertoy aliases are fallbacks only.
	if timeUniformNames[0] != "time" || timeUniformNames[1] != "iTime" {
		t.Errorf("unexpected time uniform names: %v", timeUniformNames)
	}
	if resolutionUniformNames[0] != "resolution" || resolutionUniformNames[1] != "iResolution" {
		t.Errorf("unexpected resolution uniform names: %v", resolutionUniformNames)
	}
}

func TestTerminate(t *testing.T) {
	if got := terminate("time"); !strings.HasSuffix(got, "\x00") {
		t.Errorf("not null-terminated: %q", got)
	}
	if got := terminate("time\x00"); strings.Count(got, "\x00") != 1 {
		t.Errorf("double terminator: %q", got)
	}
}
