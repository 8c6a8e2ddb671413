package shade

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockRenderer is a test renderer that produces synthetic frames without a
// GPU.
type mockRenderer struct {
	width, height int
	calls         int
	times         []float64
	err           error // returned on every call when set
	failEvery     int   // every nth call fails with a transient error
	released      int
}

func (m *mockRenderer) RenderFrame(elapsed float64) (*Frame, error) {
	m.calls++
	m.times = append(m.times, elapsed)
	if m.err != nil {
		return nil, m.err
	}
	if m.failEvery > 0 && m.calls%m.failEvery == 0 {
		return nil, errors.New("transient GPU hiccup")
	}

	f := NewFrame(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			f.Set(x, y, float32(elapsed), 0, 0, 1)
		}
	}
	return f, nil
}

func (m *mockRenderer) Release() { m.released++ }

func TestPlayerRenderOnce(t *testing.T) {
	m := &mockRenderer{width: 4, height: 2}
	p := NewPlayer(m)

	tf, err := p.RenderOnce(0.5)
	if err != nil {
		t.Fatalf("RenderOnce: %v", err)
	}
	if m.calls != 1 {
		t.Errorf("expected 1 render call, got %d", m.calls)
	}
	if m.times[0] != 0.5 {
		t.Errorf("expected elapsed 0.5, got %v", m.times[0])
	}
	if n := strings.Count(string(tf), "▄"); n != 4 {
		t.Errorf("expected 4 glyphs, got %d", n)
	}
}

func TestPlayerRunDeliversFrames(t *testing.T) {
	m := &mockRenderer{width: 2, height: 2}
	var delivered int
	var out strings.Builder

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPlayer(m,
		WithFPS(200),
		WithOutput(&out),
		WithSink(func(TextFrame) {
			delivered++
			if delivered >= 3 {
				cancel()
			}
		}),
	)

	err := p.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if delivered < 3 {
		t.Errorf("expected at least 3 frames, got %d", delivered)
	}
	if out.Len() == 0 {
		t.Error("output writer received nothing")
	}
}

func TestPlayerElapsedMonotonic(t *testing.T) {
	m := &mockRenderer{width: 1, height: 2}

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPlayer(m, WithFPS(500), WithSink(func(TextFrame) {
		if m.calls >= 4 {
			cancel()
		}
	}))

	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	for i := 1; i < len(m.times); i++ {
		if m.times[i] <= m.times[i-1] {
			t.Errorf("elapsed not increasing: %v then %v", m.times[i-1], m.times[i])
		}
	}
	if len(m.times) > 0 && m.times[0] < 0 {
		t.Errorf("negative elapsed: %v", m.times[0])
	}
}

func TestPlayerStopsWhenNotReady(t *testing.T) {
	m := &mockRenderer{width: 2, height: 2, err: ErrNotReady}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := NewPlayer(m, WithFPS(200))
	err := p.Run(ctx)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if m.calls != 1 {
		t.Errorf("expected loop to stop after first call, got %d calls", m.calls)
	}
}

func TestPlayerSkipsTransientErrors(t *testing.T) {
	m := &mockRenderer{width: 2, height: 2, failEvery: 2}
	var delivered int

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPlayer(m, WithFPS(500), WithSink(func(TextFrame) {
		delivered++
		if delivered >= 3 {
			cancel()
		}
	}))

	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if delivered < 3 {
		t.Errorf("expected 3 delivered frames despite failures, got %d", delivered)
	}
	if m.calls <= delivered {
		t.Errorf("expected more calls (%d) than deliveries (%d)", m.calls, delivered)
	}
}

func TestPlayerInvalidFPS(t *testing.T) {
	p := NewPlayer(&mockRenderer{width: 1, height: 2}, WithFPS(0))
	if err := p.Run(context.Background()); err == nil {
		t.Fatal("expected error for fps 0")
	}
}

func TestPlayerCustomConverter(t *testing.T) {
	m := &mockRenderer{width: 2, height: 2}
	p := NewPlayer(m, WithConverter(NewConverter(WithGlyph('#'))))

	tf, err := p.RenderOnce(0)
	if err != nil {
		t.Fatalf("RenderOnce: %v", err)
	}
	if !strings.Contains(string(tf), "#") {
		t.Error("custom converter glyph missing from output")
	}
}
