package shade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Player drives a FrameRenderer at a fixed rate, converting every rendered
// Frame and delivering the TextFrame to an output sink. It is the host
// animation loop: the renderer itself stays clock-free.
type Player struct {
	renderer  FrameRenderer
	converter *Converter
	out       io.Writer
	sink      func(TextFrame)
	fps       float64
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithFPS sets the target frame rate. The default is 20.
func WithFPS(fps float64) PlayerOption {
	return func(p *Player) { p.fps = fps }
}

// WithConverter sets the frame converter. The default uses NewConverter().
func WithConverter(c *Converter) PlayerOption {
	return func(p *Player) { p.converter = c }
}

// WithOutput writes every TextFrame to w.
func WithOutput(w io.Writer) PlayerOption {
	return func(p *Player) { p.out = w }
}

// WithSink delivers every TextFrame to fn. May be combined with WithOutput.
func WithSink(fn func(TextFrame)) PlayerOption {
	return func(p *Player) { p.sink = fn }
}

// NewPlayer creates a Player around an existing renderer. The Player does
// not take ownership: releasing the renderer stays with the caller.
func NewPlayer(renderer FrameRenderer, opts ...PlayerOption) *Player {
	p := &Player{
		renderer:  renderer,
		converter: NewConverter(),
		fps:       20,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run renders frames until ctx is cancelled, supplying each render call
// with the elapsed time since Run started. Rendering happens on the calling
// goroutine, which must be the renderer's GL thread.
//
// A transient render failure logs a warning and skips the tick. ErrNotReady
// stops the loop: a renderer that never finished construction will not
// recover. Ticks that arrive while a frame is still in flight are dropped
// by the ticker, so an overrunning shader slows playback instead of
// queueing work.
func (p *Player) Run(ctx context.Context) error {
	if p.fps <= 0 {
		return fmt.Errorf("shade: invalid fps %v", p.fps)
	}

	start := time.Now()
	ticker := time.NewTicker(time.Duration(float64(time.Second) / p.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.step(time.Since(start).Seconds()); err != nil {
				return err
			}
		}
	}
}

// RenderOnce renders and converts a single frame at the given elapsed time.
func (p *Player) RenderOnce(elapsed float64) (TextFrame, error) {
	frame, err := p.renderer.RenderFrame(elapsed)
	if err != nil {
		return "", err
	}
	return p.converter.Convert(frame), nil
}

func (p *Player) step(elapsed float64) error {
	frame, err := p.renderer.RenderFrame(elapsed)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			return err
		}
		Logger().Warn("frame skipped", "elapsed", elapsed, "error", err)
		return nil
	}

	tf := p.converter.Convert(frame)
	if p.out != nil {
		if _, err := io.WriteString(p.out, string(tf)); err != nil {
			return fmt.Errorf("shade: write frame: %w", err)
		}
	}
	if p.sink != nil {
		p.sink(tf)
	}
	return nil
}
