// Example renders an animated fragment shader into the terminal.
//
// A headless GL context renders the shader off-screen at the size of the
// character grid; every frame is converted to half-block glyphs and drawn
// in place on the alternate screen. Press q or Ctrl-C to quit.
//
// Default shader sources are written next to the binary on first run; point
// -vert/-frag at your own files to render something else.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/term-shade/shade"
	"github.com/term-shade/shade/backend/opengl"
	"github.com/term-shade/shade/term"
)

const defaultVertexShader = `#version 410 core
in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const defaultFragmentShader = `#version 410 core
uniform vec2 resolution;
uniform float time;
out vec4 fragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / resolution.xy;
    vec3 color = vec3(uv.x, uv.y, 0.5 + 0.5 * sin(time));
    fragColor = vec4(color, 1.0);
}
`

func init() {
	// GLFW and GL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	width := flag.Int("width", 80, "render width in cells")
	height := flag.Int("height", 0, "render height in pixel rows (0 = 2x terminal rows)")
	fps := flag.Float64("fps", 20, "target frames per second")
	vertPath := flag.String("vert", "shaders/quad.vert", "vertex shader path")
	fragPath := flag.String("frag", "shaders/scene.frag", "fragment shader path")
	flag.Parse()

	if err := bootstrapShader(*vertPath, defaultVertexShader); err != nil {
		return err
	}
	if err := bootstrapShader(*fragPath, defaultFragmentShader); err != nil {
		return err
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	h := *height
	if h == 0 {
		// Each text row shows two pixel rows; leave one row for slack.
		_, rows, err := screen.Size()
		if err != nil {
			return err
		}
		h = (rows - 1) * 2
	}

	renderer, err := opengl.New(opengl.Config{
		Width:    *width,
		Height:   h,
		VertPath: *vertPath,
		FragPath: *fragPath,
	})
	if err != nil {
		return err
	}
	defer renderer.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for key := range screen.Keys() {
			if key == 'q' || key == 0x03 { // Ctrl-C
				cancel()
				return
			}
		}
	}()

	player := shade.NewPlayer(renderer,
		shade.WithFPS(*fps),
		shade.WithSink(func(tf shade.TextFrame) {
			_ = screen.Draw(tf)
		}),
	)

	if err := player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// bootstrapShader writes the fallback source when no file exists at path,
// so the example runs out of the box.
func bootstrapShader(path, source string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(source), 0o644)
}
