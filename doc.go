/*
Package shade renders procedural shader animations into colored terminal
text.

A GL backend (backend/opengl) renders a user-supplied fragment shader into
an off-screen float texture once per time value and reads the pixels back as
a Frame. The root package converts each Frame into a TextFrame: one lower
half block glyph per cell, colored with 24-bit SGR escapes, packing two
pixel rows into every text row.

# Quick Start

	runtime.LockOSThread()

	renderer, err := opengl.New(opengl.Config{
	    Width:    80,
	    Height:   48,
	    VertPath: "shaders/quad.vert",
	    FragPath: "shaders/scene.frag",
	})
	if err != nil {
	    log.Fatal(err)
	}
	defer renderer.Release()

	player := shade.NewPlayer(renderer, shade.WithFPS(20), shade.WithOutput(os.Stdout))
	player.Run(context.Background())

The conversion step is pure and has no GPU dependency; Convert works on any
Frame, including synthetic ones built in tests.

# Shader Contract

The vertex shader must declare a 2-float position attribute named "position"
(or "in_vert"). The fragment shader may declare a vec2 uniform "resolution"
(or "iResolution"), set once at construction, and a float uniform "time" (or
"iTime"), set once per rendered frame. Missing uniforms are logged and
skipped, never fatal.

# Threading

All GL work must stay on one OS thread: lock the goroutine that constructs
the renderer and keep rendering from it. A renderer owns its GPU resources
exclusively; for concurrent rendering use independent renderer instances.
*/
package shade
