// Package opengl implements shade.FrameRenderer on a headless OpenGL 4.1
// core context obtained through GLFW.
//
// All calls, including New and Release, must happen on a single locked OS
// thread (runtime.LockOSThread). A Renderer owns its context and resources
// exclusively; create independent Renderers for concurrent work.
package opengl

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/term-shade/shade"
)

// Config holds the renderer's construction parameters. Dimensions are in
// pixels and fixed for the renderer's lifetime.
type Config struct {
	Width    int
	Height   int
	VertPath string // vertex shader source file
	FragPath string // fragment shader source file
}

// Renderer renders one frame per RenderFrame call into an off-screen
// framebuffer and reads the pixels back. It satisfies shade.FrameRenderer.
type Renderer struct {
	cfg Config

	ctx  *context
	prog *program
	geom *quad
	tgt  *target

	timeLoc int32
	hasTime bool

	ready bool
}

// New builds the full pipeline: context, shader program, fullscreen quad
// and render target. Construction either succeeds completely or unwinds,
// releasing every resource created before the failure, and returns one of
// the shade error types.
func New(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("opengl: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	r := &Renderer{cfg: cfg}

	var err error
	r.ctx, err = newContext(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	vertSource, err := os.ReadFile(cfg.VertPath)
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("opengl: read vertex shader: %w", err)
	}
	fragSource, err := os.ReadFile(cfg.FragPath)
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("opengl: read fragment shader: %w", err)
	}

	r.prog, err = compileProgram(string(vertSource), string(fragSource))
	if err != nil {
		r.Release()
		return nil, err
	}

	gl.UseProgram(r.prog.id)

	// The resolution uniform is set exactly once, here. The time uniform is
	// refreshed on every render call.
	if loc, ok := r.prog.uniform(resolutionUniformNames); ok {
		gl.Uniform2f(loc, float32(cfg.Width), float32(cfg.Height))
	} else {
		shade.Logger().Warn("resolution uniform not found, rendering without it",
			"names", resolutionUniformNames)
	}
	r.timeLoc, r.hasTime = r.prog.uniform(timeUniformNames)
	if !r.hasTime {
		shade.Logger().Warn("time uniform not found, rendering without it",
			"names", timeUniformNames)
	}

	r.geom = newQuad(r.prog.attribLocation(positionAttribNames))

	r.tgt, err = newTarget(cfg.Width, cfg.Height)
	if err != nil {
		r.Release()
		return nil, err
	}

	r.ready = true
	return r, nil
}

// Size returns the render target dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.cfg.Width, r.cfg.Height
}

// RenderFrame draws the fullscreen quad through the shader program at the
// given elapsed time and reads back the color buffer as a Frame. The
// target is fully cleared first, so the result depends only on the shader,
// the uniforms and the supplied time.
//
// Rows appear in the Frame in readback order, first readback row at y=0.
func (r *Renderer) RenderFrame(time float64) (*shade.Frame, error) {
	if !r.ready {
		return nil, shade.ErrNotReady
	}

	gl.UseProgram(r.prog.id)
	if r.hasTime {
		gl.Uniform1f(r.timeLoc, float32(time))
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.tgt.fbo)
	gl.Viewport(0, 0, r.tgt.width, r.tgt.height)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindVertexArray(r.geom.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	frame := shade.NewFrame(r.cfg.Width, r.cfg.Height)
	gl.ReadPixels(0, 0, r.tgt.width, r.tgt.height, gl.RGBA, gl.FLOAT, gl.Ptr(frame.Pix))

	return frame, nil
}

// Release frees all GPU resources in reverse creation order: program,
// geometry buffers, vertex array, texture, framebuffer, then the context
// itself. Idempotent: releasing twice, or after a partial construction, is
// a no-op for everything already gone.
func (r *Renderer) Release() {
	r.ready = false

	if r.prog != nil {
		r.prog.release()
		r.prog = nil
	}
	if r.geom != nil {
		r.geom.release()
		r.geom = nil
	}
	if r.tgt != nil {
		r.tgt.release()
		r.tgt = nil
	}
	if r.ctx != nil {
		r.ctx.release()
		r.ctx = nil
	}
}
