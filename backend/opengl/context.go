package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/term-shade/shade"
)

// context owns the headless GL context. GLFW has no true surfaceless mode,
// so the context is backed by an invisible window that is never shown or
// swapped; all drawing goes to the renderer's framebuffer object.
type context struct {
	window *glfw.Window
}

func newContext(width, height int) (*context, error) {
	if err := glfw.Init(); err != nil {
		return nil, &shade.ContextError{Err: fmt.Errorf("glfw init: %w", err)}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, "shade offscreen", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &shade.ContextError{Err: fmt.Errorf("create offscreen window: %w", err)}
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, &shade.ContextError{Err: fmt.Errorf("gl init: %w", err)}
	}

	shade.Logger().Info("offscreen GL context created",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	return &context{window: window}, nil
}

// release destroys the context. Safe to call more than once.
func (c *context) release() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
	glfw.Terminate()
	shade.Logger().Debug("GL context released")
}
