package shade

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by RenderFrame when the renderer's construction
// did not fully succeed. The caller can skip the frame or stop its loop;
// Release remains safe to call.
var ErrNotReady = errors.New("shade: renderer not ready")

// ContextError reports that no off-screen GPU context could be obtained,
// typically because no driver or display backend is available. It is fatal
// to the renderer instance.
type ContextError struct {
	Err error
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("shade: no off-screen GPU context: %v", e.Err)
}

func (e *ContextError) Unwrap() error { return e.Err }

// ShaderCompileError reports a shader compilation or program link failure.
// Log carries the driver's diagnostic text verbatim.
type ShaderCompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("shade: %s shader: %s", e.Stage, e.Log)
}

// RenderTargetError reports a failed off-screen texture or framebuffer
// allocation. It is fatal to construction.
type RenderTargetError struct {
	Err error
}

func (e *RenderTargetError) Error() string {
	return fmt.Sprintf("shade: render target: %v", e.Err)
}

func (e *RenderTargetError) Unwrap() error { return e.Err }
