package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/term-shade/shade"
)

// target is the off-screen render target: an RGBA 32-bit float texture
// wrapped by a framebuffer object as its sole color attachment. Dimensions
// are fixed at construction and never change.
type target struct {
	tex    uint32
	fbo    uint32
	width  int32
	height int32
}

func newTarget(width, height int) (*target, error) {
	t := &target{width: int32(width), height: int32(height)}

	gl.GenTextures(1, &t.tex)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, t.width, t.height, 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		t.release()
		return nil, &shade.RenderTargetError{
			Err: fmt.Errorf("texture allocation failed: GL error 0x%04x", errCode),
		}
	}

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex, 0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		t.release()
		return nil, &shade.RenderTargetError{
			Err: fmt.Errorf("framebuffer incomplete: status 0x%04x", status),
		}
	}

	return t, nil
}

// release deletes the texture, then the framebuffer. Safe to call more
// than once.
func (t *target) release() {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
}
