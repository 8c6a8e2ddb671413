package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/term-shade/shade"
)

// Uniform names the renderer looks up. The shadertoy-style aliases are
// accepted so existing shadertoy fragments run unmodified.
var (
	timeUniformNames       = []string{"time", "iTime"}
	resolutionUniformNames = []string{"resolution", "iResolution"}
	positionAttribNames    = []string{"position", "in_vert"}
)

// program is a linked vertex+fragment shader pair.
type program struct {
	id uint32
}

// compileProgram compiles and links a shader program. On failure the
// returned *shade.ShaderCompileError carries the driver's info log.
func compileProgram(vertexSource, fragmentSource string) (*program, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	// Shaders are owned by the program once linked.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &infoLog[0])
		gl.DeleteProgram(id)
		return nil, compileError("link", infoLog)
	}

	return &program{id: id}, nil
}

func compileShader(xtype uint32, stage, source string) (uint32, error) {
	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, compileError(stage, infoLog)
	}
	return shader, nil
}

// uniform returns the location of the first of the given names present in
// the program. The ok result is false when none exist; callers treat that
// as a warning, not an error.
func (p *program) uniform(names []string) (int32, bool) {
	for _, name := range names {
		if loc := gl.GetUniformLocation(p.id, gl.Str(terminate(name))); loc >= 0 {
			return loc, true
		}
	}
	return -1, false
}

// attribLocation returns the location of the first of the given attribute
// names present in the program, defaulting to 0 when none are active.
func (p *program) attribLocation(names []string) uint32 {
	for _, name := range names {
		if loc := gl.GetAttribLocation(p.id, gl.Str(terminate(name))); loc >= 0 {
			return uint32(loc)
		}
	}
	return 0
}

// release deletes the program object. Safe to call more than once.
func (p *program) release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileError(stage string, infoLog []byte) error {
	return &shade.ShaderCompileError{
		Stage: stage,
		Log:   strings.TrimRight(string(infoLog), "\x00\n"),
	}
}

// terminate null-terminates s for gl.Str/gl.Strs, which require it.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
