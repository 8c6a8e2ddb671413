package shade

// Frame is a dense raster read back from a render target: Height rows of
// Width pixels, four float32 channels (RGBA) per pixel, row-major starting
// at pixel (0,0). Channel values are nominally in [0,1]; the pipeline does
// not clamp shader output.
type Frame struct {
	Width  int
	Height int
	Pix    []float32 // len == Width*Height*4
}

// NewFrame allocates a zeroed Frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*4),
	}
}

// At returns the RGBA channels of the pixel at (x, y).
func (f *Frame) At(x, y int) (r, g, b, a float32) {
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// Set stores the RGBA channels of the pixel at (x, y).
func (f *Frame) Set(x, y int, r, g, b, a float32) {
	i := (y*f.Width + x) * 4
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = a
}

// TextFrame is one converted frame: floor(height/2) lines, each holding
// exactly width styled half-block glyphs, every line ending with an SGR
// reset and a newline.
type TextFrame string

// FrameRenderer produces one Frame per supplied time value. The renderer
// holds no internal clock: callers control pacing and may render times
// out of order or repeatedly.
type FrameRenderer interface {
	// RenderFrame renders at the given elapsed time in seconds. It returns
	// ErrNotReady if construction never fully succeeded.
	RenderFrame(time float64) (*Frame, error)

	// Release frees all GPU resources. It is idempotent and may be called
	// at any point after construction, including after a failed render.
	Release()
}
