package shade

import (
	"strconv"
	"strings"
)

// lowerHalfBlock occupies the bottom half of a character cell, so one glyph
// can show two pixel rows: the upper row as background, the lower row as
// foreground.
const lowerHalfBlock = '▄'

const sgrReset = "\x1b[0m"

// Converter turns a Frame into a TextFrame. It is pure and GPU-independent;
// the zero value is not usable, construct with NewConverter.
type Converter struct {
	glyph rune
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithGlyph overrides the cell glyph. The default is the lower half block;
// any replacement must likewise render foreground over the bottom half of
// the cell for the two-rows-per-line packing to read correctly.
func WithGlyph(r rune) ConverterOption {
	return func(c *Converter) { c.glyph = r }
}

// NewConverter creates a Converter.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{glyph: lowerHalfBlock}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders the frame as floor(height/2) lines of width styled
// glyphs. Rows are consumed in pairs: the upper pixel colors the cell
// background, the lower pixel the foreground. An unpaired final row is
// dropped. The alpha channel is ignored.
func (c *Converter) Convert(f *Frame) TextFrame {
	var b strings.Builder
	// Worst case per cell: full SGR sequence plus a 3-byte glyph.
	b.Grow((f.Height / 2) * (f.Width*40 + len(sgrReset) + 1))

	for y := 0; y+1 < f.Height; y += 2 {
		for x := 0; x < f.Width; x++ {
			br, bg, bb, _ := f.At(x, y)
			fr, fg, fb, _ := f.At(x, y+1)
			writeCell(&b, c.glyph,
				quantize(fr), quantize(fg), quantize(fb),
				quantize(br), quantize(bg), quantize(bb))
		}
		b.WriteString(sgrReset)
		b.WriteByte('\n')
	}
	return TextFrame(b.String())
}

// Convert converts a frame with the default glyph.
func Convert(f *Frame) TextFrame {
	return NewConverter().Convert(f)
}

// writeCell emits one glyph with a combined 24-bit foreground/background
// SGR sequence.
func writeCell(b *strings.Builder, glyph rune, fr, fg, fb, br, bg, bb uint8) {
	b.WriteString("\x1b[38;2;")
	writeByteVal(b, fr)
	b.WriteByte(';')
	writeByteVal(b, fg)
	b.WriteByte(';')
	writeByteVal(b, fb)
	b.WriteString(";48;2;")
	writeByteVal(b, br)
	b.WriteByte(';')
	writeByteVal(b, bg)
	b.WriteByte(';')
	writeByteVal(b, bb)
	b.WriteByte('m')
	b.WriteRune(glyph)
}

func writeByteVal(b *strings.Builder, v uint8) {
	b.WriteString(strconv.Itoa(int(v)))
}

// quantize maps a float channel to 8 bits by clamping to [0,1] and
// truncating. Truncation (not rounding) is deliberate: 127/255 <= c <
// 128/255 must yield 127 for output to stay bit-compatible across
// implementations.
func quantize(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c * 255)
}
