package raster

import (
	"fmt"
)

// conversionKey identifies a directed edge in the color-conversion graph.
type conversionKey struct {
	from Kind
	to   Kind
}

// convertFunc converts a single pixel's channels (in the From kind) to the
// To kind's channels.
type convertFunc func(px []float32) []float32

// kindToConvertFuncs mirrors the original library's kind_to_cv_color_codes
// dispatch table: rather than a generic N-to-M color transform, each
// supported (from, to) pair of base kinds has its own direct conversion
// function. Unlisted pairs are UnsupportedKind.
var kindToConvertFuncs = map[conversionKey]convertFunc{
	{RGB, RGBA}: func(px []float32) []float32 { return []float32{px[0], px[1], px[2], 255} },
	{RGB, Grayscale}: func(px []float32) []float32 {
		return []float32{0.299*px[0] + 0.587*px[1] + 0.114*px[2]}
	},
	{RGB, HSV}: func(px []float32) []float32 {
		h, s, v := rgbToHSV(px[0], px[1], px[2])
		return []float32{h * 255 / 360, s * 255, v}
	},
	{RGBA, RGB}: func(px []float32) []float32 { return []float32{px[0], px[1], px[2]} },
	{RGBA, Grayscale}: func(px []float32) []float32 {
		return []float32{0.299*px[0] + 0.587*px[1] + 0.114*px[2]}
	},
	{Grayscale, RGB}: func(px []float32) []float32 { return []float32{px[0], px[0], px[0]} },
	{Grayscale, RGBA}: func(px []float32) []float32 {
		return []float32{px[0], px[0], px[0], 255}
	},
	{HSV, RGB}: func(px []float32) []float32 {
		r, g, b := hsvToRGB(px[0]*360/255, px[1]/255, px[2])
		return []float32{r, g, b}
	},
}

// ConvertKind converts img to a new Image of the target kind, by walking the
// conversion graph keyed on the kinds' color family (GCN-ness is preserved
// independently: converting an RGB_GCN image still yields a float32 image).
func ConvertKind(img *Image, to Kind) (*Image, error) {

	fromBase := img.Kind.baseKind()
	toBase := to.baseKind()

	if fromBase == toBase {
		out := NewImage(img.Height, img.Width, to)
		buf := make([]float32, img.channels)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				for c := 0; c < img.channels; c++ {
					buf[c] = img.At(y, x, c)
				}
				for c := 0; c < out.channels; c++ {
					out.Set(y, x, c, buf[c])
				}
			}
		}
		return out, nil
	}

	fn, ok := kindToConvertFuncs[conversionKey{fromBase, toBase}]
	if !ok {
		return nil, fmt.Errorf("raster: unsupported color conversion %s -> %s", img.Kind, to)
	}

	out := NewImage(img.Height, img.Width, to)
	buf := make([]float32, img.channels)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for c := 0; c < img.channels; c++ {
				buf[c] = img.At(y, x, c)
			}
			converted := fn(buf)
			for c := 0; c < out.channels && c < len(converted); c++ {
				out.Set(y, x, c, converted[c])
			}
		}
	}
	return out, nil
}

// rgbToHSV and hsvToRGB implement the standard HSV formulas directly on
// 0-255 RGB channels, with h in degrees [0, 360), s in [0, 1] and v in
// 0-255; the conversion table scales h and s to 0-255 so every HSV image
// channel uses the 0-255 range (the stdlib's image/color has no HSV
// conversion).
func rgbToHSV(r, g, b float32) (h, s, v float32) {

	max := maxf(r, maxf(g, b))
	min := minf(r, minf(g, b))
	v = max
	delta := max - min
	if max == 0 {
		return 0, 0, v
	}
	s = delta / max
	if delta == 0 {
		return 0, s, v
	}
	switch {
	case max == r:
		h = 60 * (modf((g-b)/delta, 6))
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float32) (r, g, b float32) {

	c := v * s
	x := c * (1 - absf(modf(h/60, 2)-1))
	m := v - c
	var r1, g1, b1 float32
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	return r1 + m, g1 + m, b1 + m
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func modf(a, m float32) float32 {
	for a < 0 {
		a += m
	}
	for a >= m {
		a -= m
	}
	return a
}
