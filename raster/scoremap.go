package raster

import "github.com/g3n/meshwarp/math32"

// ScoreMap is a single-channel float32 raster with no color interpretation,
// used for confidence/heat maps that ride alongside an image through a
// distortion (e.g. text-detection score maps).
type ScoreMap struct {
	Height int
	Width  int
	Values []float32
}

// NewScoreMap allocates a zeroed score map.
func NewScoreMap(height, width int) *ScoreMap {

	return &ScoreMap{Height: height, Width: width, Values: make([]float32, height*width)}
}

func (sm *ScoreMap) index(y, x int) int { return y*sm.Width + x }

// At returns the value at (y, x).
func (sm *ScoreMap) At(y, x int) float32 { return sm.Values[sm.index(y, x)] }

// Set writes v at (y, x).
func (sm *ScoreMap) Set(y, x int, v float32) { sm.Values[sm.index(y, x)] = v }

// Shape returns (height, width).
func (sm *ScoreMap) Shape() (int, int) { return sm.Height, sm.Width }

// Clone returns a deep copy of this score map.
func (sm *ScoreMap) Clone() *ScoreMap {

	out := &ScoreMap{Height: sm.Height, Width: sm.Width}
	out.Values = append([]float32(nil), sm.Values...)
	return out
}

// RescaleTo resizes this score map to (height, width) using nearest-neighbor
// sampling, matching raster.Image.RescaleTo's policy.
func (sm *ScoreMap) RescaleTo(height, width int) *ScoreMap {

	out := NewScoreMap(height, width)
	for y := 0; y < height; y++ {
		sy := int(float32(y) * float32(sm.Height) / float32(height))
		sy = math32.ClampInt(sy, 0, sm.Height-1)
		for x := 0; x < width; x++ {
			sx := int(float32(x) * float32(sm.Width) / float32(width))
			sx = math32.ClampInt(sx, 0, sm.Width-1)
			out.Set(y, x, sm.At(sy, sx))
		}
	}
	return out
}
