package raster

import "github.com/g3n/meshwarp/math32"

// Image is a pixel matrix with a known channel count and dtype, inferred
// from Kind: bytes for the integer kinds, float32 for the GCN kinds. Bytes
// is valid (non-nil) iff !Kind.IsGCN(); Floats is valid iff Kind.IsGCN().
type Image struct {
	Height   int
	Width    int
	Kind     Kind
	Bytes    []uint8
	Floats   []float32
	channels int
}

// NewImage allocates a zeroed image of the given kind and dimensions.
func NewImage(height, width int, kind Kind) *Image {

	ch := kind.Channels()
	img := &Image{Height: height, Width: width, Kind: kind, channels: ch}
	if kind.IsGCN() {
		img.Floats = make([]float32, height*width*ch)
	} else {
		img.Bytes = make([]uint8, height*width*ch)
	}
	return img
}

// Channels returns the channel count of this image.
func (img *Image) Channels() int { return img.channels }

// index returns the flat offset of pixel (y, x) channel c.
func (img *Image) index(y, x, c int) int {

	return (y*img.Width+x)*img.channels + c
}

// At returns the value of pixel (y, x) channel c as a float32, regardless
// of the underlying storage representation. Used by the tile blender so a
// single bilinear-sampling code path serves every kind.
func (img *Image) At(y, x, c int) float32 {

	i := img.index(y, x, c)
	if img.Kind.IsGCN() {
		return img.Floats[i]
	}
	return float32(img.Bytes[i])
}

// Set writes v to pixel (y, x) channel c. For byte kinds, v is rounded and
// clipped to [0, 255]; for GCN kinds it is stored verbatim.
func (img *Image) Set(y, x, c int, v float32) {

	i := img.index(y, x, c)
	if img.Kind.IsGCN() {
		img.Floats[i] = v
		return
	}
	img.Bytes[i] = clipByte(v)
}

func clipByte(v float32) uint8 {

	v = math32.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Clone returns a deep copy of this image.
func (img *Image) Clone() *Image {

	out := &Image{Height: img.Height, Width: img.Width, Kind: img.Kind, channels: img.channels}
	if img.Bytes != nil {
		out.Bytes = append([]uint8(nil), img.Bytes...)
	}
	if img.Floats != nil {
		out.Floats = append([]float32(nil), img.Floats...)
	}
	return out
}

// Shape returns (height, width).
func (img *Image) Shape() (int, int) { return img.Height, img.Width }

// RescaleTo resizes this image to (height, width) using nearest-neighbor
// sampling, the same resampling policy the original label layers use for
// masks (cv.INTER_NEAREST_EXACT): a label-layer rescale should never
// invent intermediate values along a hard boundary.
func (img *Image) RescaleTo(height, width int) *Image {

	out := NewImage(height, width, img.Kind)
	for y := 0; y < height; y++ {
		sy := int(float32(y) * float32(img.Height) / float32(height))
		sy = math32.ClampInt(sy, 0, img.Height-1)
		for x := 0; x < width; x++ {
			sx := int(float32(x) * float32(img.Width) / float32(width))
			sx = math32.ClampInt(sx, 0, img.Width-1)
			for c := 0; c < img.channels; c++ {
				out.Set(y, x, c, img.At(sy, sx, c))
			}
		}
	}
	return out
}
