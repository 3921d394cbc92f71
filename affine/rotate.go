package affine

import (
	"golang.org/x/image/math/f64"

	"github.com/g3n/meshwarp/math32"
)

// NewRotate builds the state for a clockwise rotation by angle degrees
// (taken mod 360), with the destination canvas expanded so the rotated
// source fits exactly with its top-left corner at the origin.
func NewRotate(angle int, height, width int) (*State, error) {

	theta := ((angle % 360) + 360) % 360
	if theta == 0 {
		return nil, nil
	}

	r := math32.DegToRad(float32(theta))
	H, W := float32(height), float32(width)

	var shiftX, shiftY, dstWf, dstHf float32

	switch {
	case r <= math32.Pi/2:
		shiftX = H * math32.Sin(r)
		shiftY = 0
		dstWf = H*math32.Sin(r) + W*math32.Cos(r)
		dstHf = H*math32.Cos(r) + W*math32.Sin(r)
	case r <= math32.Pi:
		rr := r - math32.Pi/2
		shiftX = W*math32.Sin(rr) + H*math32.Cos(rr)
		shiftY = H * math32.Sin(rr)
		dstWf = shiftX
		dstHf = shiftY + W*math32.Cos(rr)
	case r < 3*math32.Pi/2:
		rr := r - math32.Pi
		shiftX = W * math32.Cos(rr)
		shiftY = W*math32.Sin(rr) + H*math32.Cos(rr)
		dstWf = shiftX + H*math32.Sin(rr)
		dstHf = shiftY
	default:
		rr := r - 3*math32.Pi/2
		shiftX = 0
		shiftY = W * math32.Cos(rr)
		dstWf = W*math32.Sin(rr) + H*math32.Cos(rr)
		dstHf = shiftY + H*math32.Sin(rr)
	}

	shiftX = math32.Ceil(shiftX)
	shiftY = math32.Ceil(shiftY)
	dstW := int(math32.Ceil(dstWf))
	dstH := int(math32.Ceil(dstHf))

	cosR, sinR := math32.Cos(r), math32.Sin(r)
	a := f64.Aff3{
		float64(cosR), float64(-sinR), float64(shiftX),
		float64(sinR), float64(cosR), float64(shiftY),
	}
	return &State{Aff: &a, DstW: dstW, DstH: dstH}, nil
}
