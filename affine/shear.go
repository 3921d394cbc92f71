package affine

import (
	"golang.org/x/image/math/f64"

	"github.com/g3n/meshwarp/math32"
)

// NewShearHori builds the state for a horizontal shear of the given angle
// in degrees, angle in [-90, 90] exclusive of the endpoints (shearing at
// exactly +-90 degrees would require an infinite tangent).
func NewShearHori(angle int, height, width int) (*State, error) {

	if angle <= -90 || angle >= 90 {
		return nil, &ErrInvalidConfig{Field: "angle", Value: angle}
	}
	if angle == 0 {
		return nil, nil
	}

	phi := math32.DegToRad(float32(angle))
	tanPhi := math32.Tan(phi)
	shiftX := math32.Abs(float32(height) * tanPhi)

	dstW := int(math32.Ceil(float32(width) + shiftX))
	dstH := height

	var c float32
	if angle > 0 {
		c = shiftX
	}
	a := f64.Aff3{1, float64(-tanPhi), float64(c), 0, 1, 0}
	return &State{Aff: &a, DstW: dstW, DstH: dstH}, nil
}

// NewShearVert builds the state for a vertical shear, symmetric with
// NewShearHori about the x/y axes.
func NewShearVert(angle int, height, width int) (*State, error) {

	if angle <= -90 || angle >= 90 {
		return nil, &ErrInvalidConfig{Field: "angle", Value: angle}
	}
	if angle == 0 {
		return nil, nil
	}

	phi := math32.DegToRad(float32(angle))
	tanPhi := math32.Tan(phi)
	shiftY := math32.Abs(float32(width) * tanPhi)

	dstW := width
	dstH := int(math32.Ceil(float32(height) + shiftY))

	var f float32
	if angle > 0 {
		f = shiftY
	}
	a := f64.Aff3{1, 0, 0, float64(-tanPhi), 1, float64(f)}
	return &State{Aff: &a, DstW: dstW, DstH: dstH}, nil
}
