// Package affine implements the closed-form 2D transforms: horizontal and
// vertical shear, canvas-expanding rotation, and four-point trapezoidal
// skew. Each builds a matrix and destination canvas size from a config and
// source shape, then exposes one warp path for rasters and one projection
// path for points.
package affine

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/g3n/meshwarp/math32"
)

// State is the precomputed, immutable result of resolving a closed-form
// transform against a source shape. A nil *State denotes the identity
// transform: every layer passes through unchanged and DstW/DstH equal the
// source shape.
//
// Exactly one of Aff or Persp is set on a non-nil State: shear and rotation
// produce a 2x3 affine map (Aff), skew produces a 3x3 perspective map
// (Persp). Aff is stored as golang.org/x/image/math/f64.Aff3, the same
// affine representation x/image's own scalers use, so this package's
// matrices interoperate with any x/image-based resizer a caller already
// has in scope.
type State struct {
	Aff   *f64.Aff3
	Persp *math32.Matrix3
	DstW  int
	DstH  int
}

// ErrInvalidConfig reports an out-of-range configuration field, surfaced at
// state construction per the InvalidConfig error policy: no partial state
// is ever returned.
type ErrInvalidConfig struct {
	Field string
	Value interface{}
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("affine: invalid config field %s=%v", e.Field, e.Value)
}

// applyAff maps a point through a 2x3 affine matrix.
func applyAff(a *f64.Aff3, x, y float32) (float32, float32) {

	fx, fy := float64(x), float64(y)
	return float32(a[0]*fx + a[1]*fy + a[2]), float32(a[3]*fx + a[4]*fy + a[5])
}

// invertAff returns the inverse of a 2x3 affine matrix. Returns an error if
// the matrix is singular (never the case for the shear/rotation matrices
// this package constructs, since their linear part always has nonzero
// determinant).
func invertAff(a *f64.Aff3) (*f64.Aff3, error) {

	det := a[0]*a[4] - a[1]*a[3]
	if det == 0 {
		return nil, errors.New("affine: singular affine matrix")
	}
	invDet := 1 / det
	inv := f64.Aff3{
		a[4] * invDet,
		-a[1] * invDet,
		(a[1]*a[5] - a[2]*a[4]) * invDet,
		-a[3] * invDet,
		a[0] * invDet,
		(a[2]*a[3] - a[0]*a[5]) * invDet,
	}
	return &inv, nil
}

// applyPersp maps a point through a 3x3 perspective matrix, performing the
// homogeneous divide. Returns ok=false if the homogeneous weight is zero
// (the Degenerate policy: callers must skip the point/pixel).
func applyPersp(m *math32.Matrix3, x, y float32) (float32, float32, bool) {

	v := math32.Vector3{X: x, Y: y, Z: 1}
	v.ApplyMatrix3(m)
	if v.Z == 0 {
		return 0, 0, false
	}
	return v.X / v.Z, v.Y / v.Z, true
}

// invertPersp returns the inverse of a 3x3 perspective matrix.
func invertPersp(m *math32.Matrix3) (*math32.Matrix3, error) {

	var inv math32.Matrix3
	if err := inv.GetInverse(m); err != nil {
		return nil, err
	}
	return &inv, nil
}

// inverse returns the dst->src map used by the raster warp: for an affine
// state it is the inverted affine matrix; for a perspective state it is
// the inverted perspective matrix. A nil state (identity) has no inverse
// to compute; callers check for nil first.
func (s *State) inverse() (*f64.Aff3, *math32.Matrix3, error) {

	if s.Aff != nil {
		inv, err := invertAff(s.Aff)
		return inv, nil, err
	}
	invP, err := invertPersp(s.Persp)
	return nil, invP, err
}
