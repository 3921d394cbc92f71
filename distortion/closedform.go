package distortion

import (
	"github.com/g3n/meshwarp/affine"
)

// StateBuilder is implemented by every config type: it resolves a config
// against a source shape into an immutable State, or an InvalidConfig
// error if state construction fails.
type StateBuilder interface {
	BuildState(shape Shape) (State, error)
}

// ShearHoriConfig configures a horizontal shear. Angle is in degrees,
// strictly between -90 and 90.
type ShearHoriConfig struct {
	Angle int
}

func (c ShearHoriConfig) BuildState(shape Shape) (State, error) {

	st, err := affine.NewShearHori(c.Angle, shape.Height, shape.Width)
	if err != nil {
		return nil, invalidConfig("ShearHori", err)
	}
	if st == nil {
		return identityState{height: shape.Height, width: shape.Width}, nil
	}
	return &matrixState{aff: st, srcH: shape.Height, srcW: shape.Width}, nil
}

// ShearVertConfig configures a vertical shear, symmetric with ShearHori.
type ShearVertConfig struct {
	Angle int
}

func (c ShearVertConfig) BuildState(shape Shape) (State, error) {

	st, err := affine.NewShearVert(c.Angle, shape.Height, shape.Width)
	if err != nil {
		return nil, invalidConfig("ShearVert", err)
	}
	if st == nil {
		return identityState{height: shape.Height, width: shape.Width}, nil
	}
	return &matrixState{aff: st, srcH: shape.Height, srcW: shape.Width}, nil
}

// RotateConfig configures a clockwise rotation in degrees, taken mod 360.
type RotateConfig struct {
	Angle int
}

func (c RotateConfig) BuildState(shape Shape) (State, error) {

	st, err := affine.NewRotate(c.Angle, shape.Height, shape.Width)
	if err != nil {
		return nil, invalidConfig("Rotate", err)
	}
	if st == nil {
		return identityState{height: shape.Height, width: shape.Width}, nil
	}
	return &matrixState{aff: st, srcH: shape.Height, srcW: shape.Width}, nil
}

// SkewHoriConfig configures a horizontal trapezoidal skew. Ratio is the
// identity-detection field: a zero ratio is the identity transform, not
// Angle, which the skew configs do not carry (see DESIGN.md's note on the
// original library's skew_hori_points/skew_vert_points bug).
type SkewHoriConfig struct {
	Ratio float32
}

func (c SkewHoriConfig) BuildState(shape Shape) (State, error) {

	st, err := affine.NewSkewHori(c.Ratio, shape.Height, shape.Width)
	if err != nil {
		return nil, invalidConfig("SkewHori", err)
	}
	if st == nil {
		return identityState{height: shape.Height, width: shape.Width}, nil
	}
	return &matrixState{aff: st, srcH: shape.Height, srcW: shape.Width}, nil
}

// SkewVertConfig configures a vertical trapezoidal skew, symmetric with
// SkewHori.
type SkewVertConfig struct {
	Ratio float32
}

func (c SkewVertConfig) BuildState(shape Shape) (State, error) {

	st, err := affine.NewSkewVert(c.Ratio, shape.Height, shape.Width)
	if err != nil {
		return nil, invalidConfig("SkewVert", err)
	}
	if st == nil {
		return identityState{height: shape.Height, width: shape.Width}, nil
	}
	return &matrixState{aff: st, srcH: shape.Height, srcW: shape.Width}, nil
}
