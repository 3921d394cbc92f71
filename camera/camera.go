// Package camera implements the pinhole camera model: a rotation (axis-
// angle via Rodrigues' formula) combined with a translation auto-solved so
// every lifted point sits strictly in front of the camera, projecting 3D
// points down to 2D pixel coordinates.
package camera

import "github.com/g3n/meshwarp/math32"

// Config holds the camera model's configuration fields. All are optional
// except RotationUnitVec/RotationTheta.
type Config struct {
	RotationUnitVec math32.Vector3
	RotationTheta   float32 // degrees; clamped to [-89, 89]

	PrincipalPoint *math32.Vector2 // defaults to (W/2, H/2)
	FocalLength    *float32        // defaults to max(H, W)
	CameraDistance *float32        // auto-derived if nil
}

// Model is the resolved, immutable camera: rotation R, translation T, and
// intrinsic matrix K = diag(f, f, 1).
type Model struct {
	R math32.Matrix3
	T math32.Vector3
	K math32.Matrix3

	PrincipalPoint math32.Vector2
	FocalLength    float32
	CameraDistance float32
}

// NewModel resolves a Config against a (height, width) source shape and the
// set of 3D points an elevation strategy has already lifted from the
// source grid. When cfg.CameraDistance is nil, the distance is
// auto-derived from those lifted points so the nearest one sits at camera-
// frame z = f + 1 (one unit beyond the focal-length initial guess), which
// keeps every point strictly in front of the camera for a numerically
// stable perspective divide.
func NewModel(cfg Config, height, width int, liftedPoints []math32.Vector3) *Model {

	theta := math32.Clamp(cfg.RotationTheta, -89, 89)
	thetaRad := math32.DegToRad(theta)

	axis := cfg.RotationUnitVec
	axis.Normalize()

	var rot4 math32.Matrix4
	rot4.MakeRotationAxis(&axis, thetaRad)
	R := matrix3FromRotation(&rot4)

	pp := defaultPrincipalPoint(height, width)
	if cfg.PrincipalPoint != nil {
		pp = *cfg.PrincipalPoint
	}
	ppVec := math32.Vector3{X: pp.X, Y: pp.Y, Z: 0}

	f := math32.Max(float32(height), float32(width))
	if cfg.FocalLength != nil {
		f = *cfg.FocalLength
	}

	var K math32.Matrix3
	K.Set(
		f, 0, 0,
		0, f, 0,
		0, 0, 1,
	)

	distGuess := f
	if cfg.CameraDistance != nil {
		distGuess = *cfg.CameraDistance
	}
	T := solveTranslation(&R, distGuess, &ppVec)

	m := &Model{R: R, T: T, K: K, PrincipalPoint: pp, FocalLength: f, CameraDistance: distGuess}

	if cfg.CameraDistance == nil && len(liftedPoints) > 0 {
		zMin := m.cameraFrameZ(liftedPoints[0])
		for _, p := range liftedPoints[1:] {
			if z := m.cameraFrameZ(p); z < zMin {
				zMin = z
			}
		}
		dist := distGuess - (zMin - distGuess) + 1
		m.CameraDistance = dist
		m.T = solveTranslation(&R, dist, &ppVec)
	}

	return m
}

func defaultPrincipalPoint(height, width int) math32.Vector2 {
	return math32.Vector2{X: float32(width) / 2, Y: float32(height) / 2}
}

// matrix3FromRotation extracts the 3x3 rotation submatrix from a Matrix4
// built by MakeRotationAxis.
func matrix3FromRotation(m *math32.Matrix4) math32.Matrix3 {

	var r math32.Matrix3
	r.Set(
		m[0], m[4], m[8],
		m[1], m[5], m[9],
		m[2], m[6], m[10],
	)
	return r
}

// solveTranslation computes t = R . (R^T . c2pp - principalPoint), where
// c2pp = (0, 0, dist) places the camera at dist along +z.
func solveTranslation(R *math32.Matrix3, dist float32, principalPoint *math32.Vector3) math32.Vector3 {

	var Rt math32.Matrix3
	Rt.Copy(R).Transpose()

	v := math32.Vector3{X: 0, Y: 0, Z: dist}
	v.ApplyMatrix3(&Rt)
	v.Sub(principalPoint)
	v.ApplyMatrix3(R)
	return v
}

// cameraFrameZ returns the z coordinate of p after applying R and T only
// (no intrinsic), i.e. its depth in camera space.
func (m *Model) cameraFrameZ(p math32.Vector3) float32 {

	v := p
	v.ApplyMatrix3(&m.R)
	v.Add(&m.T)
	return v.Z
}

// Project3D maps 3D points to 2D pixel coordinates via the standard
// pinhole equations. Outputs are not rounded; distortion coefficients are
// zero.
func (m *Model) Project3D(points []math32.Vector3) []math32.Vector2 {

	out := make([]math32.Vector2, len(points))
	for i, p := range points {
		v := p
		v.ApplyMatrix3(&m.R)
		v.Add(&m.T)
		v.ApplyMatrix3(&m.K)
		out[i] = math32.Vector2{X: v.X / v.Z, Y: v.Y / v.Z}
	}
	return out
}
