// Package elevation implements the strategies that lift 2D source-grid
// points into 3D ahead of camera projection: a cubic-curve roll along a
// direction, and two line-distance-weighted strategies (fold and curve).
package elevation

import "github.com/g3n/meshwarp/math32"

// Strategy lifts a set of 2D points into 3D, leaving (x, y) unchanged and
// setting z.
type Strategy interface {
	Lift(points []math32.Vector2) []math32.Vector3
}

// CubicCurve rolls the source plane into an S- or U-shaped surface along
// direction, controlled by two angle parameters in [-80, 80] degrees.
type CubicCurve struct {
	Alpha     float32 // degrees, [-80, 80]
	Beta      float32 // degrees, [-80, 80]
	Direction float32 // degrees, [0, 180]
	Scale     float32
}

// Lift implements Strategy.
func (c CubicCurve) Lift(points []math32.Vector2) []math32.Vector3 {

	tAlpha := math32.Tan(math32.DegToRad(c.Alpha))
	tBeta := math32.Tan(math32.DegToRad(c.Beta))
	dirRad := math32.DegToRad(c.Direction)
	cosD, sinD := math32.Cos(dirRad), math32.Sin(dirRad)

	rotatedX := make([]float32, len(points))
	for i, p := range points {
		rotatedX[i] = p.X*cosD - p.Y*sinD
	}

	xMin, xMax := rotatedX[0], rotatedX[0]
	for _, x := range rotatedX[1:] {
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
	}
	extent := xMax - xMin

	out := make([]math32.Vector3, len(points))
	for i, p := range points {
		var s float32
		if extent != 0 {
			s = (rotatedX[i] - xMin) / extent
		}
		z := (tAlpha+tBeta)*s*s*s - (2*tAlpha+tBeta)*s*s + tAlpha*s
		z = z * extent * c.Scale
		out[i] = math32.Vector3{X: p.X, Y: p.Y, Z: z}
	}
	return out
}

// lineCoeffs returns normalized normal-form coefficients (a, b, c) with
// a^2+b^2=1 for the line through p0 at angle theta (degrees);
// normalizedDistance computes each point's normalized distance to it.
func lineCoeffs(p0 math32.Vector2, thetaDeg float32) (a, b, c float32) {

	theta := math32.DegToRad(thetaDeg)
	dx, dy := math32.Cos(theta), math32.Sin(theta)
	// normal is perpendicular to the direction vector (dx, dy)
	a, b = -dy, dx
	norm := math32.Sqrt(a*a + b*b)
	a, b = a/norm, b/norm
	c = -(a*p0.X + b*p0.Y)
	return a, b, c
}

func normalizedDistance(a, b, c float32, p math32.Vector2, height, width int) float32 {

	d := math32.Abs(a*p.X + b*p.Y + c)
	diag := math32.Sqrt(float32(height*height + width*width))
	return d / diag
}

// PlaneLineFold adds a fixed perturbation vector to points near a line,
// with a reciprocal falloff that peaks at 1 on the line.
type PlaneLineFold struct {
	Point       math32.Vector2
	Direction   float32
	PerturbVec  math32.Vector3
	Alpha       float32
	Height      int
	Width       int
}

// Lift implements Strategy.
func (f PlaneLineFold) Lift(points []math32.Vector2) []math32.Vector3 {

	a, b, c := lineCoeffs(f.Point, f.Direction)
	out := make([]math32.Vector3, len(points))
	for i, p := range points {
		d := normalizedDistance(a, b, c, p, f.Height, f.Width)
		w := f.Alpha / (d + f.Alpha)
		out[i] = math32.Vector3{
			X: p.X + w*f.PerturbVec.X,
			Y: p.Y + w*f.PerturbVec.Y,
			Z: 0 + w*f.PerturbVec.Z,
		}
	}
	return out
}

// PlaneLineCurve produces a saddle/dome shape along a line: weight decays
// as 1 - d^alpha, clamped to be non-negative.
type PlaneLineCurve struct {
	Point      math32.Vector2
	Direction  float32
	PerturbVec math32.Vector3
	Alpha      float32
	Height     int
	Width      int
}

// Lift implements Strategy.
func (f PlaneLineCurve) Lift(points []math32.Vector2) []math32.Vector3 {

	a, b, c := lineCoeffs(f.Point, f.Direction)
	out := make([]math32.Vector3, len(points))
	for i, p := range points {
		d := normalizedDistance(a, b, c, p, f.Height, f.Width)
		w := 1 - math32.Pow(d, f.Alpha)
		if w < 0 {
			w = 0
		}
		out[i] = math32.Vector3{
			X: p.X + w*f.PerturbVec.X,
			Y: p.Y + w*f.PerturbVec.Y,
			Z: 0 + w*f.PerturbVec.Z,
		}
	}
	return out
}
