package distortion

import (
	"errors"

	"github.com/g3n/meshwarp/camera"
	"github.com/g3n/meshwarp/elevation"
	"github.com/g3n/meshwarp/grid"
	"github.com/g3n/meshwarp/math32"
)

// CameraModelConfig is the pinhole camera's own configuration, embedded by
// every camera-based transform rather than exposed as a transform of its
// own: a camera has nothing to warp without an elevation strategy lifting
// the source plane into 3D first.
type CameraModelConfig struct {
	RotationUnitVec math32.Vector3
	RotationTheta   float32
	PrincipalPoint  *math32.Vector2
	FocalLength     *float32
	CameraDistance  *float32
}

func (c CameraModelConfig) toCameraConfig() camera.Config {
	return camera.Config{
		RotationUnitVec: c.RotationUnitVec,
		RotationTheta:   c.RotationTheta,
		PrincipalPoint:  c.PrincipalPoint,
		FocalLength:     c.FocalLength,
		CameraDistance:  c.CameraDistance,
	}
}

// buildCameraGridState is the shared grid-construction path for all three
// camera-based transforms: discretize the source, lift it with strategy,
// build the camera model from the lifted points (so auto camera-distance
// sees the real elevation), project the lattice, and normalize the result
// to the origin with rescale_as_src=false.
func buildCameraGridState(shape Shape, gridSize int, cm CameraModelConfig, strategy elevation.Strategy) (State, error) {

	if gridSize <= 0 {
		return nil, invalidConfig("CameraGrid", errors.New("grid_size must be positive"))
	}

	srcGrid := grid.CreateSourceGrid(shape.Height, shape.Width, gridSize)
	lifted := strategy.Lift(srcGrid.Points)

	model := camera.NewModel(cm.toCameraConfig(), shape.Height, shape.Width, lifted)
	proj := &cameraProjector{model: model, strategy: strategy, srcPoints: srcGrid.Points}

	dstGrid, shiftX, shiftY := grid.ProjectGrid(srcGrid, proj)
	return &gridState{
		srcGrid: srcGrid, dstGrid: dstGrid, proj: proj,
		shiftX: shiftX, shiftY: shiftY, rescaleX: 1, rescaleY: 1,
	}, nil
}

// cameraProjector implements project.BulkProjector over a camera model and
// an elevation strategy. Strategies like CubicCurve normalize by the
// extent of the batch they lift, which collapses to zero for a singleton,
// so every batch is lifted together with the source grid's points and only
// the requested points' results are kept. A grid projection, a WarpPoints
// call and a single Project call therefore see the same elevation.
type cameraProjector struct {
	model     *camera.Model
	strategy  elevation.Strategy
	srcPoints []math32.Vector2
}

func (p *cameraProjector) Project(v math32.Vector2) math32.Vector2 {
	return p.ProjectAll([]math32.Vector2{v})[0]
}

func (p *cameraProjector) ProjectAll(pts []math32.Vector2) []math32.Vector2 {
	all := append(append(make([]math32.Vector2, 0, len(p.srcPoints)+len(pts)), p.srcPoints...), pts...)
	lifted := p.strategy.Lift(all)[len(p.srcPoints):]
	return p.model.Project3D(lifted)
}

// CameraCubicCurveConfig rolls the source plane into an S- or U-shaped
// surface before projecting it through the pinhole camera.
type CameraCubicCurveConfig struct {
	CurveAlpha     float32
	CurveBeta      float32
	CurveDirection float32
	CurveScale     float32
	CameraModel    CameraModelConfig
	GridSize       int
}

func (c CameraCubicCurveConfig) BuildState(shape Shape) (State, error) {

	strategy := elevation.CubicCurve{
		Alpha: c.CurveAlpha, Beta: c.CurveBeta, Direction: c.CurveDirection, Scale: c.CurveScale,
	}
	return buildCameraGridState(shape, c.GridSize, c.CameraModel, strategy)
}

// CameraPlaneLineFoldConfig folds the source plane along a line with a
// reciprocal falloff before projection.
type CameraPlaneLineFoldConfig struct {
	FoldPoint      math32.Vector2
	FoldDirection  float32
	FoldPerturbVec math32.Vector3
	FoldAlpha      float32
	CameraModel    CameraModelConfig
	GridSize       int
}

func (c CameraPlaneLineFoldConfig) BuildState(shape Shape) (State, error) {

	strategy := elevation.PlaneLineFold{
		Point: c.FoldPoint, Direction: c.FoldDirection, PerturbVec: c.FoldPerturbVec,
		Alpha: c.FoldAlpha, Height: shape.Height, Width: shape.Width,
	}
	return buildCameraGridState(shape, c.GridSize, c.CameraModel, strategy)
}

// CameraPlaneLineCurveConfig curves the source plane along a line with a
// power-law falloff before projection.
type CameraPlaneLineCurveConfig struct {
	CurvePoint      math32.Vector2
	CurveDirection  float32
	CurvePerturbVec math32.Vector3
	CurveAlpha      float32
	CameraModel     CameraModelConfig
	GridSize        int
}

func (c CameraPlaneLineCurveConfig) BuildState(shape Shape) (State, error) {

	strategy := elevation.PlaneLineCurve{
		Point: c.CurvePoint, Direction: c.CurveDirection, PerturbVec: c.CurvePerturbVec,
		Alpha: c.CurveAlpha, Height: shape.Height, Width: shape.Width,
	}
	return buildCameraGridState(shape, c.GridSize, c.CameraModel, strategy)
}
