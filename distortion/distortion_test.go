package distortion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/raster"
)

func TestRotateConfig_IdentityAngleReturnsIdentityState(t *testing.T) {

	shape := Shape{Height: 40, Width: 60}
	st, err := BuildState(RotateConfig{Angle: 0}, shape)
	assert.NoError(t, err)

	p := geom.Point{X: 5, Y: 7}
	assert.Equal(t, p, st.WarpPoint(p))
}

func TestShearHoriConfig_RejectsInvalidAngle(t *testing.T) {

	shape := Shape{Height: 40, Width: 60}
	_, err := BuildState(ShearHoriConfig{Angle: 90}, shape)
	assert.Error(t, err)

	var derr *Error
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, InvalidConfig, derr.Kind)
}

func TestDistortPolygons_AgreesWithDistortPolygonPerPolygon(t *testing.T) {

	shape := Shape{Height: 50, Width: 50}
	cfg := RotateConfig{Angle: 45}

	pg1 := geom.NewPolygon(geom.PointList{{X: 1, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: 10}})
	pg2 := geom.NewPolygon(geom.PointList{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}})

	batched, st, err := DistortPolygons(cfg, shape, []geom.Polygon{pg1, pg2}, nil)
	assert.NoError(t, err)

	w1, _, err := DistortPolygon(cfg, shape, pg1, st)
	assert.NoError(t, err)
	w2, _, err := DistortPolygon(cfg, shape, pg2, st)
	assert.NoError(t, err)

	assert.Equal(t, []geom.Polygon{w1, w2}, batched)
}

func TestResolveState_ReusedAcrossLayersIsDeterministic(t *testing.T) {

	shape := Shape{Height: 30, Width: 30}
	cfg := ShearHoriConfig{Angle: 20}

	st, err := BuildState(cfg, shape)
	assert.NoError(t, err)

	img := raster.NewImage(shape.Height, shape.Width, raster.RGB)
	mask := raster.NewMask(shape.Height, shape.Width)

	w1, _, err := DistortImage(cfg, shape, img, st)
	assert.NoError(t, err)
	w2, _, err := DistortImage(cfg, shape, img, st)
	assert.NoError(t, err)
	assert.Equal(t, w1, w2)

	m1, _, err := DistortMask(cfg, shape, mask, st)
	assert.NoError(t, err)
	assert.Equal(t, shape.Height, m1.Height)
	// A horizontal shear widens the canvas: ceil(30 + 30*tan(20deg)) = 41.
	assert.Equal(t, 41, m1.Width)
}

func TestDistort_OneShotWarpsEveryRequestedLayer(t *testing.T) {

	shape := Shape{Height: 25, Width: 25}
	cfg := RotateConfig{Angle: 30}

	img := raster.NewImage(shape.Height, shape.Width, raster.RGB)
	mask := raster.NewMask(shape.Height, shape.Width)
	sm := raster.NewScoreMap(shape.Height, shape.Width)
	pgs := []geom.Polygon{geom.NewPolygon(geom.PointList{{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 5}})}

	res, st, err := Distort(cfg, shape, img, mask, sm, pgs)
	assert.NoError(t, err)
	assert.NotNil(t, res.Image)
	assert.NotNil(t, res.Mask)
	assert.NotNil(t, res.ScoreMap)
	assert.Len(t, res.Polygons, 1)
	assert.NotNil(t, res.ActiveMask)
	assert.NotNil(t, st)
}

func TestActiveImageMask_IdentityRotationCoversDestination(t *testing.T) {

	shape := Shape{Height: 20, Width: 20}
	cfg := RotateConfig{Angle: 0}

	m, _, err := ActiveImageMask(cfg, shape, nil)
	assert.NoError(t, err)
	for _, v := range m.Values {
		assert.Equal(t, uint8(1), v)
	}
}

func TestResolveConfig_ReplaysIdenticallyFromSavedState(t *testing.T) {

	gen := Generator[ShearHoriConfig](func(shape Shape, rng *rand.Rand) ShearHoriConfig {
		return ShearHoriConfig{Angle: rng.Intn(60) - 30}
	})

	shape := Shape{Height: 10, Width: 10}
	cfgA, state := ResolveConfig(gen, shape, nil)
	cfgB, _ := ResolveConfig(gen, shape, state)

	assert.Equal(t, cfgA, cfgB)
}

func TestSimilarityMlsConfig_RejectsTooFewHandlePoints(t *testing.T) {

	shape := Shape{Height: 30, Width: 30}
	cfg := SimilarityMlsConfig{
		SrcHandlePoints: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		DstHandlePoints: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		GridSize:        10,
	}
	_, err := cfg.BuildState(shape)
	assert.Error(t, err)
}

func TestSimilarityMlsConfig_IdentityHandlesWarpNonHandlePointsToThemselves(t *testing.T) {

	shape := Shape{Height: 100, Width: 100}
	handles := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}}
	cfg := SimilarityMlsConfig{
		SrcHandlePoints: handles,
		DstHandlePoints: handles,
		GridSize:        10,
	}

	probe := geom.PointList{{X: 37, Y: 62}, {X: 5, Y: 5}, {X: 80, Y: 20}}
	warped, _, err := DistortPoints(cfg, shape, probe, nil)
	assert.NoError(t, err)

	for i, p := range probe {
		assert.InDelta(t, p.X, warped[i].X, 1)
		assert.InDelta(t, p.Y, warped[i].Y, 1)
	}
}

func TestCameraCubicCurveConfig_CurvatureDisplacesPointsOffTheFlatPlane(t *testing.T) {

	shape := Shape{Height: 100, Width: 100}
	cameraModel := CameraModelConfig{RotationUnitVec: math32.Vector3{X: 1, Y: 0, Z: 0}, RotationTheta: 20}

	flatCfg := CameraCubicCurveConfig{CameraModel: cameraModel, GridSize: 10}
	curvedCfg := CameraCubicCurveConfig{
		CurveAlpha: 35, CurveBeta: 35, CurveScale: 1, CameraModel: cameraModel, GridSize: 10,
	}

	// Probe points are lifted together with the source grid, so they sit
	// on the same extent-normalized curve as the grid itself.
	probe := geom.PointList{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 90, Y: 50}}
	flat, _, err := DistortPoints(flatCfg, shape, probe, nil)
	assert.NoError(t, err)

	curved, _, err := DistortPoints(curvedCfg, shape, probe, nil)
	assert.NoError(t, err)

	assert.NotEqual(t, flat, curved)
}
