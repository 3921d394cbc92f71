package affine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/math32"
)

func TestNewShearHori_IdentityAtZero(t *testing.T) {

	st, err := NewShearHori(0, 100, 200)
	assert.NoError(t, err)
	assert.Nil(t, st)
}

func TestNewShearHori_RejectsBoundaryAngles(t *testing.T) {

	for _, angle := range []int{-90, 90, 91, -91} {
		st, err := NewShearHori(angle, 100, 200)
		assert.Errorf(t, err, "angle %d should be rejected", angle)
		assert.Nil(t, st)
	}
}

func TestNewShearVert_RejectsBoundaryAngles(t *testing.T) {

	for _, angle := range []int{-90, 90} {
		st, err := NewShearVert(angle, 100, 200)
		assert.Error(t, err)
		assert.Nil(t, st)
	}
}

func TestNewRotate_IdentityAtZero(t *testing.T) {

	for _, angle := range []int{0, 360, -360} {
		st, err := NewRotate(angle, 50, 80)
		assert.NoError(t, err)
		assert.Nil(t, st)
	}
}

func TestNewRotate_90DegreesSwapsCanvasDims(t *testing.T) {

	st, err := NewRotate(90, 50, 80)
	assert.NoError(t, err)
	assert.NotNil(t, st)
	assert.Equal(t, 80, st.DstH)
	assert.Equal(t, 50, st.DstW)
}

func TestNewSkewHori_IdentityAtZero(t *testing.T) {

	st, err := NewSkewHori(0, 100, 200)
	assert.NoError(t, err)
	assert.Nil(t, st)
}

func TestNewSkewHori_RejectsOutOfRangeRatio(t *testing.T) {

	for _, ratio := range []float32{-1, 1, 1.5, -2} {
		st, err := NewSkewHori(ratio, 100, 200)
		assert.Error(t, err)
		assert.Nil(t, st)
	}
}

func TestWarpPoint_NilStateIsIdentity(t *testing.T) {

	p := geom.Point{X: 7, Y: 13}
	assert.Equal(t, p, WarpPoint(nil, p))
}

func TestWarpPoints_PreservesOrder(t *testing.T) {

	st, err := NewRotate(90, 50, 80)
	assert.NoError(t, err)

	pts := geom.PointList{{X: 0, Y: 0}, {X: 79, Y: 0}, {X: 0, Y: 49}}
	warped := WarpPoints(st, pts)
	assert.Len(t, warped, len(pts))
}

func TestWarpPolygons_AgreesWithWarpPolygonPerPolygon(t *testing.T) {

	st, err := NewShearHori(30, 100, 150)
	assert.NoError(t, err)

	pg1 := geom.NewPolygon(geom.PointList{{X: 1, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: 10}})
	pg2 := geom.NewPolygon(geom.PointList{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}})

	batched := WarpPolygons(st, []geom.Polygon{pg1, pg2})
	individually := []geom.Polygon{WarpPolygon(st, pg1), WarpPolygon(st, pg2)}

	assert.Equal(t, individually, batched)
}

func TestSolveHomography_IdentityQuadRoundTrips(t *testing.T) {

	quad := [4]math32.Vector2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	m, err := SolveHomography(quad, quad)
	assert.NoError(t, err)

	x, y, ok := applyPersp(m, 5, 5)
	assert.True(t, ok)
	assert.InDelta(t, 5, x, 1e-3)
	assert.InDelta(t, 5, y, 1e-3)
}
