package elevation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/math32"
)

func TestCubicCurve_ZeroAnglesLeavesPlaneFlat(t *testing.T) {

	c := CubicCurve{Alpha: 0, Beta: 0, Direction: 0, Scale: 1}
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 50, Y: 10}, {X: 100, Y: 20}}

	lifted := c.Lift(pts)
	for i, p := range lifted {
		assert.Equal(t, pts[i].X, p.X)
		assert.Equal(t, pts[i].Y, p.Y)
		assert.Equal(t, float32(0), p.Z)
	}
}

func TestPlaneLineFold_PeaksOnTheLine(t *testing.T) {

	f := PlaneLineFold{
		Point: math32.Vector2{X: 50, Y: 50}, Direction: 0,
		PerturbVec: math32.Vector3{X: 0, Y: 0, Z: 10}, Alpha: 1,
		Height: 100, Width: 100,
	}

	onLine := f.Lift([]math32.Vector2{{X: 50, Y: 50}})
	farFromLine := f.Lift([]math32.Vector2{{X: 50, Y: 0}})

	assert.InDelta(t, 10, onLine[0].Z, 1e-3)
	assert.Less(t, farFromLine[0].Z, onLine[0].Z)
}

func TestPlaneLineCurve_WeightNeverNegative(t *testing.T) {

	f := PlaneLineCurve{
		Point: math32.Vector2{X: 0, Y: 0}, Direction: 0,
		PerturbVec: math32.Vector3{X: 0, Y: 0, Z: 5}, Alpha: 0.5,
		Height: 100, Width: 100,
	}

	lifted := f.Lift([]math32.Vector2{{X: 500, Y: 500}})
	assert.GreaterOrEqual(t, lifted[0].Z, float32(0))
}
