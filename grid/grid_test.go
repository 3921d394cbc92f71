package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/project"
)

func TestCreateSourceGrid_CoversCorners(t *testing.T) {

	g := CreateSourceGrid(101, 201, 40)
	assert.GreaterOrEqual(t, g.Rows, 2)
	assert.GreaterOrEqual(t, g.Cols, 2)

	tl := g.At(0, 0)
	br := g.At(g.Rows-1, g.Cols-1)
	assert.Equal(t, math32.Vector2{X: 0, Y: 0}, tl)
	assert.Equal(t, math32.Vector2{X: 200, Y: 100}, br)
}

func TestCreateSourceGrid_LargeStepCollapsesToTwoByTwo(t *testing.T) {

	g := CreateSourceGrid(10, 10, 1000)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Cols)
}

func TestProjectGrid_IdentityProjectorLeavesOriginUnshifted(t *testing.T) {

	src := CreateSourceGrid(50, 50, 10)
	identity := project.Func(func(p math32.Vector2) math32.Vector2 { return p })

	dst, shiftX, shiftY := ProjectGrid(src, identity)
	assert.Equal(t, float32(0), shiftX)
	assert.Equal(t, float32(0), shiftY)
	assert.Equal(t, src.Points, dst.Points)
}

func TestProjectGrid_NormalizesNegativeOffset(t *testing.T) {

	src := CreateSourceGrid(20, 20, 10)
	shiftProj := project.Func(func(p math32.Vector2) math32.Vector2 {
		return math32.Vector2{X: p.X - 5, Y: p.Y - 5}
	})

	dst, shiftX, shiftY := ProjectGrid(src, shiftProj)
	assert.Equal(t, float32(-5), shiftX)
	assert.Equal(t, float32(-5), shiftY)

	minX, minY := dst.Points[0].X, dst.Points[0].Y
	for _, p := range dst.Points {
		assert.GreaterOrEqual(t, p.X, minX-1e-5)
		assert.GreaterOrEqual(t, p.Y, minY-1e-5)
	}
	assert.InDelta(t, 0, minX, 1e-5)
	assert.InDelta(t, 0, minY, 1e-5)
}

func TestGrid_TilesCount(t *testing.T) {

	g := CreateSourceGrid(30, 30, 10)
	tiles := g.Tiles()
	assert.Len(t, tiles, (g.Rows-1)*(g.Cols-1))
}

func TestGrid_BorderPolygonIsClosedWalk(t *testing.T) {

	g := CreateSourceGrid(30, 40, 10)
	border := g.BorderPolygon()

	expected := 2*g.Rows + 2*g.Cols - 4
	assert.Len(t, border, expected)
}

func TestGrid_RescaleToMatchesTargetExtent(t *testing.T) {

	g := CreateSourceGrid(20, 40, 10)
	rescaled, rx, ry := g.RescaleTo(100, 200)

	h, w := rescaled.Extent()
	assert.Equal(t, 100, h)
	assert.Equal(t, 200, w)
	assert.Greater(t, rx, float32(0))
	assert.Greater(t, ry, float32(0))
}
