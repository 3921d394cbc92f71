package distortion

import (
	"errors"

	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/grid"
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/mls"
)

// SimilarityMlsConfig drives a Moving-Least-Squares similarity warp from
// handle-point correspondences.
type SimilarityMlsConfig struct {
	SrcHandlePoints []geom.Point
	DstHandlePoints []geom.Point
	GridSize        int
	RescaleAsSrc    bool
}

func (c SimilarityMlsConfig) BuildState(shape Shape) (State, error) {

	if len(c.SrcHandlePoints) < 3 || len(c.SrcHandlePoints) != len(c.DstHandlePoints) {
		return nil, invalidConfig("SimilarityMls", errors.New("need >= 3 matching src/dst handle points"))
	}
	if c.GridSize <= 0 {
		return nil, invalidConfig("SimilarityMls", errors.New("grid_size must be positive"))
	}

	srcVecs := make([]math32.Vector2, len(c.SrcHandlePoints))
	dstVecs := make([]math32.Vector2, len(c.DstHandlePoints))
	for i, p := range c.SrcHandlePoints {
		srcVecs[i] = p.Vec2()
	}
	for i, p := range c.DstHandlePoints {
		dstVecs[i] = p.Vec2()
	}

	proj := mls.NewSimilarityProjector(srcVecs, dstVecs)
	srcGrid := grid.CreateSourceGrid(shape.Height, shape.Width, c.GridSize)
	rawDst, shiftX, shiftY := grid.ProjectGrid(srcGrid, proj)

	dstGrid := rawDst
	rescaleX, rescaleY := float32(1), float32(1)
	if c.RescaleAsSrc {
		dstGrid, rescaleX, rescaleY = rawDst.RescaleTo(shape.Height, shape.Width)
	}

	return &gridState{
		srcGrid: srcGrid, dstGrid: dstGrid, proj: proj,
		shiftX: shiftX, shiftY: shiftY, rescaleX: rescaleX, rescaleY: rescaleY,
	}, nil
}
