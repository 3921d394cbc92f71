package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/grid"
	"github.com/g3n/meshwarp/raster"
)

func TestImage_IdenticalGridsIsApproximatelyIdentity(t *testing.T) {

	srcGrid := grid.CreateSourceGrid(20, 20, 5)
	dstGrid := grid.CreateSourceGrid(20, 20, 5)

	src := raster.NewImage(20, 20, raster.Grayscale)
	src.Set(10, 10, 0, 200)

	out := Image(srcGrid, dstGrid, src)
	assert.Equal(t, src.Height, out.Height)
	assert.Equal(t, src.Width, out.Width)
	assert.InDelta(t, 200, out.At(10, 10, 0), 1)
}

func TestActiveImageMask_MarksEveryDestinationPixelForFullGrid(t *testing.T) {

	dstGrid := grid.CreateSourceGrid(16, 16, 4)
	m := ActiveImageMask(dstGrid)

	h, w := dstGrid.Extent()
	assert.Equal(t, h, m.Height)
	assert.Equal(t, w, m.Width)
	assert.Equal(t, uint8(1), m.At(h/2, w/2))
}
