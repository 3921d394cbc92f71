package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/geom"
)

func TestImage_SetGetRoundTripsByteKind(t *testing.T) {

	img := NewImage(4, 4, RGB)
	img.Set(1, 2, 0, 130)
	assert.Equal(t, float32(130), img.At(1, 2, 0))
}

func TestImage_SetClipsByteKindToRange(t *testing.T) {

	img := NewImage(2, 2, Grayscale)
	img.Set(0, 0, 0, 400)
	assert.Equal(t, float32(255), img.At(0, 0, 0))

	img.Set(0, 1, 0, -10)
	assert.Equal(t, float32(0), img.At(0, 1, 0))
}

func TestImage_GCNKindStoresFloatsVerbatim(t *testing.T) {

	img := NewImage(2, 2, RGBGCN)
	img.Set(0, 0, 0, -3.5)
	assert.Equal(t, float32(-3.5), img.At(0, 0, 0))
}

func TestImage_CloneIsIndependent(t *testing.T) {

	img := NewImage(2, 2, RGB)
	img.Set(0, 0, 0, 50)
	clone := img.Clone()
	clone.Set(0, 0, 0, 200)

	assert.Equal(t, float32(50), img.At(0, 0, 0))
	assert.Equal(t, float32(200), clone.At(0, 0, 0))
}

func TestConvertKind_RGBToGrayscaleToRGBRoundTripsApproximately(t *testing.T) {

	img := NewImage(1, 1, RGB)
	img.Set(0, 0, 0, 100)
	img.Set(0, 0, 1, 100)
	img.Set(0, 0, 2, 100)

	gray, err := ConvertKind(img, Grayscale)
	assert.NoError(t, err)
	assert.InDelta(t, 100, gray.At(0, 0, 0), 1)

	rgb, err := ConvertKind(gray, RGB)
	assert.NoError(t, err)
	assert.Equal(t, gray.At(0, 0, 0), rgb.At(0, 0, 0))
	assert.Equal(t, gray.At(0, 0, 0), rgb.At(0, 0, 1))
	assert.Equal(t, gray.At(0, 0, 0), rgb.At(0, 0, 2))
}

func TestConvertKind_RGBToHSVToRGBRoundTrips(t *testing.T) {

	img := NewImage(1, 1, RGB)
	img.Set(0, 0, 0, 200)
	img.Set(0, 0, 1, 50)
	img.Set(0, 0, 2, 10)

	hsv, err := ConvertKind(img, HSV)
	assert.NoError(t, err)

	back, err := ConvertKind(hsv, RGB)
	assert.NoError(t, err)

	for c := 0; c < 3; c++ {
		assert.InDelta(t, img.At(0, 0, c), back.At(0, 0, c), 1.5)
	}
}

func TestConvertKind_SameBaseKindJustChangesGCNNess(t *testing.T) {

	img := NewImage(1, 1, RGB)
	img.Set(0, 0, 0, 77)

	gcn, err := ConvertKind(img, RGBGCN)
	assert.NoError(t, err)
	assert.Equal(t, float32(77), gcn.At(0, 0, 0))
	assert.True(t, gcn.Kind.IsGCN())
}

func TestConvertKind_UnsupportedPairReturnsError(t *testing.T) {

	img := NewImage(1, 1, HSV)
	_, err := ConvertKind(img, Grayscale)
	assert.Error(t, err)
}

func TestMask_FromPolygonMarksInterior(t *testing.T) {

	pg := geom.NewPolygon(geom.PointList{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}})
	m := FromPolygon(pg, 12, 12)

	assert.Equal(t, uint8(1), m.At(5, 5))
	assert.Equal(t, uint8(0), m.At(0, 0))
}

func TestMask_FromPolygonsUnionVsIntersection(t *testing.T) {

	pgA := geom.NewPolygon(geom.PointList{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	pgB := geom.NewPolygon(geom.PointList{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}})

	union := FromPolygons([]geom.Polygon{pgA, pgB}, 20, 20, Union)
	intersection := FromPolygons([]geom.Polygon{pgA, pgB}, 20, 20, Intersection)

	assert.Equal(t, uint8(1), union.At(1, 1))
	assert.Equal(t, uint8(0), intersection.At(1, 1))
	assert.Equal(t, uint8(1), intersection.At(7, 7))
}

func TestScoreMap_RescaleToPreservesCorners(t *testing.T) {

	sm := NewScoreMap(4, 4)
	sm.Set(0, 0, 1)
	sm.Set(3, 3, 9)

	rescaled := sm.RescaleTo(8, 8)
	assert.Equal(t, float32(1), rescaled.At(0, 0))
	assert.Equal(t, float32(9), rescaled.At(7, 7))
}
