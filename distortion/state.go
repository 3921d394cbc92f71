package distortion

import (
	"github.com/g3n/meshwarp/affine"
	"github.com/g3n/meshwarp/blend"
	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/grid"
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/project"
	"github.com/g3n/meshwarp/raster"
)

// State is the precomputed, immutable artifact every transform builds
// once and reuses across every label layer: a matrix-plus-canvas for the
// closed-form transforms, or a source/destination grid pair plus
// projector for the mesh-based ones. Implementations keep no reference to
// any caller-supplied raster.
type State interface {
	WarpImage(*raster.Image) *raster.Image
	WarpScoreMap(*raster.ScoreMap) *raster.ScoreMap
	WarpMask(*raster.Mask) *raster.Mask
	ActiveImageMask() *raster.Mask
	WarpPoint(geom.Point) geom.Point
	WarpPoints(geom.PointList) geom.PointList
	WarpPolygon(geom.Polygon) geom.Polygon
	WarpPolygons([]geom.Polygon) []geom.Polygon
}

// identityState is the complete passthrough used when a closed-form
// config resolves to the null/identity matrix (e.g. shear angle 0, skew
// ratio 0, rotate angle 0 mod 360).
type identityState struct {
	height int
	width  int
}

func (s identityState) WarpImage(img *raster.Image) *raster.Image         { return img.Clone() }
func (s identityState) WarpScoreMap(sm *raster.ScoreMap) *raster.ScoreMap { return sm.Clone() }
func (s identityState) WarpMask(m *raster.Mask) *raster.Mask              { return m.Clone() }
func (s identityState) WarpPoint(p geom.Point) geom.Point                 { return p }
func (s identityState) WarpPoints(pts geom.PointList) geom.PointList      { return pts.Clone() }
func (s identityState) WarpPolygon(pg geom.Polygon) geom.Polygon         { return pg.Clone() }

func (s identityState) WarpPolygons(pgs []geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, len(pgs))
	for i, pg := range pgs {
		out[i] = pg.Clone()
	}
	return out
}

func (s identityState) ActiveImageMask() *raster.Mask {
	m := raster.NewMask(s.height, s.width)
	for i := range m.Values {
		m.Values[i] = 1
	}
	return m
}

// matrixState wraps an affine.State for the five closed-form transforms.
type matrixState struct {
	aff  *affine.State
	srcH int
	srcW int
}

func (s *matrixState) WarpImage(img *raster.Image) *raster.Image         { return affine.WarpImage(s.aff, img) }
func (s *matrixState) WarpScoreMap(sm *raster.ScoreMap) *raster.ScoreMap { return affine.WarpScoreMap(s.aff, sm) }
func (s *matrixState) WarpMask(m *raster.Mask) *raster.Mask              { return affine.WarpMask(s.aff, m) }
func (s *matrixState) ActiveImageMask() *raster.Mask                    { return affine.ActiveMask(s.aff, s.srcH, s.srcW) }
func (s *matrixState) WarpPoint(p geom.Point) geom.Point                 { return affine.WarpPoint(s.aff, p) }
func (s *matrixState) WarpPoints(pts geom.PointList) geom.PointList      { return affine.WarpPoints(s.aff, pts) }
func (s *matrixState) WarpPolygon(pg geom.Polygon) geom.Polygon          { return affine.WarpPolygon(s.aff, pg) }
func (s *matrixState) WarpPolygons(pgs []geom.Polygon) []geom.Polygon    { return affine.WarpPolygons(s.aff, pgs) }

// gridState wraps the grid/projector pair shared by the three camera-based
// transforms and the MLS transform. shiftX/shiftY and rescaleX/rescaleY
// mirror exactly what grid.ProjectGrid/Grid.RescaleTo did when building
// dstGrid, so that arbitrary points (not just lattice points) land in the
// same destination space as the warped raster.
type gridState struct {
	srcGrid  *grid.Grid
	dstGrid  *grid.Grid
	proj     project.Projector
	shiftX   float32
	shiftY   float32
	rescaleX float32
	rescaleY float32
}

func (s *gridState) WarpImage(img *raster.Image) *raster.Image {
	return blend.Image(s.srcGrid, s.dstGrid, img)
}

func (s *gridState) WarpScoreMap(sm *raster.ScoreMap) *raster.ScoreMap {
	return blend.ScoreMap(s.srcGrid, s.dstGrid, sm)
}

func (s *gridState) WarpMask(m *raster.Mask) *raster.Mask {
	return blend.Mask(s.srcGrid, s.dstGrid, m)
}

func (s *gridState) ActiveImageMask() *raster.Mask {
	return blend.ActiveImageMask(s.dstGrid)
}

func (s *gridState) mapPoint(v math32.Vector2) math32.Vector2 {

	d := s.proj.Project(v)
	d.X = (d.X - s.shiftX) * s.rescaleX
	d.Y = (d.Y - s.shiftY) * s.rescaleY
	return d
}

func (s *gridState) WarpPoint(p geom.Point) geom.Point {
	return geom.FromVec2(s.mapPoint(p.Vec2()))
}

func (s *gridState) WarpPoints(pts geom.PointList) geom.PointList {

	vecs := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		vecs[i] = p.Vec2()
	}
	projected := project.ProjectAll(s.proj, vecs)

	out := make(geom.PointList, len(pts))
	for i, d := range projected {
		d.X = (d.X - s.shiftX) * s.rescaleX
		d.Y = (d.Y - s.shiftY) * s.rescaleY
		out[i] = geom.FromVec2(d)
	}
	return out
}

func (s *gridState) WarpPolygon(pg geom.Polygon) geom.Polygon {
	return geom.NewPolygon(s.WarpPoints(pg.Points))
}

// WarpPolygons flattens every polygon's vertices into one batch before
// projecting, for the same bit-exact-regardless-of-batching reason
// affine.WarpPolygons flattens: distort_polygon and distort_polygons must
// agree on shared vertices.
func (s *gridState) WarpPolygons(pgs []geom.Polygon) []geom.Polygon {

	counts := make([]int, len(pgs))
	total := 0
	for i, pg := range pgs {
		counts[i] = len(pg.Points)
		total += counts[i]
	}
	flat := make(geom.PointList, 0, total)
	for _, pg := range pgs {
		flat = append(flat, pg.Points...)
	}
	warped := s.WarpPoints(flat)

	out := make([]geom.Polygon, len(pgs))
	offset := 0
	for i, n := range counts {
		out[i] = geom.NewPolygon(warped[offset : offset+n])
		offset += n
	}
	return out
}
