package distortion

import (
	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/mlog"
	"github.com/g3n/meshwarp/raster"
)

// BuildState resolves cfg against shape into a State, logging the
// transform's concrete type at debug level. This is the single place every
// public operation goes through to build state, so a precomputed state
// passed in by the caller always bypasses it.
func BuildState(cfg StateBuilder, shape Shape) (State, error) {

	st, err := cfg.BuildState(shape)
	if err != nil {
		mlog.Default.Error("distortion: state construction failed: %v", err)
		return nil, err
	}
	mlog.Default.Debug("distortion: built state for %T against %dx%d", cfg, shape.Height, shape.Width)
	return st, nil
}

// resolveState returns precomputed if non-nil, otherwise builds a fresh
// state from cfg. Every operation below funnels through this so "external
// callers may build state explicitly" suppresses a rebuild.
func resolveState(cfg StateBuilder, shape Shape, precomputed State) (State, error) {

	if precomputed != nil {
		return precomputed, nil
	}
	return BuildState(cfg, shape)
}

// DistortImage warps a raster image, preserving its Kind and dtype.
func DistortImage(cfg StateBuilder, shape Shape, img *raster.Image, precomputed State) (*raster.Image, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.WarpImage(img), st, nil
}

// DistortMask warps a binary mask, preserving its byte dtype.
func DistortMask(cfg StateBuilder, shape Shape, m *raster.Mask, precomputed State) (*raster.Mask, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.WarpMask(m), st, nil
}

// DistortScoreMap warps a score map, preserving its float dtype.
func DistortScoreMap(cfg StateBuilder, shape Shape, sm *raster.ScoreMap, precomputed State) (*raster.ScoreMap, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.WarpScoreMap(sm), st, nil
}

// DistortPoint warps a single point. Builds state once even though only
// one point is supplied, matching the "one state build, not per point"
// fallback contract.
func DistortPoint(cfg StateBuilder, shape Shape, p geom.Point, precomputed State) (geom.Point, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return geom.Point{}, nil, err
	}
	return st.WarpPoint(p), st, nil
}

// DistortPoints warps a batch of points, preserving order.
func DistortPoints(cfg StateBuilder, shape Shape, pts geom.PointList, precomputed State) (geom.PointList, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.WarpPoints(pts), st, nil
}

// DistortPolygon warps a single polygon's vertices.
func DistortPolygon(cfg StateBuilder, shape Shape, pg geom.Polygon, precomputed State) (geom.Polygon, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return geom.Polygon{}, nil, err
	}
	return st.WarpPolygon(pg), st, nil
}

// DistortPolygons warps a batch of polygons. The identity state copies each
// polygon and the matrix and grid states flatten vertices across polygons
// and map each vertex independently, so this agrees bit-for-bit with
// calling DistortPolygon once per polygon against the same state
// (invariant 2, order preservation).
func DistortPolygons(cfg StateBuilder, shape Shape, pgs []geom.Polygon, precomputed State) ([]geom.Polygon, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.WarpPolygons(pgs), st, nil
}

// ActiveImageMask returns the byte mask of pixels the warp actually wrote,
// at the same size as the warped raster.
func ActiveImageMask(cfg StateBuilder, shape Shape, precomputed State) (*raster.Mask, State, error) {

	st, err := resolveState(cfg, shape, precomputed)
	if err != nil {
		return nil, nil, err
	}
	return st.ActiveImageMask(), st, nil
}

// Result bundles every layer a one-shot Distort call warped.
type Result struct {
	Image      *raster.Image
	Mask       *raster.Mask
	ScoreMap   *raster.ScoreMap
	Polygons   []geom.Polygon
	ActiveMask *raster.Mask
}

// Distort builds state exactly once and warps every supplied layer through
// it, per the state-reuse invariant: a single logical call never rebuilds
// state between layers.
func Distort(cfg StateBuilder, shape Shape, img *raster.Image, m *raster.Mask, sm *raster.ScoreMap, pgs []geom.Polygon) (Result, State, error) {

	st, err := BuildState(cfg, shape)
	if err != nil {
		return Result{}, nil, err
	}

	var res Result
	if img != nil {
		res.Image = st.WarpImage(img)
	}
	if m != nil {
		res.Mask = st.WarpMask(m)
	}
	if sm != nil {
		res.ScoreMap = st.WarpScoreMap(sm)
	}
	if pgs != nil {
		res.Polygons = st.WarpPolygons(pgs)
	}
	res.ActiveMask = st.ActiveImageMask()
	return res, st, nil
}
