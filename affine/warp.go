package affine

import (
	"golang.org/x/image/math/f64"

	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/raster"
)

// mapForward maps a source-space (x, y) point to destination space through
// s, which must be non-nil.
func mapForward(s *State, x, y float32) (float32, float32, bool) {

	if s.Aff != nil {
		dx, dy := applyAff(s.Aff, x, y)
		return dx, dy, true
	}
	return applyPersp(s.Persp, x, y)
}

// WarpPoint maps a single point through s. A nil state is the identity.
func WarpPoint(s *State, p geom.Point) geom.Point {

	if s == nil {
		return p
	}
	dx, dy, ok := mapForward(s, float32(p.X), float32(p.Y))
	if !ok {
		return p
	}
	return geom.NewPoint(dx, dy)
}

// WarpPoints maps every point in the list through s, preserving order.
func WarpPoints(s *State, pts geom.PointList) geom.PointList {

	out := make(geom.PointList, len(pts))
	for i, p := range pts {
		out[i] = WarpPoint(s, p)
	}
	return out
}

// WarpPolygon maps a polygon's vertices through s.
func WarpPolygon(s *State, pg geom.Polygon) geom.Polygon {

	return geom.NewPolygon(WarpPoints(s, pg.Points))
}

// WarpPolygons maps multiple polygons by flattening every vertex into one
// batch, warping once, then re-splitting by the original per-polygon point
// counts. WarpPoints maps each point independently of the others, so a
// vertex gets the same result here as through WarpPolygon.
func WarpPolygons(s *State, pgs []geom.Polygon) []geom.Polygon {

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

	warped := WarpPoints(s, flat)

	out := make([]geom.Polygon, len(pgs))
	offset := 0
	for i, n := range counts {
		out[i] = geom.NewPolygon(warped[offset : offset+n])
		offset += n
	}
	return out
}

// BilinearAt samples get(y, x) bilinearly at continuous coordinate (sx, sy),
// clipping the integer neighbor coordinates to [0, w-1] x [0, h-1] per the
// OutOfBounds policy (clip silently, not an error). Exported so the tile
// blender shares this exact sampling formula.
func BilinearAt(get func(y, x int) float32, h, w int, sx, sy float32) float32 {

	x0 := int(math32.Floor(sx))
	y0 := int(math32.Floor(sy))
	x1 := x0 + 1
	y1 := y0 + 1
	t := sy - float32(y0)
	u := sx - float32(x0)

	x0 = math32.ClampInt(x0, 0, w-1)
	x1 = math32.ClampInt(x1, 0, w-1)
	y0 = math32.ClampInt(y0, 0, h-1)
	y1 = math32.ClampInt(y1, 0, h-1)

	v00 := get(y0, x0)
	v01 := get(y1, x0)
	v10 := get(y0, x1)
	v11 := get(y1, x1)

	return (1-u)*((1-t)*v00+t*v01) + u*((1-t)*v10+t*v11)
}

// WarpImage forward-warps img through s, producing a fresh image of size
// (s.DstH, s.DstW) and the same Kind. Destination pixels with no valid
// inverse-mapped source coordinate, or whose source coordinate falls
// outside [0, w-1] x [0, h-1], are left at zero.
func WarpImage(s *State, img *raster.Image) *raster.Image {

	if s == nil {
		return img.Clone()
	}

	invAff, invPersp, err := s.inverse()
	out := raster.NewImage(s.DstH, s.DstW, img.Kind)
	if err != nil {
		return out
	}

	h, w := img.Height, img.Width
	for dy := 0; dy < s.DstH; dy++ {
		for dx := 0; dx < s.DstW; dx++ {
			sx, sy, ok := inverseMap(invAff, invPersp, float32(dx), float32(dy))
			if !ok {
				continue
			}
			if sx < 0 || sx > float32(w-1) || sy < 0 || sy > float32(h-1) {
				continue
			}
			for c := 0; c < img.Channels(); c++ {
				v := BilinearAt(func(y, x int) float32 { return img.At(y, x, c) }, h, w, sx, sy)
				out.Set(dy, dx, c, v)
			}
		}
	}
	return out
}

// WarpScoreMap forward-warps a ScoreMap through s the same way WarpImage
// does, without byte clipping.
func WarpScoreMap(s *State, sm *raster.ScoreMap) *raster.ScoreMap {

	if s == nil {
		return sm.Clone()
	}

	invAff, invPersp, err := s.inverse()
	out := raster.NewScoreMap(s.DstH, s.DstW)
	if err != nil {
		return out
	}

	h, w := sm.Height, sm.Width
	for dy := 0; dy < s.DstH; dy++ {
		for dx := 0; dx < s.DstW; dx++ {
			sx, sy, ok := inverseMap(invAff, invPersp, float32(dx), float32(dy))
			if !ok {
				continue
			}
			if sx < 0 || sx > float32(w-1) || sy < 0 || sy > float32(h-1) {
				continue
			}
			v := BilinearAt(func(y, x int) float32 { return sm.At(y, x) }, h, w, sx, sy)
			out.Set(dy, dx, v)
		}
	}
	return out
}

// WarpMask forward-warps a Mask the same way, producing a smooth bilinear
// ramp at edges rather than a hard 0/1 boundary; this is intentional and
// matches the image warp's resampling.
func WarpMask(s *State, m *raster.Mask) *raster.Mask {

	if s == nil {
		return m.Clone()
	}

	invAff, invPersp, err := s.inverse()
	out := raster.NewMask(s.DstH, s.DstW)
	if err != nil {
		return out
	}

	h, w := m.Height, m.Width
	for dy := 0; dy < s.DstH; dy++ {
		for dx := 0; dx < s.DstW; dx++ {
			sx, sy, ok := inverseMap(invAff, invPersp, float32(dx), float32(dy))
			if !ok {
				continue
			}
			if sx < 0 || sx > float32(w-1) || sy < 0 || sy > float32(h-1) {
				continue
			}
			v := BilinearAt(func(y, x int) float32 { return float32(m.At(y, x)) }, h, w, sx, sy)
			out.Set(dy, dx, uint8(math32.Clamp(math32.Round(v), 0, 255)))
		}
	}
	return out
}

// inverseMap maps a destination-space point back to source space using
// whichever of invAff/invPersp is non-nil.
func inverseMap(invAff *f64.Aff3, invPersp *math32.Matrix3, dx, dy float32) (float32, float32, bool) {

	if invAff != nil {
		x, y := applyAff(invAff, dx, dy)
		return x, y, true
	}
	return applyPersp(invPersp, dx, dy)
}

// ActiveMask marks the destination pixels a matrix warp actually produced:
// those whose inverse-mapped source coordinate (before border clipping)
// falls inside the source raster. A nil state (identity) produces an
// all-ones mask of the source shape.
func ActiveMask(s *State, srcH, srcW int) *raster.Mask {

	if s == nil {
		out := raster.NewMask(srcH, srcW)
		for i := range out.Values {
			out.Values[i] = 1
		}
		return out
	}

	invAff, invPersp, err := s.inverse()
	out := raster.NewMask(s.DstH, s.DstW)
	if err != nil {
		return out
	}

	for dy := 0; dy < s.DstH; dy++ {
		for dx := 0; dx < s.DstW; dx++ {
			sx, sy, ok := inverseMap(invAff, invPersp, float32(dx), float32(dy))
			if !ok {
				continue
			}
			if sx >= 0 && sx <= float32(srcW-1) && sy >= 0 && sy <= float32(srcH-1) {
				out.Set(dy, dx, 1)
			}
		}
	}
	return out
}
