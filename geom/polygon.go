package geom

// Polygon is a non-empty ordered sequence of vertices with no implicit
// closing edge; callers that need the closing edge connect Points[len-1] to
// Points[0] explicitly.
type Polygon struct {
	Points PointList
}

// NewPolygon builds a Polygon from a point list, panicking if it is empty:
// an empty polygon is an InvalidConfig condition the caller must not reach
// (see distortion.Error).
func NewPolygon(points PointList) Polygon {

	if len(points) == 0 {
		panic("geom: polygon must be non-empty")
	}
	return Polygon{Points: points}
}

// Clone returns a deep copy of this polygon.
func (pg Polygon) Clone() Polygon {

	return Polygon{Points: pg.Points.Clone()}
}

// BoundingBox returns the smallest axis-aligned Box containing the polygon.
func (pg Polygon) BoundingBox() Box {

	return pg.Points.BoundingBox()
}

// BoundingBoxShifted returns the bounding box together with a copy of the
// polygon's points shifted so that the box's top-left corner sits at the
// origin — the layout `extract_rect_area`/`fill_mat_opt` need to rasterize a
// polygon into a small local mask instead of a full-image one.
func (pg Polygon) BoundingBoxShifted() (Box, PointList) {

	box := pg.BoundingBox()
	shifted := make(PointList, len(pg.Points))
	for i, p := range pg.Points {
		shifted[i] = Point{X: p.X - box.Left, Y: p.Y - box.Up}
	}
	return box, shifted
}

// Rescale maps every vertex from a (height, width) raster to a
// (rescaledHeight, rescaledWidth) raster.
func (pg Polygon) Rescale(height, width, rescaledHeight, rescaledWidth int) Polygon {

	return Polygon{Points: pg.Points.Rescale(height, width, rescaledHeight, rescaledWidth)}
}

// Clip clamps every vertex to the given raster bounds.
func (pg Polygon) Clip(width, height int) Polygon {

	return Polygon{Points: pg.Points.Clip(width, height)}
}
