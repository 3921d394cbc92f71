package geom

// PointList is an ordered sequence of points. Order is meaningful and is
// preserved across every transform operation.
type PointList []Point

// NewPointListFromXY builds a PointList from flattened (x0, y0, x1, y1, ...)
// pairs, mirroring the original library's flatten_xy_pairs constructor.
func NewPointListFromXY(flat []int) PointList {

	if len(flat) == 0 || len(flat)%2 != 0 {
		panic("geom: flatten_xy_pairs must be non-empty and even-length")
	}
	points := make(PointList, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		points = append(points, Point{X: flat[i], Y: flat[i+1]})
	}
	return points
}

// Clone returns a deep copy of this point list.
func (pl PointList) Clone() PointList {

	out := make(PointList, len(pl))
	copy(out, pl)
	return out
}

// Clip clamps every point in the list to the given raster bounds.
func (pl PointList) Clip(width, height int) PointList {

	out := make(PointList, len(pl))
	for i, p := range pl {
		out[i] = p.Clip(width, height)
	}
	return out
}

// Rescale maps every point in the list from a (height, width) raster to a
// (rescaledHeight, rescaledWidth) raster.
func (pl PointList) Rescale(height, width, rescaledHeight, rescaledWidth int) PointList {

	out := make(PointList, len(pl))
	for i, p := range pl {
		out[i] = p.Rescale(height, width, rescaledHeight, rescaledWidth)
	}
	return out
}

// BoundingBox returns the smallest axis-aligned Box containing every point
// in the list. Panics on an empty list: a bounding box of nothing is
// undefined, and callers are expected to validate non-empty polygons at
// construction time.
func (pl PointList) BoundingBox() Box {

	if len(pl) == 0 {
		panic("geom: BoundingBox of empty point list")
	}
	b := Box{Up: pl[0].Y, Down: pl[0].Y, Left: pl[0].X, Right: pl[0].X}
	for _, p := range pl[1:] {
		if p.Y < b.Up {
			b.Up = p.Y
		}
		if p.Y > b.Down {
			b.Down = p.Y
		}
		if p.X < b.Left {
			b.Left = p.X
		}
		if p.X > b.Right {
			b.Right = p.X
		}
	}
	return b
}
