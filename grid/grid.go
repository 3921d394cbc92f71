// Package grid implements the rectangular lattice of points that every
// mesh-based transform (camera projection, MLS) warps through: a source
// grid is discretized over the image at a configurable step, projected
// point-by-point into destination space, then normalized back to an
// origin-anchored canvas.
package grid

import (
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/project"
)

// Grid is a row-major MxN lattice of points. Within a source grid, rows
// are strictly increasing in y and columns strictly increasing in x; the
// top-left point is (0,0) and the bottom-right is (height-1,width-1). A
// destination grid need not be axis-aligned.
type Grid struct {
	Rows   int
	Cols   int
	Points []math32.Vector2
}

// NewGrid allocates a zeroed grid of the given shape.
func NewGrid(rows, cols int) *Grid {

	return &Grid{Rows: rows, Cols: cols, Points: make([]math32.Vector2, rows*cols)}
}

// At returns the point at (row, col).
func (g *Grid) At(row, col int) math32.Vector2 { return g.Points[row*g.Cols+col] }

// Set writes the point at (row, col).
func (g *Grid) Set(row, col int, p math32.Vector2) { g.Points[row*g.Cols+col] = p }

// steps builds an ascending step sequence over [0, extent-1], forcing the
// final entry to equal extent-1 exactly (replacing it if the natural step
// overshoots, appending it otherwise).
func steps(extent, step int) []int {

	if step < 1 {
		step = 1
	}
	var out []int
	for v := 0; v < extent-1; v += step {
		out = append(out, v)
	}
	if len(out) == 0 || out[len(out)-1] != extent-1 {
		out = append(out, extent-1)
	}
	return out
}

// CreateSourceGrid builds the MxN lattice over a (height, width) image at
// the given step, producing rows >= 2 and cols >= 2 (a step at least the
// larger of height/width collapses to a single 2x2 tile, per the grid-size
// boundary case).
func CreateSourceGrid(height, width, step int) *Grid {

	ys := steps(height, step)
	xs := steps(width, step)

	g := NewGrid(len(ys), len(xs))
	for r, y := range ys {
		for c, x := range xs {
			g.Set(r, c, math32.Vector2{X: float32(x), Y: float32(y)})
		}
	}
	return g
}

// ProjectGrid applies proj to every point of src (using its bulk form when
// available), re-packs the results into the same MxN shape, then
// normalizes the result so its minimum y and minimum x are both zero.
// Returns the projected grid and the (shiftX, shiftY) that were subtracted,
// matching the state's shift_amount field.
func ProjectGrid(src *Grid, proj project.Projector) (dst *Grid, shiftX, shiftY float32) {

	projected := project.ProjectAll(proj, src.Points)

	minX, minY := projected[0].X, projected[0].Y
	for _, p := range projected[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	dst = NewGrid(src.Rows, src.Cols)
	for i, p := range projected {
		dst.Points[i] = math32.Vector2{X: p.X - minX, Y: p.Y - minY}
	}
	return dst, minX, minY
}

// Extent returns the derived image extent of a grid: (max y + 1, max x + 1).
func (g *Grid) Extent() (height, width int) {

	maxX, maxY := g.Points[0].X, g.Points[0].Y
	for _, p := range g.Points[1:] {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return int(math32.Ceil(maxY)) + 1, int(math32.Ceil(maxX)) + 1
}

// RescaleTo scales every point of g so its extent matches (height, width):
// ry = (height-1)/(rawH-1), rx = (width-1)/(rawW-1). Rescaling is an
// explicit opt-in; grid-based camera transforms use unscaled normalization
// while MLS exposes the ratio for callers to apply to handle points
// identically.
func (g *Grid) RescaleTo(height, width int) (rescaled *Grid, rx, ry float32) {

	rawH, rawW := g.Extent()
	ry64, rx64 := 1.0, 1.0
	if rawH > 1 {
		ry64 = float64(height-1) / float64(rawH-1)
	}
	if rawW > 1 {
		rx64 = float64(width-1) / float64(rawW-1)
	}

	rescaled = NewGrid(g.Rows, g.Cols)
	for i, p := range g.Points {
		rescaled.Points[i] = math32.Vector2{X: float32(float64(p.X) * rx64), Y: float32(float64(p.Y) * ry64)}
	}
	return rescaled, float32(rx64), float32(ry64)
}

// Tile is one quadrilateral cell of the grid: its four corners in
// clockwise order (top-left, top-right, bottom-right, bottom-left).
type Tile struct {
	TL, TR, BR, BL math32.Vector2
}

// Tiles returns the (Rows-1)*(Cols-1) quad tiles formed by neighboring
// lattice points, in row-major order.
func (g *Grid) Tiles() []Tile {

	tiles := make([]Tile, 0, (g.Rows-1)*(g.Cols-1))
	for r := 0; r < g.Rows-1; r++ {
		for c := 0; c < g.Cols-1; c++ {
			tiles = append(tiles, Tile{
				TL: g.At(r, c),
				TR: g.At(r, c+1),
				BR: g.At(r+1, c+1),
				BL: g.At(r+1, c),
			})
		}
	}
	return tiles
}

// BorderPolygon returns the grid's outer boundary as a clockwise point
// sequence: the top row left-to-right, the right column top-to-bottom,
// the bottom row right-to-left, and the left column bottom-to-top.
func (g *Grid) BorderPolygon() []math32.Vector2 {

	var border []math32.Vector2
	for c := 0; c < g.Cols; c++ {
		border = append(border, g.At(0, c))
	}
	for r := 1; r < g.Rows; r++ {
		border = append(border, g.At(r, g.Cols-1))
	}
	for c := g.Cols - 2; c >= 0; c-- {
		border = append(border, g.At(g.Rows-1, c))
	}
	for r := g.Rows - 2; r >= 1; r-- {
		border = append(border, g.At(r, 0))
	}
	return border
}
