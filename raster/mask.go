package raster

import (
	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/math32"
)

// PolygonsMergeMode controls how overlapping polygons combine when
// rasterizing a Mask from more than one polygon.
type PolygonsMergeMode int

const (
	// Union sets a pixel if any polygon covers it.
	Union PolygonsMergeMode = iota
	// Distinct assigns each pixel to exactly one polygon; pixels covered by
	// more than one polygon are cleared, so overlaps vanish rather than
	// silently picking a winner.
	Distinct
	// Intersection sets a pixel only if every polygon covers it.
	Intersection
)

// Mask is a single-channel {0,1} raster marking polygon coverage.
type Mask struct {
	Height int
	Width  int
	Values []uint8
}

// NewMask allocates a zeroed mask.
func NewMask(height, width int) *Mask {

	return &Mask{Height: height, Width: width, Values: make([]uint8, height*width)}
}

func (m *Mask) index(y, x int) int { return y*m.Width + x }

// At returns 1 if (y, x) is covered, 0 otherwise.
func (m *Mask) At(y, x int) uint8 { return m.Values[m.index(y, x)] }

// Set marks (y, x) covered (v != 0) or uncovered.
func (m *Mask) Set(y, x int, v uint8) { m.Values[m.index(y, x)] = v }

// Shape returns (height, width).
func (m *Mask) Shape() (int, int) { return m.Height, m.Width }

// Clone returns a deep copy of this mask.
func (m *Mask) Clone() *Mask {

	out := &Mask{Height: m.Height, Width: m.Width}
	out.Values = append([]uint8(nil), m.Values...)
	return out
}

// FromPolygon rasterizes a single polygon into a (height, width) mask using
// the bounding-box-shifted local-mask layout from geom.Polygon, filling it
// with a scanline point-in-polygon test and then writing it back at the
// box's offset. This mirrors the original's extract_rect_area/fill_mat_opt
// pair: rasterize small, place once.
func FromPolygon(pg geom.Polygon, height, width int) *Mask {

	mask := NewMask(height, width)
	box, local := pg.BoundingBoxShifted()
	box = box.Clip(width, height)
	localMask := rasterizePolygon(local, box.Height(), box.Width())

	for ly := 0; ly < box.Height(); ly++ {
		gy := box.Up + ly
		for lx := 0; lx < box.Width(); lx++ {
			gx := box.Left + lx
			if localMask.At(ly, lx) != 0 {
				mask.Set(gy, gx, 1)
			}
		}
	}
	return mask
}

// FromPolygons rasterizes multiple polygons into one mask, combined
// according to mode.
func FromPolygons(pgs []geom.Polygon, height, width int, mode PolygonsMergeMode) *Mask {

	if len(pgs) == 0 {
		return NewMask(height, width)
	}

	counts := make([]int, height*width)
	for _, pg := range pgs {
		pm := FromPolygon(pg, height, width)
		for i, v := range pm.Values {
			if v != 0 {
				counts[i]++
			}
		}
	}

	out := NewMask(height, width)
	for i, c := range counts {
		switch mode {
		case Union:
			if c > 0 {
				out.Values[i] = 1
			}
		case Distinct:
			if c == 1 {
				out.Values[i] = 1
			}
		case Intersection:
			if c == len(pgs) {
				out.Values[i] = 1
			}
		}
	}
	return out
}

// rasterizePolygon fills a local (height, width) mask with a standard
// scanline even-odd point-in-polygon test over the polygon's edges.
func rasterizePolygon(points geom.PointList, height, width int) *Mask {

	mask := NewMask(height, width)
	n := len(points)
	if n < 3 {
		return mask
	}

	for y := 0; y < height; y++ {
		fy := float32(y) + 0.5
		var crossings []float32
		for i := 0; i < n; i++ {
			a := points[i]
			b := points[(i+1)%n]
			ay, by := float32(a.Y), float32(b.Y)
			if (ay <= fy && by > fy) || (by <= fy && ay > fy) {
				t := (fy - ay) / (by - ay)
				cx := float32(a.X) + t*float32(b.X-a.X)
				crossings = append(crossings, cx)
			}
		}
		if len(crossings) < 2 {
			continue
		}
		sortFloats(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := math32.ClampInt(int(math32.Round(crossings[i])), 0, width-1)
			x1 := math32.ClampInt(int(math32.Round(crossings[i+1]))-1, 0, width-1)
			for x := x0; x <= x1; x++ {
				mask.Set(y, x, 1)
			}
		}
	}
	return mask
}

func sortFloats(s []float32) {

	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
