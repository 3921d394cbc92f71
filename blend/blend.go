// Package blend implements the per-quadrilateral inverse-perspective tile
// blender: given a source grid and destination grid of identical shape, it
// forward-rasterizes every layer (image, score map, mask) by solving one
// small homography per tile and bilinearly sampling the source through it.
package blend

import (
	"github.com/g3n/meshwarp/affine"
	"github.com/g3n/meshwarp/grid"
	"github.com/g3n/meshwarp/math32"
	"github.com/g3n/meshwarp/raster"
)

// quadPixels enumerates the integer destination pixels (row, col) whose
// center lies inside the quad, clipped to [0, width) x [0, height). Uses
// the same scanline even-odd fill as raster.rasterizePolygon, duplicated
// here because the tile blender works in continuous destination-grid
// coordinates rather than geom.Polygon's integer pixel coordinates.
func quadPixels(q grid.Tile, width, height int) [][2]int {

	pts := [4]math32.Vector2{q.TL, q.TR, q.BR, q.BL}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	y0 := math32.ClampInt(int(math32.Floor(minY)), 0, height-1)
	y1 := math32.ClampInt(int(math32.Ceil(maxY)), 0, height-1)

	var out [][2]int
	for y := y0; y <= y1; y++ {
		fy := float32(y) + 0.5
		var crossings []float32
		for i := 0; i < 4; i++ {
			a := pts[i]
			b := pts[(i+1)%4]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
		if len(crossings) < 2 {
			continue
		}
		insertionSort(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := math32.ClampInt(int(math32.Round(crossings[i])), 0, width-1)
			x1 := math32.ClampInt(int(math32.Round(crossings[i+1]))-1, 0, width-1)
			for x := x0; x <= x1; x++ {
				out = append(out, [2]int{y, x})
			}
		}
	}
	return out
}

func insertionSort(s []float32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// tileSolve returns the per-tile inverse-perspective matrix M: Qd -> Qs, or
// ok=false for a degenerate (zero-area) tile, which the caller must skip
// entirely per the Degenerate error policy.
func tileSolve(src, dst grid.Tile) (m *math32.Matrix3, ok bool) {

	srcCorners := [4]math32.Vector2{src.TL, src.TR, src.BR, src.BL}
	dstCorners := [4]math32.Vector2{dst.TL, dst.TR, dst.BR, dst.BL}

	m, err := affine.SolveHomography(dstCorners, srcCorners)
	if err != nil {
		return nil, false
	}
	return m, true
}

// sampleDst maps a destination pixel (dx, dy) through tile matrix m back to
// source space, returning ok=false if the homogeneous weight is zero (the
// pixel is skipped, per the Degenerate divide-by-zero policy).
func sampleDst(m *math32.Matrix3, dx, dy float32) (sx, sy float32, ok bool) {

	v := math32.Vector3{X: dx, Y: dy, Z: 1}
	v.ApplyMatrix3(m)
	if v.Z == 0 {
		return 0, 0, false
	}
	return v.X / v.Z, v.Y / v.Z, true
}

// Image forward-rasterizes a source image through the (srcGrid, dstGrid)
// tile pairing. The destination canvas size is the derived extent of
// dstGrid. No pixel outside the destination border polygon is written.
func Image(srcGrid, dstGrid *grid.Grid, src *raster.Image) *raster.Image {

	dstH, dstW := dstGrid.Extent()
	out := raster.NewImage(dstH, dstW, src.Kind)

	srcTiles := srcGrid.Tiles()
	dstTiles := dstGrid.Tiles()
	channels := src.Channels()

	for i := range srcTiles {
		m, ok := tileSolve(srcTiles[i], dstTiles[i])
		if !ok {
			continue
		}
		for _, px := range quadPixels(dstTiles[i], dstW, dstH) {
			dy, dx := px[0], px[1]
			sx, sy, ok := sampleDst(m, float32(dx), float32(dy))
			if !ok {
				continue
			}
			sx = math32.Clamp(sx, 0, float32(src.Width-1))
			sy = math32.Clamp(sy, 0, float32(src.Height-1))
			for c := 0; c < channels; c++ {
				v := affine.BilinearAt(func(y, x int) float32 { return src.At(y, x, c) }, src.Height, src.Width, sx, sy)
				out.Set(dy, dx, c, v)
			}
		}
	}
	return out
}

// ScoreMap is Image's analogue for a single-channel float score map: same
// tile pairing, no byte clipping.
func ScoreMap(srcGrid, dstGrid *grid.Grid, src *raster.ScoreMap) *raster.ScoreMap {

	dstH, dstW := dstGrid.Extent()
	out := raster.NewScoreMap(dstH, dstW)

	srcTiles := srcGrid.Tiles()
	dstTiles := dstGrid.Tiles()

	for i := range srcTiles {
		m, ok := tileSolve(srcTiles[i], dstTiles[i])
		if !ok {
			continue
		}
		for _, px := range quadPixels(dstTiles[i], dstW, dstH) {
			dy, dx := px[0], px[1]
			sx, sy, ok := sampleDst(m, float32(dx), float32(dy))
			if !ok {
				continue
			}
			sx = math32.Clamp(sx, 0, float32(src.Width-1))
			sy = math32.Clamp(sy, 0, float32(src.Height-1))
			v := affine.BilinearAt(func(y, x int) float32 { return src.At(y, x) }, src.Height, src.Width, sx, sy)
			out.Set(dy, dx, v)
		}
	}
	return out
}

// Mask is Image's analogue for a binary mask. Bilinear sampling produces a
// smooth ramp at tile edges, matching the image blend's resampling and
// accepted as intentional (see raster.Mask).
func Mask(srcGrid, dstGrid *grid.Grid, src *raster.Mask) *raster.Mask {

	dstH, dstW := dstGrid.Extent()
	out := raster.NewMask(dstH, dstW)

	srcTiles := srcGrid.Tiles()
	dstTiles := dstGrid.Tiles()

	for i := range srcTiles {
		m, ok := tileSolve(srcTiles[i], dstTiles[i])
		if !ok {
			continue
		}
		for _, px := range quadPixels(dstTiles[i], dstW, dstH) {
			dy, dx := px[0], px[1]
			sx, sy, ok := sampleDst(m, float32(dx), float32(dy))
			if !ok {
				continue
			}
			sx = math32.Clamp(sx, 0, float32(src.Width-1))
			sy = math32.Clamp(sy, 0, float32(src.Height-1))
			v := affine.BilinearAt(func(y, x int) float32 { return float32(src.At(y, x)) }, src.Height, src.Width, sx, sy)
			out.Set(dy, dx, uint8(math32.Clamp(math32.Round(v), 0, 255)))
		}
	}
	return out
}

// ActiveImageMask rasterizes dstGrid's filled border polygon into a byte
// mask of the destination canvas size, marking the pixels the warp
// actually produced.
func ActiveImageMask(dstGrid *grid.Grid) *raster.Mask {

	dstH, dstW := dstGrid.Extent()
	out := raster.NewMask(dstH, dstW)

	border := dstGrid.BorderPolygon()
	minY, maxY := border[0].Y, border[0].Y
	for _, p := range border[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	y0 := math32.ClampInt(int(math32.Floor(minY)), 0, dstH-1)
	y1 := math32.ClampInt(int(math32.Ceil(maxY)), 0, dstH-1)

	n := len(border)
	for y := y0; y <= y1; y++ {
		fy := float32(y) + 0.5
		var crossings []float32
		for i := 0; i < n; i++ {
			a := border[i]
			b := border[(i+1)%n]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
		if len(crossings) < 2 {
			continue
		}
		insertionSort(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := math32.ClampInt(int(math32.Round(crossings[i])), 0, dstW-1)
			x1 := math32.ClampInt(int(math32.Round(crossings[i+1]))-1, 0, dstW-1)
			for x := x0; x <= x1; x++ {
				out.Set(y, x, 1)
			}
		}
	}
	return out
}
