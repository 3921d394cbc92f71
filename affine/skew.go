package affine

import "github.com/g3n/meshwarp/math32"

// NewSkewHori builds the state for a horizontal trapezoidal skew: the
// output keeps the source's size, but one vertical edge is symmetrically
// shrunk by round(height*|ratio|), split as shrinkUp = shrink/2,
// shrinkDown = shrink - shrinkUp. The left edge shrinks for ratio<0, the
// right edge for ratio>0.
func NewSkewHori(ratio float32, height, width int) (*State, error) {

	if ratio <= -1 || ratio >= 1 {
		return nil, &ErrInvalidConfig{Field: "ratio", Value: ratio}
	}
	if ratio == 0 {
		return nil, nil
	}

	H, W := float32(height), float32(width)
	shrink := int(math32.Round(H * math32.Abs(ratio)))
	shrinkUp := shrink / 2
	shrinkDown := shrink - shrinkUp

	src := [4]math32.Vector2{
		{X: 0, Y: 0}, {X: W - 1, Y: 0}, {X: W - 1, Y: H - 1}, {X: 0, Y: H - 1},
	}
	dst := src
	if ratio > 0 {
		dst[1] = math32.Vector2{X: W - 1, Y: float32(shrinkUp)}
		dst[2] = math32.Vector2{X: W - 1, Y: H - 1 - float32(shrinkDown)}
	} else {
		dst[0] = math32.Vector2{X: 0, Y: float32(shrinkUp)}
		dst[3] = math32.Vector2{X: 0, Y: H - 1 - float32(shrinkDown)}
	}

	m, err := SolveHomography(src, dst)
	if err != nil {
		return nil, err
	}
	return &State{Persp: m, DstW: width, DstH: height}, nil
}

// NewSkewVert is the vertical analogue of NewSkewHori: the top or bottom
// edge shrinks instead of the left or right.
func NewSkewVert(ratio float32, height, width int) (*State, error) {

	if ratio <= -1 || ratio >= 1 {
		return nil, &ErrInvalidConfig{Field: "ratio", Value: ratio}
	}
	if ratio == 0 {
		return nil, nil
	}

	H, W := float32(height), float32(width)
	shrink := int(math32.Round(W * math32.Abs(ratio)))
	shrinkUp := shrink / 2
	shrinkDown := shrink - shrinkUp

	src := [4]math32.Vector2{
		{X: 0, Y: 0}, {X: W - 1, Y: 0}, {X: W - 1, Y: H - 1}, {X: 0, Y: H - 1},
	}
	dst := src
	if ratio > 0 {
		dst[2] = math32.Vector2{X: W - 1 - float32(shrinkDown), Y: H - 1}
		dst[3] = math32.Vector2{X: float32(shrinkUp), Y: H - 1}
	} else {
		dst[0] = math32.Vector2{X: float32(shrinkUp), Y: 0}
		dst[1] = math32.Vector2{X: W - 1 - float32(shrinkDown), Y: 0}
	}

	m, err := SolveHomography(src, dst)
	if err != nil {
		return nil, err
	}
	return &State{Persp: m, DstW: width, DstH: height}, nil
}

// SolveHomography solves the standard four-point correspondence for a
// perspective (homography) matrix mapping src[i] -> dst[i] exactly, via
// Gaussian elimination on the linear system for the 8 unknowns of a 3x3
// matrix normalized so the bottom-right entry is 1. Exported so the tile
// blender can reuse it for the per-quad Qd -> Qs solve.
func SolveHomography(src, dst [4]math32.Vector2) (*math32.Matrix3, error) {

	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := float64(src[i].X), float64(src[i].Y)
		X, Y := float64(dst[i].X), float64(dst[i].Y)

		r0 := 2 * i
		a[r0][0], a[r0][1], a[r0][2] = x, y, 1
		a[r0][3], a[r0][4], a[r0][5] = 0, 0, 0
		a[r0][6], a[r0][7] = -x*X, -y*X
		a[r0][8] = X

		r1 := 2*i + 1
		a[r1][0], a[r1][1], a[r1][2] = 0, 0, 0
		a[r1][3], a[r1][4], a[r1][5] = x, y, 1
		a[r1][6], a[r1][7] = -x*Y, -y*Y
		a[r1][8] = Y
	}

	h, err := gaussianSolve(a)
	if err != nil {
		return nil, err
	}

	m := math32.NewMatrix3()
	m.Set(
		float32(h[0]), float32(h[1]), float32(h[2]),
		float32(h[3]), float32(h[4]), float32(h[5]),
		float32(h[6]), float32(h[7]), 1,
	)
	return m, nil
}

// gaussianSolve solves the 8x8 linear system encoded by rows (each a 9-wide
// augmented row) via Gaussian elimination with partial pivoting.
func gaussianSolve(rows [8][9]float64) ([8]float64, error) {

	var h [8]float64
	n := 8

	for col := 0; col < n; col++ {
		pivot := col
		best := abs64(rows[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs64(rows[r][col]); v > best {
				pivot = r
				best = v
			}
		}
		if best == 0 {
			return h, errInvalidQuad
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]

		pv := rows[col][col]
		for c := col; c < n+1; c++ {
			rows[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := rows[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n+1; c++ {
				rows[r][c] -= factor * rows[col][c]
			}
		}
	}
	for i := 0; i < n; i++ {
		h[i] = rows[i][n]
	}
	return h, nil
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var errInvalidQuad = &ErrInvalidConfig{Field: "quad", Value: "degenerate source/destination correspondence"}
