// Package mls implements the Moving-Least-Squares similarity transform: a
// projector driven by a set of source/destination handle-point
// correspondences rather than a closed-form matrix.
package mls

import "github.com/g3n/meshwarp/math32"

// SimilarityProjector implements project.Projector over a fixed set of
// handle-point correspondences using the similarity MLS formulation.
type SimilarityProjector struct {
	src []math32.Vector2
	dst []math32.Vector2
}

// NewSimilarityProjector builds a projector from parallel source/
// destination handle-point slices. Requires at least 3 correspondences
// (an InvalidConfig condition is the caller's responsibility to check
// before construction).
func NewSimilarityProjector(src, dst []math32.Vector2) *SimilarityProjector {

	return &SimilarityProjector{src: append([]math32.Vector2(nil), src...), dst: append([]math32.Vector2(nil), dst...)}
}

// Project implements project.Projector.
func (p *SimilarityProjector) Project(v math32.Vector2) math32.Vector2 {

	for i, pi := range p.src {
		if v.X == pi.X && v.Y == pi.Y {
			return p.dst[i]
		}
	}

	var sumW float32
	var pStar, qStar math32.Vector2
	weights := make([]float32, len(p.src))

	for i, pi := range p.src {
		dx, dy := v.X-pi.X, v.Y-pi.Y
		distSq := dx*dx + dy*dy
		if distSq == 0 {
			// Guards a duplicate handle the exact-match scan above did
			// not catch (e.g. NaN coordinates); degrades to the
			// identity on that handle rather than dividing by zero.
			return p.dst[i]
		}
		w := 1 / distSq
		weights[i] = w
		sumW += w
		pStar.X += w * pi.X
		pStar.Y += w * pi.Y
		qStar.X += w * p.dst[i].X
		qStar.Y += w * p.dst[i].Y
	}
	pStar.X /= sumW
	pStar.Y /= sumW
	qStar.X /= sumW
	qStar.Y /= sumW

	vMinusPStar := math32.Vector2{X: v.X - pStar.X, Y: v.Y - pStar.Y}
	vPerp := math32.Vector2{X: vMinusPStar.Y, Y: -vMinusPStar.X}

	var mu float32
	var sum math32.Vector2

	for i, pi := range p.src {
		w := weights[i]
		pHat := math32.Vector2{X: pi.X - pStar.X, Y: pi.Y - pStar.Y}
		pHatPerp := math32.Vector2{X: pHat.Y, Y: -pHat.X}
		qHat := math32.Vector2{X: p.dst[i].X - qStar.X, Y: p.dst[i].Y - qStar.Y}

		mu += w * (pHat.X*pHat.X + pHat.Y*pHat.Y)

		// A_i = w * [pHat; pHatPerp] * [vMinusPStar; vPerp]^T, applied to
		// qHat on the left: qHat . A_i is a 1x2 row-vector times 2x2. Both
		// perpendiculars use the (y, -x) convention, and with it row 1 of
		// the matrix is +pHatPerp: identity handles then map v to itself
		// and rotated handles rotate v - pStar by the same angle.
		a00 := w * (pHat.X*vMinusPStar.X + pHat.Y*vMinusPStar.Y)
		a01 := w * (pHat.X*vPerp.X + pHat.Y*vPerp.Y)
		a10 := w * (pHatPerp.X*vMinusPStar.X + pHatPerp.Y*vMinusPStar.Y)
		a11 := w * (pHatPerp.X*vPerp.X + pHatPerp.Y*vPerp.Y)

		sum.X += qHat.X*a00 + qHat.Y*a10
		sum.Y += qHat.X*a01 + qHat.Y*a11
	}

	if mu == 0 {
		return math32.Vector2{X: math32.Round(qStar.X), Y: math32.Round(qStar.Y)}
	}

	result := math32.Vector2{
		X: sum.X/mu + qStar.X,
		Y: sum.Y/mu + qStar.Y,
	}
	return math32.Vector2{X: math32.Round(result.X), Y: math32.Round(result.Y)}
}

// ProjectAll implements project.BulkProjector.
func (p *SimilarityProjector) ProjectAll(pts []math32.Vector2) []math32.Vector2 {

	out := make([]math32.Vector2, len(pts))
	for i, pt := range pts {
		out[i] = p.Project(pt)
	}
	return out
}
