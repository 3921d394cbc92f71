package mls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/math32"
)

func TestSimilarityProjector_HandlesAreFixedPoints(t *testing.T) {

	src := []math32.Vector2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}}
	dst := []math32.Vector2{{X: 10, Y: 5}, {X: 120, Y: 0}, {X: 5, Y: 90}, {X: 95, Y: 110}}

	proj := NewSimilarityProjector(src, dst)
	for i, p := range src {
		assert.Equal(t, dst[i], proj.Project(p))
	}
}

func TestSimilarityProjector_IdentityCorrespondenceIsIdentity(t *testing.T) {

	src := []math32.Vector2{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 50}}
	proj := NewSimilarityProjector(src, src)

	probe := math32.Vector2{X: 25, Y: 17}
	got := proj.Project(probe)
	assert.InDelta(t, probe.X, got.X, 1)
	assert.InDelta(t, probe.Y, got.Y, 1)
}

func TestSimilarityProjector_ProjectAllAgreesWithProject(t *testing.T) {

	src := []math32.Vector2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}
	dst := []math32.Vector2{{X: 0, Y: 0}, {X: 80, Y: 10}, {X: 10, Y: 90}}
	proj := NewSimilarityProjector(src, dst)

	pts := []math32.Vector2{{X: 10, Y: 10}, {X: 50, Y: 50}, {X: 90, Y: 5}}
	bulk := proj.ProjectAll(pts)

	for i, p := range pts {
		assert.Equal(t, proj.Project(p), bulk[i])
	}
}
