package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/meshwarp/math32"
)

func TestNewModel_ZeroRotationProjectsPrincipalPointToOrigin(t *testing.T) {

	cfg := Config{RotationUnitVec: math32.Vector3{X: 0, Y: 0, Z: 1}, RotationTheta: 0}
	lifted := []math32.Vector3{{X: 50, Y: 50, Z: 0}}

	m := NewModel(cfg, 100, 100, lifted)

	// The principal point is folded into the translation, not into K, so
	// it lands on the optical axis.
	projected := m.Project3D([]math32.Vector3{{X: 50, Y: 50, Z: 0}})
	assert.InDelta(t, 0, projected[0].X, 1e-2)
	assert.InDelta(t, 0, projected[0].Y, 1e-2)
}

func TestNewModel_AutoDistanceKeepsNearestPointInFront(t *testing.T) {

	cfg := Config{RotationUnitVec: math32.Vector3{X: 1, Y: 0, Z: 0}, RotationTheta: 30}
	lifted := []math32.Vector3{{X: 0, Y: 0, Z: -40}, {X: 100, Y: 100, Z: 40}}

	m := NewModel(cfg, 100, 100, lifted)

	for _, p := range lifted {
		z := m.cameraFrameZ(p)
		assert.Greater(t, z, float32(0))
	}
}

func TestNewModel_ExplicitCameraDistanceIsRespected(t *testing.T) {

	dist := float32(500)
	cfg := Config{RotationTheta: 0, CameraDistance: &dist}

	m := NewModel(cfg, 50, 50, nil)
	assert.Equal(t, dist, m.CameraDistance)
}
