package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4_MultiplyMatrices(t *testing.T) {
	tests := []struct {
		a, b     *Matrix4
		expected *Matrix4
	}{
		{
			a:        NewMatrix4(),
			b:        NewMatrix4(),
			expected: NewMatrix4(),
		},
		{
			a:        NewMatrix4().Set(2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1),
			b:        NewMatrix4(),
			expected: NewMatrix4().Set(2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1),
		},
		{
			a:        NewMatrix4().MakeTranslation(1, 2, 3),
			b:        NewMatrix4(),
			expected: NewMatrix4().MakeTranslation(1, 2, 3),
		},
	}

	for i, test := range tests {
		actual := NewMatrix4().MultiplyMatrices(test.a, test.b)
		assert.Equalf(t, test.expected, actual, "Failed test %v", i)
	}
}

func TestMatrix4_MakeRotationAxis(t *testing.T) {

	// 90 degree rotation about the Z axis sends +X to +Y.
	axis := NewVector3(0, 0, 1)
	m := NewMatrix4().MakeRotationAxis(axis, Pi/2)

	v := NewVector3(1, 0, 0)
	v.ApplyMatrix4(m)

	assert.InDeltaf(t, 0, v.X, 1e-5, "X")
	assert.InDeltaf(t, 1, v.Y, 1e-5, "Y")
	assert.InDeltaf(t, 0, v.Z, 1e-5, "Z")
}

func TestMatrix4_GetInverseRoundTrip(t *testing.T) {

	m := NewMatrix4().MakeTranslation(3, -2, 5)
	inv := NewMatrix4()
	err := inv.GetInverse(m)
	assert.NoError(t, err)

	product := NewMatrix4().MultiplyMatrices(m, inv)
	identity := NewMatrix4()
	for i := range product {
		assert.InDeltaf(t, identity[i], product[i], 1e-5, "element %d", i)
	}
}
