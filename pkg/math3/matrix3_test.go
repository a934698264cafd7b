package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix3_IdentityMultiplyVector(t *testing.T) {
	m := IdentityMatrix3()
	v := Vector3{1, 2, 3}
	assert.Equal(t, v, m.MultiplyVector(v))
}

func TestMatrix3_InverseOfDiagonal(t *testing.T) {
	m := DiagonalMatrix3(2, 4, 8)
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.InDelta(t, 0.5, inv.M11, 1e-9)
	assert.InDelta(t, 0.25, inv.M22, 1e-9)
	assert.InDelta(t, 0.125, inv.M33, 1e-9)
}

func TestMatrix3_SingularHasNoInverse(t *testing.T) {
	m := Matrix3{}
	_, ok := m.Inverse()
	assert.False(t, ok)
}

func TestRotationFromQuaternion_IdentityIsIdentityMatrix(t *testing.T) {
	m := RotationFromQuaternion(IdentityQuaternion())
	assert.Equal(t, IdentityMatrix3(), m)
}
