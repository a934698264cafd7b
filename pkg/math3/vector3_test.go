package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3_AddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}
	assert.Equal(t, Vector3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, -3, -3}, a.Sub(b))
}

func TestVector3_DotCross(t *testing.T) {
	a := Vector3{1, 0, 0}
	b := Vector3{0, 1, 0}
	assert.InDelta(t, 0, a.Dot(b), 1e-9)
	assert.Equal(t, Vector3{0, 0, 1}, a.Cross(b))
}

func TestVector3_Normalized(t *testing.T) {
	v := Vector3{3, 0, 4}
	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 0, Vector3{}.Normalized().Length(), 1e-9)
}

func TestVector3_Clamp01(t *testing.T) {
	v := Vector3{2, -2, 0.5}
	c := v.Clamp01()
	assert.Equal(t, Vector3{1, -1, 0.5}, c)
}

func TestVector3_ClampLength(t *testing.T) {
	v := Vector3{10, 0, 0}
	assert.Equal(t, Vector3{5, 0, 0}, v.ClampLength(5))
	assert.Equal(t, v, v.ClampLength(20))
}
