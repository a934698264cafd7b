package math3

// Matrix3 is a row-major 3x3 matrix, used for inertia tensors and rotation
// matrices derived from orientation. Grounded on the teacher's
// pkg/types/matrix3x3.go layout.
type Matrix3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// IdentityMatrix3 returns the 3x3 identity matrix.
func IdentityMatrix3() Matrix3 {
	return Matrix3{
		M11: 1, M22: 1, M33: 1,
	}
}

// DiagonalMatrix3 builds a diagonal matrix, the common case for an inertia
// tensor expressed in principal axes.
func DiagonalMatrix3(x, y, z float64) Matrix3 {
	return Matrix3{M11: x, M22: y, M33: z}
}

// MultiplyVector computes M * v.
func (m Matrix3) MultiplyVector(v Vector3) Vector3 {
	return Vector3{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		M11: m.M11, M12: m.M21, M13: m.M31,
		M21: m.M12, M22: m.M22, M23: m.M32,
		M31: m.M13, M32: m.M23, M33: m.M33,
	}
}

// Determinant returns the matrix determinant.
func (m Matrix3) Determinant() float64 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Inverse returns the matrix inverse and true, or the zero matrix and false
// if the matrix is singular.
func (m Matrix3) Inverse() (Matrix3, bool) {
	det := m.Determinant()
	if det > -1e-12 && det < 1e-12 {
		return Matrix3{}, false
	}
	invDet := 1.0 / det
	return Matrix3{
		M11: (m.M22*m.M33 - m.M23*m.M32) * invDet,
		M12: (m.M13*m.M32 - m.M12*m.M33) * invDet,
		M13: (m.M12*m.M23 - m.M13*m.M22) * invDet,

		M21: (m.M23*m.M31 - m.M21*m.M33) * invDet,
		M22: (m.M11*m.M33 - m.M13*m.M31) * invDet,
		M23: (m.M13*m.M21 - m.M11*m.M23) * invDet,

		M31: (m.M21*m.M32 - m.M22*m.M31) * invDet,
		M32: (m.M12*m.M31 - m.M11*m.M32) * invDet,
		M33: (m.M11*m.M22 - m.M12*m.M21) * invDet,
	}, true
}

// RotationFromQuaternion converts a unit quaternion to its 3x3 rotation
// matrix.
func RotationFromQuaternion(q Quaternion) Matrix3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix3{
		M11: 1 - 2*(yy+zz), M12: 2 * (xy - wz), M13: 2 * (xz + wy),
		M21: 2 * (xy + wz), M22: 1 - 2*(xx+zz), M23: 2 * (yz - wx),
		M31: 2 * (xz - wy), M32: 2 * (yz + wx), M33: 1 - 2*(xx+yy),
	}
}

// Multiply computes m * o.
func (m Matrix3) Multiply(o Matrix3) Matrix3 {
	return Matrix3{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33,

		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33,

		M31: m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31,
		M32: m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32,
		M33: m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33,
	}
}
