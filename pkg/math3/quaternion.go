package math3

import "math"

// Quaternion represents an orientation or rotation. W is the scalar part.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Multiply returns q * o (apply o first, then q).
func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Add sums two quaternions component-wise (used during integration, not a
// rotation composition).
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// LengthSquared returns the sum of squares of the components.
func (q Quaternion) LengthSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the quaternion norm; 1.0 for a valid rotation.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSquared())
}

// Normalized returns q scaled to unit length, or the identity if q is
// degenerate.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l < 1e-12 {
		return IdentityQuaternion()
	}
	return q.Scale(1 / l)
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// RotateVector rotates v by q.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	vq := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Multiply(vq).Multiply(q.Conjugate())
	return Vector3{r.X, r.Y, r.Z}
}

// InverseRotateVector rotates v by the inverse of q — used to transform
// world-frame quantities (e.g. velocity) into ship-local frame.
func (q Quaternion) InverseRotateVector(v Vector3) Vector3 {
	return q.Conjugate().RotateVector(v)
}

// Integrate advances q by the body-frame angular velocity omega over dt
// with a first-order step of the quaternion derivative, then renormalizes. This matches
// spec.md §4.7: q_dot = 0.5 * omega_quat * q, q += q_dot * dt, renormalize.
func (q Quaternion) Integrate(omega Vector3, dt float64) Quaternion {
	omegaQuat := Quaternion{omega.X, omega.Y, omega.Z, 0}
	qDot := omegaQuat.Multiply(q).Scale(0.5)
	updated := q.Add(qDot.Scale(dt))
	return updated.Normalized()
}

// FromAxisAngle builds a rotation of angle radians around axis.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Normalized()
	half := angle * 0.5
	s := math.Sin(half)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(half)}.Normalized()
}

// FromToRotation returns the shortest rotation that takes `from` to `to`
// (both assumed non-zero; normalized internally). Used by ScriptedFlight to
// derive a facing quaternion from a desired direction.
func FromToRotation(from, to Vector3) Quaternion {
	from = from.Normalized()
	to = to.Normalized()
	dot := from.Dot(to)
	if dot > 0.999999 {
		return IdentityQuaternion()
	}
	if dot < -0.999999 {
		// 180 degree turn: pick any orthogonal axis.
		axis := Vector3{1, 0, 0}.Cross(from)
		if axis.Length() < 1e-6 {
			axis = Vector3{0, 1, 0}.Cross(from)
		}
		return FromAxisAngle(axis.Normalized(), math.Pi)
	}
	axis := from.Cross(to)
	w := 1 + dot
	return Quaternion{axis.X, axis.Y, axis.Z, w}.Normalized()
}

// Error returns the quaternion that rotates `from` into `target`, i.e.
// target * from.Conjugate() — used to derive an angular error command.
func (q Quaternion) Error(target Quaternion) Quaternion {
	return target.Multiply(q.Conjugate())
}
