package panzoom

import "math"

// Affine is a 2D affine matrix in [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity affine matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// Multiply multiplies two affine matrices: result = p * c.
func Multiply(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Invert computes the inverse of an affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func Invert(m Affine) Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point p by the matrix.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[2]*p.Y + m[4],
		m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Translation returns the translation component of the matrix.
func (m Affine) Translation() Vec2 {
	return Vec2{m[4], m[5]}
}

// --- Anchored primitives ---

// TranslationAffine builds a pure translation by d.
func TranslationAffine(d Vec2) Affine {
	return Affine{1, 0, 0, 1, d.X, d.Y}
}

// ScaleAbout builds a uniform scale by factor anchored at focal, so focal is
// a fixed point of the resulting matrix. Composition is Translate(focal *
// (1-factor)) then Scale(factor), collapsed into one matrix.
func ScaleAbout(factor float64, focal Vec2) Affine {
	return Affine{
		factor, 0, 0, factor,
		focal.X * (1 - factor),
		focal.Y * (1 - factor),
	}
}

// RotateAbout builds a rotation by angle radians anchored at focal.
// Equivalent to Translate(focal) * Rotate(angle) * Translate(-focal), using
// the closed-form translation offset to avoid the extra multiplies.
func RotateAbout(angle float64, focal Vec2) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		cos, sin, -sin, cos,
		(1-cos)*focal.X + sin*focal.Y,
		(1-cos)*focal.Y - sin*focal.X,
	}
}

// scaleOf returns the uniform scale component of the matrix: the length of
// the transformed unit X basis vector. Composed transforms in this package
// only ever carry uniform scale.
func scaleOf(m Affine) float64 {
	return math.Hypot(m[0], m[1])
}

// rotationOf returns the rotation component of the matrix in radians,
// derived from the direction of the transformed unit X basis vector. This
// reads the rotational component robustly even when the matrix also carries
// translation and scale.
func rotationOf(m Affine) float64 {
	origin := m.Apply(Vec2{0, 0})
	basis := m.Apply(Vec2{1, 0})
	return math.Atan2(basis.Y-origin.Y, basis.X-origin.X)
}
