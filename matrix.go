package svgpath

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Matrix is a 2D affine transform in the SVG matrix(a b c d e f) layout.
// A point (x, y) maps to (A*x + C*y + E, B*x + D*y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity leaves every point unchanged.
var Identity = Matrix{A: 1, D: 1}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation by deg degrees about the origin. Positive
// angles turn +x towards +y.
func Rotate(deg float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// SkewX returns a shear along the x axis by deg degrees.
func SkewX(deg float64) Matrix {
	return Matrix{A: 1, C: math.Tan(deg * math.Pi / 180), D: 1}
}

// SkewY returns a shear along the y axis by deg degrees.
func SkewY(deg float64) Matrix {
	return Matrix{A: 1, B: math.Tan(deg * math.Pi / 180), D: 1}
}

// Mult returns m * n: n is applied first, then m.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyTuple maps t through m.
func (m Matrix) ApplyTuple(t Tuple) Tuple {
	x, y := m.Apply(t[0], t[1])
	return Tuple{x, y}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Transform converts m to the row, column layout used by Mtransform.
func (m Matrix) Transform() mt.Transform {
	t := mt.Identity()
	t[0][0], t[0][1], t[0][2] = m.A, m.C, m.E
	t[1][0], t[1][1], t[1][2] = m.B, m.D, m.F
	return t
}

// MatrixFromTransform converts an Mtransform matrix. The projective row is
// ignored.
func MatrixFromTransform(t mt.Transform) Matrix {
	return Matrix{
		A: t[0][0], C: t[0][1], E: t[0][2],
		B: t[1][0], D: t[1][1], F: t[1][2],
	}
}
