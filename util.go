package svgo

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons of geometry.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Matrix is an affine transformation. The SVG matrix(a,b,c,d,e,f) maps onto {{a,c,e},{b,d,f}}. Be aware that concatenating transformation functions will be evaluated right-to-left, like the transform attribute: Identity.Translate(10,0).Rotate(30) first rotates and then translates.
type Matrix [2][3]float64

// Identity is the identity transformation.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// NewMatrix returns the matrix for the SVG matrix(a,b,c,d,e,f) notation.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
	}
}

// Values returns the matrix in SVG notation order a,b,c,d,e,f.
func (m Matrix) Values() []float64 {
	return []float64{m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]}
}

// Mul multiplies the matrices M and Q, ie. Q is applied first.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms the point P.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// DotVector transforms the vector P, ie. without translation.
func (m Matrix) DotVector(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y,
		m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Translate appends a translation.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate appends a rotation of rot degrees.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// RotateAt appends a rotation of rot degrees around (x,y).
func (m Matrix) RotateAt(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

// Scale appends a scaling.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// SkewX appends a skew along the x-axis of rot degrees.
func (m Matrix) SkewX(rot float64) Matrix {
	return m.Mul(Matrix{
		{1.0, math.Tan(rot * math.Pi / 180.0), 0.0},
		{0.0, 1.0, 0.0},
	})
}

// SkewY appends a skew along the y-axis of rot degrees.
func (m Matrix) SkewY(rot float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, 0.0},
		{math.Tan(rot * math.Pi / 180.0), 1.0, 0.0},
	})
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the inverse matrix, it returns false when the matrix is singular.
func (m Matrix) Inv() (Matrix, bool) {
	det := m.Det()
	if det == 0.0 {
		return Matrix{}, false
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}, true
}

// IsIdentity returns true if the matrix is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m.Equals(Identity)
}

// Equals returns true if both matrices are equal with tolerance Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	return equal(m[0][0], q[0][0]) && equal(m[0][1], q[0][1]) && equal(m[0][2], q[0][2]) && equal(m[1][0], q[1][0]) && equal(m[1][1], q[1][1]) && equal(m[1][2], q[1][2])
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}
