package ecc

import (
	"fmt"
	"math/big"
)

var (
	// groupOrder is the order N of the cyclic group generated by G.
	groupOrder, _ = new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	genX, _ = new(big.Int).SetString(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	genY, _ = new(big.Int).SetString(
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)

	// curveB is the constant term of the curve equation y^2 = x^3 + 7.
	curveB = FieldElement{num: big.NewInt(7)}

	// Small coefficients used by the doubling formula.
	two   = big.NewInt(2)
	three = big.NewInt(3)

	generator = Point{x: FieldElement{num: genX}, y: FieldElement{num: genY}}
)

// Order returns the order N of the group generated by G.
func Order() *big.Int {
	return new(big.Int).Set(groupOrder)
}

// Generator returns the secp256k1 base point G.
func Generator() Point {
	return generator
}

// Point represents an element of the secp256k1 group: either the point at
// infinity (the group identity) or an affine coordinate pair satisfying the
// curve equation. The zero value is not valid; use NewPoint or Infinity.
// Points are immutable: Add, ScalarMul, and Neg return new values.
type Point struct {
	x, y FieldElement
	inf  bool
}

// NewPoint creates a point from an optional coordinate pair. Both nil yields
// the point at infinity. With both coordinates present the curve equation
// y^2 = x^3 + 7 is checked, and a mismatch returns an error with kind
// ErrNotOnCurve whose description carries both sides of the failed equation.
// Exactly one nil coordinate returns an error with kind ErrMismatchedCoords.
func NewPoint(x, y *FieldElement) (Point, error) {
	switch {
	case x == nil && y == nil:
		return Infinity(), nil
	case x == nil || y == nil:
		return Point{}, makeError(ErrMismatchedCoords,
			"both coordinates must be present or both absent")
	}

	left := y.Mul(*y)
	right := x.Mul(*x).Mul(*x).Add(curveB)
	if !left.Equal(right) {
		desc := fmt.Sprintf(
			"point (0x%064x, 0x%064x) is not on the secp256k1 curve: 0x%064x != 0x%064x",
			x.num, y.num, left.num, right.num)
		return Point{}, makeError(ErrNotOnCurve, desc)
	}
	return Point{x: *x, y: *y}, nil
}

// Infinity returns the point at infinity, the group identity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity returns true if p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Coords returns the affine coordinates of p. ok is false for the point at
// infinity, which has no coordinates.
func (p Point) Coords() (x, y FieldElement, ok bool) {
	if p.inf {
		return FieldElement{}, FieldElement{}, false
	}
	return p.x, p.y, true
}

// Equal returns true if both points are the identity or share the same
// affine coordinates.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns the additive inverse of p, the point with the same x and
// negated y. The inverse of the identity is the identity.
func (p Point) Neg() Point {
	if p.inf {
		return p
	}
	return Point{x: p.x, y: p.y.Neg()}
}

// Add returns p + q under the group law. It is total: the case analysis
// below only divides when the denominator is a non-zero field element.
func (p Point) Add(q Point) Point {
	// Identity cases.
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	if p.x.Equal(q.x) {
		// Equal x and differing y means q = -p.
		if !p.y.Equal(q.y) {
			return Infinity()
		}
		// Doubling a point with y = 0 hits a vertical tangent.
		if p.y.IsZero() {
			return Infinity()
		}
		return p.double()
	}

	// Distinct-point addition: s = (y2 - y1) / (x2 - x1). The denominator is
	// non-zero because x1 != x2.
	s := mustDiv(q.y.Sub(p.y), q.x.Sub(p.x))
	x3 := s.Mul(s).Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// double returns p + p for a point with y != 0 using the tangent slope
// s = 3*x^2 / 2*y. The formulas assume a field of odd characteristic other
// than 3, which holds for the secp256k1 prime.
func (p Point) double() Point {
	s := mustDiv(p.x.Mul(p.x).MulInt(three), p.y.MulInt(two))
	x3 := s.Mul(s).Sub(p.x).Sub(p.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// ScalarMul returns k*p using double-and-add, scanning the scalar from its
// least significant bit. The scalar is reduced into [0, N) first; big.Int
// Mod is Euclidean, so a negative k lands on its positive representative.
func (p Point) ScalarMul(k *big.Int) Point {
	coef := new(big.Int).Mod(k, groupOrder)

	result := Infinity()
	current := p
	for coef.Sign() > 0 {
		if coef.Bit(0) == 1 {
			result = result.Add(current)
		}
		current = current.Add(current)
		coef = new(big.Int).Rsh(coef, 1)
	}
	return result
}

// String returns "(Infinity)" for the identity, otherwise the coordinates
// as zero-padded 64-hex-digit values. Diagnostic form only.
func (p Point) String() string {
	if p.inf {
		return "(Infinity)"
	}
	return fmt.Sprintf("(x=0x%064x, y=0x%064x)", p.x.num, p.y.num)
}

// mustDiv divides two field elements whose denominator the group-law case
// analysis has already proven non-zero.
func mustDiv(a, b FieldElement) FieldElement {
	q, err := a.Div(b)
	if err != nil {
		panic("ecc: zero denominator in group law")
	}
	return q
}
