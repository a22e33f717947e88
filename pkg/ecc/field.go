package ecc

import (
	"fmt"
	"math/big"
)

var (
	// fieldPrime is the secp256k1 field prime p = 2^256 - 2^32 - 977.
	fieldPrime, _ = new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

	// Cached exponents for Fermat-based exponentiation and inversion:
	// p-1 (the multiplicative group order) and p-2 (the inversion exponent).
	fieldPrimeMinusOne = new(big.Int).Sub(fieldPrime, big.NewInt(1))
	fieldPrimeMinusTwo = new(big.Int).Sub(fieldPrime, big.NewInt(2))
)

// Prime returns the secp256k1 field prime p.
func Prime() *big.Int {
	return new(big.Int).Set(fieldPrime)
}

// FieldElement represents an element of the secp256k1 prime field, an
// integer num with 0 <= num < p. Values are immutable: every operation
// returns a new element and never modifies its operands.
//
// FieldElements must be created with NewFieldElement, Zero, or One; the
// methods below assume an initialized value.
type FieldElement struct {
	num *big.Int
}

// NewFieldElement creates a field element from num. It returns an error
// with kind ErrOutOfRange when num is negative or not less than the field
// prime. The input is copied, so the caller may reuse it freely.
func NewFieldElement(num *big.Int) (FieldElement, error) {
	if num == nil || num.Sign() < 0 || num.Cmp(fieldPrime) >= 0 {
		desc := fmt.Sprintf("value %v is not in the field range [0, p)", num)
		return FieldElement{}, makeError(ErrOutOfRange, desc)
	}
	return FieldElement{num: new(big.Int).Set(num)}, nil
}

// Zero returns the additive identity of the field.
func Zero() FieldElement {
	return FieldElement{num: new(big.Int)}
}

// One returns the multiplicative identity of the field.
func One() FieldElement {
	return FieldElement{num: big.NewInt(1)}
}

// Num returns a copy of the element's integer value.
func (a FieldElement) Num() *big.Int {
	return new(big.Int).Set(a.num)
}

// IsZero returns true if the element is the additive identity.
func (a FieldElement) IsZero() bool {
	return a.num.Sign() == 0
}

// Equal returns true if both elements hold the same value.
func (a FieldElement) Equal(b FieldElement) bool {
	return a.num.Cmp(b.num) == 0
}

// Add returns a + b in the field. Both operands are already reduced, so a
// single conditional subtraction of p brings the sum back into [0, p).
func (a FieldElement) Add(b FieldElement) FieldElement {
	sum := new(big.Int).Add(a.num, b.num)
	if sum.Cmp(fieldPrime) >= 0 {
		sum.Sub(sum, fieldPrime)
	}
	return FieldElement{num: sum}
}

// Sub returns a - b in the field. A single conditional addition of p is
// enough to normalize, since both operands are in [0, p).
func (a FieldElement) Sub(b FieldElement) FieldElement {
	diff := new(big.Int).Sub(a.num, b.num)
	if diff.Sign() < 0 {
		diff.Add(diff, fieldPrime)
	}
	return FieldElement{num: diff}
}

// Mul returns a * b in the field.
func (a FieldElement) Mul(b FieldElement) FieldElement {
	prod := new(big.Int).Mul(a.num, b.num)
	prod.Mod(prod, fieldPrime)
	return FieldElement{num: prod}
}

// MulInt returns k * a in the field for a plain integer k, which may be
// negative or arbitrarily large. Used for the small constant coefficients in
// the curve formulas.
func (a FieldElement) MulInt(k *big.Int) FieldElement {
	prod := new(big.Int).Mul(k, a.num)
	prod.Mod(prod, fieldPrime)
	return FieldElement{num: prod}
}

// Neg returns the additive inverse -a, i.e. (p - a) mod p.
func (a FieldElement) Neg() FieldElement {
	if a.num.Sign() == 0 {
		return Zero()
	}
	return FieldElement{num: new(big.Int).Sub(fieldPrime, a.num)}
}

// Pow returns a^e in the field. The exponent is first reduced mod p-1,
// which is valid for non-zero a by Fermat's little theorem. A negative
// exponent is handled by inverting a and raising the inverse to |e|, so the
// only failure case is a negative exponent on the zero element, which
// returns an error with kind ErrDivideByZero.
func (a FieldElement) Pow(e *big.Int) (FieldElement, error) {
	if e.Sign() < 0 {
		inv, err := a.Inverse()
		if err != nil {
			return FieldElement{}, err
		}
		return inv.Pow(new(big.Int).Neg(e))
	}
	exp := new(big.Int).Mod(e, fieldPrimeMinusOne)
	return FieldElement{num: new(big.Int).Exp(a.num, exp, fieldPrime)}, nil
}

// Inverse returns the multiplicative inverse a^-1, computed as a^(p-2) mod p
// by Fermat's little theorem. It returns an error with kind ErrDivideByZero
// for the zero element, which has no inverse.
func (a FieldElement) Inverse() (FieldElement, error) {
	if a.num.Sign() == 0 {
		return FieldElement{}, makeError(ErrDivideByZero,
			"the zero field element has no multiplicative inverse")
	}
	return FieldElement{num: new(big.Int).Exp(a.num, fieldPrimeMinusTwo, fieldPrime)}, nil
}

// Div returns a / b, i.e. a * b^-1. It returns an error with kind
// ErrDivideByZero when b is the zero element.
func (a FieldElement) Div(b FieldElement) (FieldElement, error) {
	inv, err := b.Inverse()
	if err != nil {
		return FieldElement{}, err
	}
	return a.Mul(inv), nil
}

// String returns the element as a zero-padded 64-hex-digit value together
// with the field modulus. Diagnostic form only, not a wire encoding.
func (a FieldElement) String() string {
	return fmt.Sprintf("0x%064x (mod 0x%064x)", a.num, fieldPrime)
}
