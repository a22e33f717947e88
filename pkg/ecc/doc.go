/*
Package ecc implements arithmetic over the secp256k1 prime field and the
additive group of points on the curve y^2 = x^3 + 7 defined over it.

FieldElement covers modular addition, subtraction, multiplication, division,
negation, and exponentiation, with inversion by Fermat's little theorem.
Point covers the affine group law, including the point at infinity and all
tangent and vertical-line edge cases, and scalar multiplication by
double-and-add with the scalar reduced modulo the group order.

The group-law formulas assume a prime field of odd characteristic other than
3. That holds for secp256k1, the only curve this package supports; nothing
here generalizes to other curves.

All values are immutable after construction and every operation is a pure
function, so the package is safe for concurrent use without coordination.
Nothing in this package is constant-time; it is not hardened against
side-channel observation.
*/
package ecc
