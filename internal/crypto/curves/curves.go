package curves

import (
	"crypto/rand"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve defines the interface for the secp256k1 group operations used by the
// examples and the differential tests. Coordinates travel as *big.Int pairs;
// the pair (nil, nil) represents the point at infinity. Inputs must be valid
// curve points or the identity, otherwise the result is undefined.
type Curve interface {
	// Name identifies the engine.
	Name() string

	// Order returns the group order N.
	Order() *big.Int

	// NewScalar generates a random scalar in [0, N)
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// Decred backs the Curve interface with the optimized decred/dcrd secp256k1
// implementation. It is the oracle the affine engine is checked against.
type Decred struct{}

func (c *Decred) Name() string {
	return "secp256k1/decred"
}

func (c *Decred) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (c *Decred) NewScalar() (*big.Int, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, secp256k1.S256().N)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (c *Decred) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return normalize(secp256k1.S256().ScalarBaseMult(k.Bytes()))
}

func (c *Decred) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	if Px == nil && Py == nil {
		return nil, nil
	}
	return normalize(secp256k1.S256().ScalarMult(Px, Py, k.Bytes()))
}

func (c *Decred) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if x1 == nil && y1 == nil {
		return x2, y2
	}
	if x2 == nil && y2 == nil {
		return x1, y1
	}
	return normalize(secp256k1.S256().Add(x1, y1, x2, y2))
}

// normalize maps the (0, 0) identity convention of crypto/elliptic style
// implementations onto the (nil, nil) convention of this interface. (0, 0)
// is not a curve point, so the mapping is unambiguous.
func normalize(x, y *big.Int) (*big.Int, *big.Int) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil
	}
	return x, y
}

// NewDecred returns the decred-backed engine.
func NewDecred() Curve {
	return &Decred{}
}
