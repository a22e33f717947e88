package curves

import (
	"crypto/rand"
	"math/big"

	"github.com/jouliene/bitcoin-from-scratch/pkg/ecc"
)

// Affine backs the Curve interface with the from-scratch affine group law in
// pkg/ecc.
type Affine struct{}

func (c *Affine) Name() string {
	return "secp256k1/affine"
}

func (c *Affine) Order() *big.Int {
	return ecc.Order()
}

func (c *Affine) NewScalar() (*big.Int, error) {
	k, err := rand.Int(rand.Reader, ecc.Order())
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (c *Affine) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return fromPoint(ecc.Generator().ScalarMul(k))
}

func (c *Affine) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return fromPoint(toPoint(Px, Py).ScalarMul(k))
}

func (c *Affine) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return fromPoint(toPoint(x1, y1).Add(toPoint(x2, y2)))
}

// toPoint lifts a coordinate pair into an ecc.Point. The interface contract
// requires the pair to be a curve point or (nil, nil).
func toPoint(x, y *big.Int) ecc.Point {
	if x == nil && y == nil {
		return ecc.Infinity()
	}
	xe, err := ecc.NewFieldElement(x)
	if err != nil {
		panic("curves: coordinate outside the field: " + err.Error())
	}
	ye, err := ecc.NewFieldElement(y)
	if err != nil {
		panic("curves: coordinate outside the field: " + err.Error())
	}
	p, err := ecc.NewPoint(&xe, &ye)
	if err != nil {
		panic("curves: input is not a curve point: " + err.Error())
	}
	return p
}

// fromPoint lowers an ecc.Point into the interface's coordinate convention.
func fromPoint(p ecc.Point) (*big.Int, *big.Int) {
	x, y, ok := p.Coords()
	if !ok {
		return nil, nil
	}
	return x.Num(), y.Num()
}

// NewAffine returns the pkg/ecc backed engine.
func NewAffine() Curve {
	return &Affine{}
}
