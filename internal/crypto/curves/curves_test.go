package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnginesAgreeOnOrder(t *testing.T) {
	affine := NewAffine()
	decred := NewDecred()
	assert.Equal(t, decred.Order(), affine.Order())
}

func TestEnginesAgreeOnSmallMultiples(t *testing.T) {
	affine := NewAffine()
	decred := NewDecred()

	for k := int64(1); k <= 16; k++ {
		ax, ay := affine.ScalarBaseMult(big.NewInt(k))
		dx, dy := decred.ScalarBaseMult(big.NewInt(k))
		assert.Equal(t, dx, ax, "x mismatch at k=%d", k)
		assert.Equal(t, dy, ay, "y mismatch at k=%d", k)
	}
}

func TestEnginesAgreeOnAdd(t *testing.T) {
	affine := NewAffine()
	decred := NewDecred()

	gx, gy := decred.ScalarBaseMult(big.NewInt(1))
	twoX, twoY := decred.ScalarBaseMult(big.NewInt(2))

	ax, ay := affine.Add(gx, gy, twoX, twoY)
	dx, dy := decred.Add(gx, gy, twoX, twoY)
	assert.Equal(t, dx, ax)
	assert.Equal(t, dy, ay)

	// Identity on either side.
	ax, ay = affine.Add(nil, nil, gx, gy)
	assert.Equal(t, gx, ax)
	assert.Equal(t, gy, ay)
	ax, ay = affine.Add(gx, gy, nil, nil)
	assert.Equal(t, gx, ax)
	assert.Equal(t, gy, ay)
}

func TestEnginesAgreeOnRandomScalar(t *testing.T) {
	affine := NewAffine()
	decred := NewDecred()

	k, err := affine.NewScalar()
	require.NoError(t, err)

	ax, ay := affine.ScalarBaseMult(k)
	dx, dy := decred.ScalarBaseMult(k)
	require.Equal(t, dx, ax, "k=%s", k.Text(16))
	require.Equal(t, dy, ay, "k=%s", k.Text(16))

	// k * P with P = 7G.
	px, py := decred.ScalarBaseMult(big.NewInt(7))
	ax, ay = affine.ScalarMult(px, py, k)
	dx, dy = decred.ScalarMult(px, py, k)
	assert.Equal(t, dx, ax)
	assert.Equal(t, dy, ay)
}

func TestZeroScalarIsIdentity(t *testing.T) {
	affine := NewAffine()
	decred := NewDecred()

	ax, ay := affine.ScalarBaseMult(big.NewInt(0))
	assert.Nil(t, ax)
	assert.Nil(t, ay)

	dx, dy := decred.ScalarBaseMult(big.NewInt(0))
	assert.Nil(t, dx)
	assert.Nil(t, dy)
}
