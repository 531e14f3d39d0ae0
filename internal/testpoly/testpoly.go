// Package testpoly builds honest share sets for tests: points on a random
// integer polynomial with a chosen constant term.
package testpoly

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/izouxv/goShamir/shamir"
	"github.com/stretchr/testify/require"
)

// coeffBound keeps the coefficients small enough for any registered modulus.
var coeffBound = new(big.Int).Lsh(big.NewInt(1), 64)

// Polynomial is f(x) = Coeffs[0] + Coeffs[1]*x + ... over the integers.
type Polynomial struct {
	Coeffs []*big.Int
}

// Random returns a polynomial of degree k-1 with the given constant term.
func Random(t testing.TB, secret *big.Int, k int) *Polynomial {
	t.Helper()
	coeffs := make([]*big.Int, k)
	coeffs[0] = new(big.Int).Set(secret)
	for i := 1; i < k; i++ {
		c, err := rand.Int(rand.Reader, coeffBound)
		require.NoError(t, err)
		coeffs[i] = c
	}
	return &Polynomial{Coeffs: coeffs}
}

// Eval returns f(x).
func (p *Polynomial) Eval(x int64) *big.Int {
	bx := big.NewInt(x)
	y := new(big.Int)
	xPow := big.NewInt(1)
	for _, c := range p.Coeffs {
		y.Add(y, new(big.Int).Mul(c, xPow))
		xPow.Mul(xPow, bx)
	}
	return y
}

// Points evaluates the polynomial at each x.
func (p *Polynomial) Points(xs ...int64) []shamir.Point {
	points := make([]shamir.Point, len(xs))
	for i, x := range xs {
		points[i] = shamir.Point{X: big.NewInt(x), Y: p.Eval(x)}
	}
	return points
}

// Shares evaluates the polynomial at each index and encodes the values in
// the given base.
func (p *Polynomial) Shares(base int, indices ...int) []shamir.Share {
	shares := make([]shamir.Share, len(indices))
	for i, idx := range indices {
		shares[i] = shamir.Share{
			Index: idx,
			Base:  base,
			Value: p.Eval(int64(idx)).Text(base),
		}
	}
	return shares
}
