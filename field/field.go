package field

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when a modulus is not a prime greater than 2.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrNotInvertible is returned when a value shares a factor with the modulus.
	ErrNotInvertible = errors.New("value has no modular inverse")
)

var one = big.NewInt(1)

// Field is arithmetic modulo a fixed prime P. All results are normalized into [0, P).
type Field struct {
	p    *big.Int
	half *big.Int
}

// New returns the prime field of order p.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) <= 0 || !p.ProbablyPrime(20) {
		return nil, ErrInvalidModulus
	}
	return &Field{
		p:    new(big.Int).Set(p),
		half: new(big.Int).Rsh(p, 1),
	}, nil
}

// Modulus returns a copy of P.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *Field) Reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

func (f *Field) Add(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Sub(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Sub(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Mul(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Neg(a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, f.p)
	return
}

// Inv returns a^-1 mod P.
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	return ModInverse(a, f.p)
}

// Canonical maps a residue to the signed representative nearest zero and
// folds it to its magnitude: r > P/2 becomes r - P, then negatives are negated.
func (f *Field) Canonical(r *big.Int) *big.Int {
	res := f.Reduce(r)
	if res.Cmp(f.half) > 0 {
		res.Sub(res, f.p)
	}
	return res.Abs(res)
}

// ModInverse returns x with a*x ≡ 1 (mod m), computed with the extended
// Euclidean algorithm. For m = 1 it returns 0.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if m.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	oldR, r := new(big.Int).Mod(a, m), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)
	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
	}
	// oldR is gcd(a, m)
	if oldR.Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}
	return oldS.Mod(oldS, m), nil
}
