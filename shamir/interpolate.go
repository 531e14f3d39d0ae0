package shamir

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/field"
)

// Interpolator evaluates at x = 0 the polynomial of lowest degree through the
// given points. Points must have distinct x coordinates; their order does not
// affect the result.
type Interpolator interface {
	Name() string
	ConstantTerm(points []Point) (*big.Int, error)
}

var (
	_ Interpolator = Rational{}
	_ Interpolator = Modular{}
)

// Rational interpolates with exact arbitrary-precision rationals. A sum that
// is not an integer is truncated toward zero, unless Strict is set.
type Rational struct {
	Strict bool
}

func (Rational) Name() string { return "rational" }

func (r Rational) ConstantTerm(points []Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points provided", ErrInsufficientShares)
	}

	sum := new(big.Rat)
	for i, pI := range points {
		// l_i(0) = prod (0 - x_j) / (x_i - x_j)
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, pJ := range points {
			if i == j {
				continue
			}
			num.Mul(num, new(big.Int).Neg(pJ.X))
			den.Mul(den, new(big.Int).Sub(pI.X, pJ.X))
		}
		if den.Sign() == 0 {
			return nil, fmt.Errorf("%w: zero denominator at x=%s", ErrDegenerateInterpolation, pI.X)
		}
		num.Mul(num, pI.Y)
		sum.Add(sum, new(big.Rat).SetFrac(num, den))
	}

	if sum.IsInt() {
		return new(big.Int).Set(sum.Num()), nil
	}
	if r.Strict {
		return nil, fmt.Errorf("%w: non-integer constant term %s", ErrDegenerateInterpolation, sum.RatString())
	}
	return new(big.Int).Quo(sum.Num(), sum.Denom()), nil
}

// Modular interpolates in the prime field F. A nil Field means field.Default().
// The result is canonicalized to the magnitude of the signed representative
// nearest zero, so it only equals the true secret when |secret| < P/2.
type Modular struct {
	Field *field.Field
}

func (Modular) Name() string { return "modular" }

func (m Modular) ConstantTerm(points []Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points provided", ErrInsufficientShares)
	}
	f := m.Field
	if f == nil {
		f = field.Default()
	}

	res := new(big.Int)
	for i, pI := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, pJ := range points {
			if i == j {
				continue
			}
			num = f.Mul(num, f.Neg(pJ.X))
			den = f.Mul(den, f.Sub(pI.X, pJ.X))
		}
		if den.Sign() == 0 {
			return nil, fmt.Errorf("%w: denominator is 0 mod P at x=%s", ErrDegenerateInterpolation, pI.X)
		}
		inv, err := f.Inv(den)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDegenerateInterpolation, err)
		}
		term := f.Mul(f.Mul(pI.Y, num), inv)
		res = f.Add(res, term)
	}
	return f.Canonical(res), nil
}
