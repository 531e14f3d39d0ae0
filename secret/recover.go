package secret

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/shamir"
)

// Strategy names accepted by NewInterpolator.
const (
	StrategyModular  = "modular"
	StrategyRational = "rational"
)

type options struct {
	interpolator shamir.Interpolator
}

// Option configures Recover.
type Option func(*options)

// WithInterpolator selects the numeric strategy. The default is shamir.Modular
// over field.Default().
func WithInterpolator(ip shamir.Interpolator) Option {
	return func(o *options) {
		o.interpolator = ip
	}
}

// WithModulus selects the modular strategy over f.
func WithModulus(f *field.Field) Option {
	return WithInterpolator(shamir.Modular{Field: f})
}

func buildOptions(opts []Option) *options {
	o := &options{interpolator: shamir.Modular{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewInterpolator resolves a strategy by name. modulus names a registered
// field and is only used by the modular strategy; empty means the default.
// strict only applies to the rational strategy.
func NewInterpolator(strategy, modulus string, strict bool) (shamir.Interpolator, error) {
	switch strategy {
	case StrategyModular, "":
		if modulus == "" {
			modulus = field.DefaultName
		}
		f, err := field.Get(modulus)
		if err != nil {
			return nil, err
		}
		return shamir.Modular{Field: f}, nil
	case StrategyRational:
		return shamir.Rational{Strict: strict}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}

// Recover reconstructs the constant term from the shares with indices in
// [1, n]. Shares outside that range are ignored. The first k shares in
// ascending index order are interpolated, and the magnitude of the result is
// returned.
func Recover(shares []shamir.Share, n, k int, opts ...Option) (*big.Int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", shamir.ErrInvalidThreshold, k)
	}
	if n < k {
		return nil, fmt.Errorf("%w: n=%d is below k=%d", shamir.ErrInsufficientShares, n, k)
	}
	o := buildOptions(opts)

	sorted := make([]shamir.Share, len(shares))
	copy(sorted, shares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	points := make([]shamir.Point, 0, len(sorted))
	for _, s := range sorted {
		if s.Index < 1 || s.Index > n {
			continue
		}
		p, err := s.Point()
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", s.Index, err)
		}
		points = append(points, p)
	}

	if err := shamir.Validate(points, k); err != nil {
		return nil, err
	}

	c, err := o.interpolator.ConstantTerm(points[:k])
	if err != nil {
		return nil, fmt.Errorf("%s interpolation: %w", o.interpolator.Name(), err)
	}
	return c.Abs(c), nil
}
