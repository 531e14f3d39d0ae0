package shamir

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidDigit is returned when a share value has a character that is not a digit of its base.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidBase is returned for bases outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
	// ErrInsufficientShares is returned when fewer usable shares than the threshold are present.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrDuplicateXCoordinate is returned when two shares collide on the same index.
	ErrDuplicateXCoordinate = errors.New("duplicate x coordinate")
	// ErrDegenerateInterpolation is returned when a Lagrange denominator cannot be divided by.
	ErrDegenerateInterpolation = errors.New("degenerate interpolation")
	// ErrInvalidThreshold is returned when k < 1.
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Share is one encoded point of a secret-shared polynomial.
type Share struct {
	Index int    // x coordinate, 1-based
	Base  int    // radix of Value, in [2,16]
	Value string // y coordinate as digits in Base
}

// Point is the decoded form of a Share.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Point decodes the share value.
func (s Share) Point() (Point, error) {
	y, err := Decode(s.Base, s.Value)
	if err != nil {
		return Point{}, err
	}
	return Point{X: big.NewInt(int64(s.Index)), Y: y}, nil
}
