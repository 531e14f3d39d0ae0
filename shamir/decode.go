package shamir

import (
	"fmt"
	"math/big"
)

const (
	MinBase = 2
	MaxBase = 16
)

// Decode reads digits as a big-endian number in the given base. Digits above 9
// are the letters a-f in either case.
func Decode(base int, digits string) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if digits == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	res := new(big.Int)
	for i := 0; i < len(digits); i++ {
		v := digitValue(digits[i])
		if v < 0 || v >= base {
			return nil, fmt.Errorf("%w: %q at offset %d for base %d", ErrInvalidDigit, digits[i], i, base)
		}
		res.Mul(res, b)
		res.Add(res, d.SetInt64(int64(v)))
	}
	return res, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
