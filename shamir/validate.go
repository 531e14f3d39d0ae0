package shamir

import (
	"fmt"
)

// Validate checks that the points have pairwise distinct x coordinates and
// that at least k of them are available.
func Validate(points []Point, k int) error {
	if k < 1 {
		return fmt.Errorf("%w: k=%d", ErrInvalidThreshold, k)
	}
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		key := p.X.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: x=%s", ErrDuplicateXCoordinate, key)
		}
		seen[key] = struct{}{}
	}
	if len(points) < k {
		return fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(points))
	}
	return nil
}
