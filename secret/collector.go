package secret

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/izouxv/goShamir/shamir"
	"go.uber.org/zap"
)

// ErrShareOutOfRange is returned by Collector.Add for indices outside [1, n].
var ErrShareOutOfRange = errors.New("share index out of range")

// Collector gathers shares per request and recovers the secret once the
// threshold is met. It is safe for concurrent use.
type Collector struct {
	n, k   int
	opts   []Option
	logger *zap.Logger

	mu sync.Mutex
	// collected holds the pending shares of each request, keyed by request id.
	collected map[string][]shamir.Share
}

// NewCollector creates a collector for k-of-n share sets. A nil logger disables logging.
func NewCollector(n, k int, logger *zap.Logger, opts ...Option) (*Collector, error) {
	if k < 1 || n < k {
		return nil, fmt.Errorf("%w: n=%d k=%d", shamir.ErrInvalidThreshold, n, k)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		n:         n,
		k:         k,
		opts:      opts,
		logger:    logger,
		collected: make(map[string][]shamir.Share),
	}, nil
}

// Add records a share for the request. Until k distinct shares have been
// received it returns a nil secret and no error. When the threshold is met
// the pending shares are dropped and the recovery result is returned.
func (c *Collector) Add(requestID string, share shamir.Share) (*big.Int, error) {
	if share.Index < 1 || share.Index > c.n {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrShareOutOfRange, share.Index, c.n)
	}
	if _, err := share.Point(); err != nil {
		return nil, fmt.Errorf("share %d: %w", share.Index, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.collected[requestID] {
		if existing.Index == share.Index {
			return nil, fmt.Errorf("%w: share %d already received", shamir.ErrDuplicateXCoordinate, share.Index)
		}
	}
	c.collected[requestID] = append(c.collected[requestID], share)
	pending := len(c.collected[requestID])
	c.logger.Debug("share received",
		zap.String("request", requestID),
		zap.Int("index", share.Index),
		zap.Int("pending", pending),
		zap.Int("threshold", c.k))
	if pending < c.k {
		return nil, nil
	}

	shares := c.collected[requestID]
	delete(c.collected, requestID)
	secret, err := Recover(shares, c.n, c.k, c.opts...)
	if err != nil {
		c.logger.Debug("recovery failed", zap.String("request", requestID), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("secret recovered", zap.String("request", requestID))
	return secret, nil
}

// Pending returns how many shares are held for the request.
func (c *Collector) Pending(requestID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.collected[requestID])
}
