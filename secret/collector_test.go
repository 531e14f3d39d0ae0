package secret

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/izouxv/goShamir/internal/testpoly"
	"github.com/izouxv/goShamir/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollector(t *testing.T) {
	n, k := 5, 3
	shares := testpoly.Random(t, big.NewInt(4242), k).Shares(16, 1, 2, 3, 4, 5)

	collector, err := NewCollector(n, k, zap.NewExample())
	require.NoError(t, err)

	got, err := collector.Add("req", shares[4])
	require.NoError(t, err)
	assert.Nil(t, got, "should not recover after 1 share")

	got, err = collector.Add("req", shares[1])
	require.NoError(t, err)
	assert.Nil(t, got, "should not recover after 2 shares")
	assert.Equal(t, 2, collector.Pending("req"))

	_, err = collector.Add("req", shares[4])
	assert.ErrorIs(t, err, shamir.ErrDuplicateXCoordinate)

	_, err = collector.Add("req", shamir.Share{Index: 6, Base: 10, Value: "1"})
	assert.ErrorIs(t, err, ErrShareOutOfRange)

	_, err = collector.Add("req", shamir.Share{Index: 3, Base: 10, Value: "z"})
	assert.ErrorIs(t, err, shamir.ErrInvalidDigit)

	got, err = collector.Add("req", shares[2])
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4242), got.Int64())

	collector.mu.Lock()
	assert.Empty(t, collector.collected, "pending shares are dropped after recovery")
	collector.mu.Unlock()
}

func TestCollectorConcurrent(t *testing.T) {
	n, k := 6, 4
	collector, err := NewCollector(n, k, nil, WithInterpolator(shamir.Rational{}))
	require.NoError(t, err)

	const requests = 8
	secrets := make([]*big.Int, requests)
	results := make([]*big.Int, requests)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for r := 0; r < requests; r++ {
		secrets[r] = big.NewInt(int64(1000 + r))
		shares := testpoly.Random(t, secrets[r], k).Shares(10, 1, 2, 3, 4)
		id := fmt.Sprintf("req-%d", r)
		for _, s := range shares {
			wg.Add(1)
			go func(r int, s shamir.Share) {
				defer wg.Done()
				got, err := collector.Add(id, s)
				assert.NoError(t, err)
				if got != nil {
					mu.Lock()
					results[r] = got
					mu.Unlock()
				}
			}(r, s)
		}
	}
	wg.Wait()

	for r := range secrets {
		require.NotNil(t, results[r], "request %d", r)
		assert.Equal(t, 0, secrets[r].Cmp(results[r]), "request %d", r)
	}
}

func TestNewCollectorInvalidThreshold(t *testing.T) {
	_, err := NewCollector(3, 0, nil)
	assert.ErrorIs(t, err, shamir.ErrInvalidThreshold)

	_, err = NewCollector(2, 3, nil)
	assert.ErrorIs(t, err, shamir.ErrInvalidThreshold)
}
