package query

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/test/mocks"
)

func headerStore(t *testing.T, latest uint64, available func(n uint64) (bool, error)) *mocks.MockIBlockStore {
	store := mocks.NewMockIBlockStore(t)
	store.EXPECT().BestBlockNumber().Return(latest, nil)
	store.EXPECT().HeaderByNumber(mock.Anything).RunAndReturn(func(n uint64) (*types.Header, error) {
		ok, err := available(n)
		if err != nil || !ok {
			return nil, err
		}
		return &types.Header{Number: new(big.Int).SetUint64(n)}, nil
	}).Maybe()
	return store
}

func TestDetectRangeFindsThreshold(t *testing.T) {
	const latest = 20_000
	for _, k := range []uint64{1, 2, 57, 100, 101, 999, 1_000, 5_000, 10_000, 10_001, 19_999, latest} {
		t.Run(fmt.Sprintf("K=%d", k), func(t *testing.T) {
			store := headerStore(t, latest, func(n uint64) (bool, error) { return n >= k, nil })

			r, err := DetectRange(store, config.DefaultProbeCandidates)
			require.NoError(t, err)
			assert.Equal(t, uint64(latest), r.Latest)
			assert.Equal(t, k, r.Earliest)
		})
	}
}

func TestDetectRangeAllCandidatesAvailable(t *testing.T) {
	store := headerStore(t, 50_000, func(n uint64) (bool, error) { return true, nil })

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Earliest)
}

func TestDetectRangeNoCandidateAvailable(t *testing.T) {
	store := headerStore(t, 30_000, func(n uint64) (bool, error) { return n == 30_000, nil })

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, r.Latest, r.Earliest)
}

func TestDetectRangeGapBetweenCandidatesGoesUndetected(t *testing.T) {
	candidates := []uint64{1, 100, 1_000}
	tests := []struct {
		name     string
		missing  func(n uint64) bool
		earliest uint64
	}{
		// the search never lands inside 51..59 and settles below the gap
		{name: "settles below the gap", missing: func(n uint64) bool { return n > 50 && n < 60 }, earliest: 1},
		// the search lands inside 11..59 and settles above the true earliest block
		{name: "settles above the true earliest", missing: func(n uint64) bool { return n > 10 && n < 60 }, earliest: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := headerStore(t, 2_000, func(n uint64) (bool, error) { return !tt.missing(n), nil })

			r, err := DetectRange(store, candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.earliest, r.Earliest)
		})
	}
}

func TestDetectRangeProbeErrorsCountAsMissing(t *testing.T) {
	store := headerStore(t, 20_000, func(n uint64) (bool, error) {
		if n < 700 {
			return false, errors.New("mdbx: page not found")
		}
		return true, nil
	})

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, uint64(700), r.Earliest)
}

func TestDetectRangeSkipsCandidatesAboveLatest(t *testing.T) {
	store := headerStore(t, 150, func(n uint64) (bool, error) { return n >= 3, nil })

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), r.Earliest)
	store.AssertNotCalled(t, "HeaderByNumber", uint64(1_000))
	store.AssertNotCalled(t, "HeaderByNumber", uint64(10_000))
}

func TestDetectRangeEmptyChain(t *testing.T) {
	store := headerStore(t, 0, func(n uint64) (bool, error) { return n == 0, nil })

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), r.Latest)
	assert.Equal(t, uint64(0), r.Earliest)
}

func TestDetectRangeMovesPastGaps(t *testing.T) {
	store := headerStore(t, 20_000, func(n uint64) (bool, error) {
		return (n >= 1 && n <= 50) || n >= 5_001, nil
	})

	r, err := DetectRange(store, config.DefaultProbeCandidates)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_001), r.Earliest)
}

func TestDetectRangeBestBlockIsFatal(t *testing.T) {
	store := mocks.NewMockIBlockStore(t)
	store.EXPECT().BestBlockNumber().Return(uint64(0), errors.New("store closed"))

	_, err := DetectRange(store, config.DefaultProbeCandidates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store closed")
	store.AssertNotCalled(t, "HeaderByNumber", mock.Anything)
}
