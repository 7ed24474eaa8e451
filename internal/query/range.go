package query

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// HeaderLookup is all range detection needs from a store.
type HeaderLookup interface {
	BestBlockNumber() (uint64, error)
	HeaderByNumber(n uint64) (*types.Header, error)
}

// DetectRange finds the latest block and the earliest block with a resolvable header.
// Candidates are probed in ascending order until one is missing; a binary search below the
// last resolvable candidate then pins the earliest block. Only the best block lookup is fatal,
// lookup errors while probing count as missing headers. Header availability is sampled, not
// scanned, so a gap between candidates is not detected; see skipGaps.
func DetectRange(store HeaderLookup, candidates []uint64) (common.BlockRange, error) {
	latest, err := store.BestBlockNumber()
	if err != nil {
		return common.BlockRange{}, fmt.Errorf("failed to get latest block number: %w", err)
	}
	log.Info().Uint64("latest_block", latest).Msg("Detected latest block")

	probes := sortedCandidates(candidates)
	earliest := latest
	for _, n := range probes {
		if n > latest {
			continue
		}
		if !headerAvailable(store, n) {
			break
		}
		earliest = n
	}

	if earliest > 1 {
		earliest = searchEarliest(store, 1, earliest)
	}

	earliest = skipGaps(store, probes, earliest, latest)

	log.Info().Uint64("earliest_block", earliest).Uint64("latest_block", latest).Msg("Detected available block range")
	return common.BlockRange{Latest: latest, Earliest: earliest}, nil
}

// searchEarliest returns the smallest n in [low, high] with a resolvable header, assuming
// availability is monotonic in that interval. It returns high when nothing below high resolves.
func searchEarliest(store HeaderLookup, low, high uint64) uint64 {
	for low < high {
		mid := low + (high-low)/2
		if headerAvailable(store, mid) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

// skipGaps checks the candidates above earliest. If any of them is missing the store has
// disjoint ranges, and earliest moves up to the start of the run that ends at latest.
// Only gaps that cover a candidate are seen. A gap lying strictly between two resolvable
// candidates goes undetected: the binary search assumes availability is monotonic, so it may
// settle above the true earliest block or below the gap. Reads inside such a gap come back
// as not found.
func skipGaps(store HeaderLookup, probes []uint64, earliest, latest uint64) uint64 {
	var highestMissing uint64
	found := false
	for _, n := range probes {
		if n <= earliest || n > latest {
			continue
		}
		if !headerAvailable(store, n) {
			highestMissing, found = n, true
		}
	}
	if !found {
		return earliest
	}

	adjusted := searchEarliest(store, highestMissing+1, latest)
	log.Warn().Uint64("detected_earliest", earliest).Uint64("missing_block", highestMissing).Uint64("earliest_block", adjusted).
		Msg("Store has gaps in its header history, using the range that ends at the latest block")
	return adjusted
}

func headerAvailable(store HeaderLookup, n uint64) bool {
	h, err := store.HeaderByNumber(n)
	if err != nil {
		log.Warn().Err(err).Uint64("block", n).Msg("Block access error")
		return false
	}
	if h == nil {
		log.Debug().Uint64("block", n).Msg("Block not found")
		return false
	}
	log.Debug().Uint64("block", n).Msg("Block available")
	return true
}

func sortedCandidates(candidates []uint64) []uint64 {
	out := append([]uint64{}, candidates...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
