package analyzer

import (
	"sort"

	"github.com/thirdweb-dev/chainscan/internal/common"
)

// SampleBlocks picks up to count blocks spread back from the latest block, always including
// the latest one. The result is ascending and has no duplicates.
func SampleBlocks(r common.BlockRange, count int) []uint64 {
	if count <= 0 {
		return nil
	}
	blocks := []uint64{r.Latest}
	if count == 1 {
		return blocks
	}

	step := uint64(1)
	if size := r.Size(); size > uint64(count) {
		step = size / uint64(count)
	}
	seen := map[uint64]bool{r.Latest: true}
	for i := uint64(1); i < uint64(count); i++ {
		var n uint64
		if back := i * step; back < r.Latest {
			n = r.Latest - back
		}
		if n < r.Earliest || seen[n] {
			continue
		}
		seen[n] = true
		blocks = append(blocks, n)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })
	return blocks
}

type ReceiptStats struct {
	Blocks             []uint64 `json:"blocks"`
	Receipts           int      `json:"receipts"`
	Successful         int      `json:"successful"`
	Failed             int      `json:"failed"`
	TotalCumulativeGas uint64   `json:"total_cumulative_gas"`
}

// Add folds one block's receipts into the totals.
func (s *ReceiptStats) Add(block uint64, receipts []common.ReceiptSummary) {
	s.Blocks = append(s.Blocks, block)
	for _, r := range receipts {
		s.Receipts++
		s.TotalCumulativeGas += r.CumulativeGasUsed
		if r.Success {
			s.Successful++
		} else {
			s.Failed++
		}
	}
}

// SuccessRate is the percentage of successful receipts; ok is false when no receipt was seen.
func (s *ReceiptStats) SuccessRate() (rate float64, ok bool) {
	total := s.Successful + s.Failed
	if total == 0 {
		return 0, false
	}
	return float64(s.Successful) / float64(total) * 100, true
}
