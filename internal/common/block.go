package common

import (
	"fmt"
	"math"
	"time"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BlockRange is the usable block range of an open store. Computed once at open, never updated.
type BlockRange struct {
	Latest   uint64 `json:"latest"`
	Earliest uint64 `json:"earliest"`
}

// Contains reports whether n is inside [Earliest, Latest].
func (r BlockRange) Contains(n uint64) bool {
	return n >= r.Earliest && n <= r.Latest
}

func (r BlockRange) Size() uint64 {
	if r.Latest < r.Earliest {
		return 0
	}
	return r.Latest - r.Earliest + 1
}

type BlockHeader struct {
	Number     uint64          `json:"number"`
	Hash       gethCommon.Hash `json:"hash"`
	ParentHash gethCommon.Hash `json:"parent_hash"`
	Timestamp  uint64          `json:"timestamp"`
	GasUsed    uint64          `json:"gas_used"`
	StateRoot  gethCommon.Hash `json:"state_root"`
}

func NewBlockHeader(h *types.Header) BlockHeader {
	return BlockHeader{
		Number:     h.Number.Uint64(),
		Hash:       h.Hash(),
		ParentHash: h.ParentHash,
		Timestamp:  h.Time,
		GasUsed:    h.GasUsed,
		StateRoot:  h.Root,
	}
}

func (h BlockHeader) Time() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

// BlockBodyIndices maps a block to the half-open record range [FirstRecord, FirstRecord+RecordCount).
type BlockBodyIndices struct {
	FirstRecord uint64 `json:"first_record_number"`
	RecordCount uint64 `json:"record_count"`
}

// MaxBlockRecords bounds the records a single block may declare. Indices above it can only
// come from a corrupt entry.
const MaxBlockRecords = 1 << 20

// Validate rejects indices whose record range overflows or exceeds MaxBlockRecords.
func (b BlockBodyIndices) Validate() error {
	if b.RecordCount > MaxBlockRecords {
		return fmt.Errorf("block declares %d records, limit is %d", b.RecordCount, MaxBlockRecords)
	}
	if b.FirstRecord > math.MaxUint64-b.RecordCount {
		return fmt.Errorf("record range %d+%d overflows", b.FirstRecord, b.RecordCount)
	}
	return nil
}

// EndRecord is the first record number past the block.
func (b BlockBodyIndices) EndRecord() uint64 {
	return b.FirstRecord + b.RecordCount
}

func (b BlockBodyIndices) ContainsRecord(n uint64) bool {
	return n >= b.FirstRecord && n < b.EndRecord()
}

type BlockData struct {
	Header  BlockHeader `json:"header"`
	TxCount uint64      `json:"tx_count"`
}
