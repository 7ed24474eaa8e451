package archive

import (
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// maxPrealloc caps the record slice reserved up front; the declared count comes from the store.
const maxPrealloc = 4096

// BlockRecords is the outcome of reading one block's record range from a segment.
type BlockRecords struct {
	Block   uint64
	Indices common.BlockBodyIndices
	Segment SegmentHeader
	Records []Item
	Missing []uint64
}

// Complete reports whether every record the block declares was observed.
func (r *BlockRecords) Complete() bool {
	return uint64(len(r.Records)) == r.Indices.RecordCount
}

// ReadBlock resolves the segment holding block and reads the block's records
// [indices.FirstRecord, indices.EndRecord()). Absent records are logged and listed in
// Missing rather than failing the read; callers decide whether a short read is acceptable.
// A block that declares records but yields none is a not-found error naming the range.
func (a *Archive) ReadBlock(kind SegmentKind, block uint64, indices common.BlockBodyIndices) (*BlockRecords, error) {
	if err := indices.Validate(); err != nil {
		return nil, common.NewStoreAccessError("read block records", err).AtBlock(block)
	}
	jar, err := a.SegmentForBlock(kind, block)
	if err != nil {
		return nil, err
	}

	cursor := jar.Cursor()
	result := &BlockRecords{
		Block:   block,
		Indices: indices,
		Segment: jar.Header(),
		Records: make([]Item, 0, min(indices.RecordCount, maxPrealloc)),
	}

	if start := cursor.Position(); indices.FirstRecord < start {
		log.Warn().Uint64("block", block).Uint64("first_record", indices.FirstRecord).Uint64("segment_start", start).
			Msg("Block range starts before its segment")
	}
	cursor.Seek(indices.FirstRecord)

	it := cursor.Records(indices.EndRecord())
	for it.Next() {
		item := it.Item()
		if item.Missing {
			log.Warn().Str("kind", string(kind)).Uint64("block", block).Uint64("record", item.Number).Msg("Record missing from segment")
			result.Missing = append(result.Missing, item.Number)
			continue
		}
		result.Records = append(result.Records, item)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	if indices.RecordCount > 0 && len(result.Records) == 0 {
		return nil, common.NewNotFoundError("read block records",
			"no %s records observed for block %d in expected range [%d, %d)",
			kind, block, indices.FirstRecord, indices.EndRecord()).AtBlock(block)
	}
	if !result.Complete() {
		log.Warn().Str("kind", string(kind)).Uint64("block", block).Int("observed", len(result.Records)).
			Uint64("expected", indices.RecordCount).Msg("Incomplete segment read")
	}
	return result, nil
}
