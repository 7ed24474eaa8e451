// Package scan reads whole runs of archive records, bypassing the per-block query surface.
package scan

import (
	"fmt"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

type BodyIndexReader interface {
	BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error)
}

type TxLine struct {
	Block  uint64
	Record uint64
	Hash   gethCommon.Hash
	To     *gethCommon.Address
}

func (l TxLine) String() string {
	to := "create"
	if l.To != nil {
		to = l.To.Hex()
	}
	return fmt.Sprintf("block=%d tx_num=%d hash=%s to=%s", l.Block, l.Record, l.Hash.Hex(), to)
}

// Transactions reads the archived transactions of block, locating them through the block's
// body indices. Missing records are logged and skipped; a block yielding nothing is an error.
func Transactions(indexReader BodyIndexReader, arc *archive.Archive, block uint64) ([]TxLine, error) {
	indices, err := indexReader.BlockBodyIndices(block)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		return nil, common.NewNotFoundError("scan transactions", "no body indices for block %d", block).AtBlock(block)
	}

	res, err := arc.ReadBlock(archive.KindTransactions, block, *indices)
	if err != nil {
		return nil, err
	}

	lines := make([]TxLine, 0, len(res.Records))
	for _, item := range res.Records {
		tx, err := storage.DecodeTransaction(item.Data)
		if err != nil {
			return nil, common.NewStoreAccessError("scan transactions", err).AtBlock(block).AtRecord(item.Number)
		}
		lines = append(lines, TxLine{Block: block, Record: item.Number, Hash: tx.Hash(), To: tx.To()})
	}
	if len(lines) == 0 {
		return nil, common.NewNotFoundError("scan transactions",
			"no transactions for block %d (record range %d..%d)", block, indices.FirstRecord, indices.EndRecord()).AtBlock(block)
	}
	return lines, nil
}

type ReceiptLine struct {
	Record  uint64
	Summary common.ReceiptSummary
}

func (l ReceiptLine) String() string {
	return fmt.Sprintf("tx_num=%d tx_type=%s success=%t cumulative_gas_used=%d logs=%d",
		l.Record, common.TxTypeName(l.Summary.TxType), l.Summary.Success, l.Summary.CumulativeGasUsed, l.Summary.LogCount)
}

// Receipts walks every record of the receipts segment holding block, starting at the
// segment's declared first record, and hands each summary to fn. It returns the number of
// receipts visited.
func Receipts(arc *archive.Archive, block uint64, fn func(ReceiptLine) error) (int, error) {
	jar, err := arc.SegmentForBlock(archive.KindReceipts, block)
	if err != nil {
		return 0, err
	}
	header := jar.Header()
	log.Debug().Str("segment", jar.Path()).Uint64("first_record", header.RecordStart).Uint64("records", header.RecordCount).
		Msg("Scanning receipts segment")

	visited := 0
	it := jar.Cursor().Records(header.RecordEnd())
	for it.Next() {
		item := it.Item()
		if item.Missing {
			log.Warn().Uint64("record", item.Number).Msg("Receipt missing from segment")
			continue
		}
		receipt, err := storage.DecodeReceipt(item.Data)
		if err != nil {
			return visited, common.NewStoreAccessError("scan receipts", err).AtRecord(item.Number)
		}
		if err := fn(ReceiptLine{Record: item.Number, Summary: common.SummarizeReceipt(receipt)}); err != nil {
			return visited, err
		}
		visited++
	}
	return visited, it.Err()
}
