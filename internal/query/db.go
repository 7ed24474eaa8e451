package query

import (
	"context"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/metrics"
	"github.com/thirdweb-dev/chainscan/internal/provider"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

// IBlockStore is the store capability the query layer is built on.
type IBlockStore interface {
	HeaderLookup
	BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error)
	TransactionsByBlock(n uint64, indices common.BlockBodyIndices) ([]*types.Transaction, error)
	ReceiptsByBlock(n uint64, indices common.BlockBodyIndices) ([]*types.Receipt, error)
	TransactionNumberByHash(hash gethCommon.Hash) (uint64, bool, error)
	ReceiptByNumber(record uint64) (*types.Receipt, error)
	LatestState() (storage.IStateSnapshot, error)
}

// Database owns an open store and the block range detected when it was opened. The range
// is never refreshed, so blocks written after open are only visible through a new Database.
type Database struct {
	store      IBlockStore
	blockRange common.BlockRange
	archive    *archive.Archive
	close      func() error
}

// NewDatabase detects the block range of store and wraps it.
func NewDatabase(store IBlockStore, probeCandidates []uint64) (*Database, error) {
	r, err := DetectRange(store, probeCandidates)
	if err != nil {
		return nil, err
	}
	metrics.LatestBlock.Set(float64(r.Latest))
	metrics.EarliestBlock.Set(float64(r.Earliest))
	return &Database{store: store, blockRange: r}, nil
}

// Open opens the tiered store described by cfg and detects its range.
func Open(ctx context.Context, cfg *config.Config) (*Database, error) {
	p, err := provider.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db, err := NewDatabase(p, cfg.Range.ProbeCandidates)
	if err != nil {
		p.Close()
		return nil, err
	}
	db.archive = p.Archive()
	db.close = p.Close
	return db, nil
}

func (d *Database) Range() common.BlockRange {
	return d.blockRange
}

// Store exposes the underlying store for callers that bypass the range checks.
func (d *Database) Store() IBlockStore {
	return d.store
}

// Archive returns the archive tier the database was opened with, if any.
func (d *Database) Archive() *archive.Archive {
	return d.archive
}

func (d *Database) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}
