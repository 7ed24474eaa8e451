package provider

import (
	"context"
	"errors"
	"fmt"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/source"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

// Provider is the tiered store handle. Headers, transactions and receipts are read from the
// key/value tier first and from the archive when the key/value tier does not hold them.
// Body indices, hash lookups and state only exist in the key/value tier.
type Provider struct {
	kv      storage.IKeyValueStorage
	archive *archive.Archive
}

// New combines an open key/value store with an optional archive.
func New(kv storage.IKeyValueStorage, arc *archive.Archive) *Provider {
	return &Provider{kv: kv, archive: arc}
}

// Open opens both tiers described by cfg. When a remote archive is configured, missing
// segment files are downloaded into the archive directory first.
func Open(ctx context.Context, cfg *config.Config) (*Provider, error) {
	kv, err := storage.NewConnector(&cfg.Store)
	if err != nil {
		return nil, err
	}

	if cfg.Archive.Dir == "" {
		log.Debug().Msg("No archive directory configured, serving from the key/value tier only")
		return New(kv, nil), nil
	}

	if cfg.Archive.S3 != nil {
		var src source.ISegmentSource
		src, err = source.NewS3Source(ctx, cfg.Archive.S3)
		if err == nil {
			_, err = src.Sync(ctx, cfg.Archive.Dir)
		}
		if err != nil {
			kv.Close()
			return nil, common.NewStoreAccessError("sync archive", err)
		}
	}

	arc, err := archive.Open(cfg.Archive.Dir, cfg.Archive.Compressed)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return New(kv, arc), nil
}

// Archive returns the archive tier, or nil when none is open.
func (p *Provider) Archive() *archive.Archive {
	return p.archive
}

func (p *Provider) KeyValue() storage.IKeyValueStorage {
	return p.kv
}

// BestBlockNumber returns the key/value tier's last block, falling back to the highest
// archived header.
func (p *Provider) BestBlockNumber() (uint64, error) {
	n, found, err := p.kv.LastBlockNumber()
	if err != nil {
		return 0, err
	}
	if found {
		return n, nil
	}
	if p.archive != nil {
		if n, ok := p.archive.HighestBlock(archive.KindHeaders); ok {
			return n, nil
		}
	}
	return 0, common.NewNotFoundError("best block number", "store has no best block")
}

func (p *Provider) HeaderByNumber(n uint64) (*types.Header, error) {
	h, err := p.kv.HeaderByNumber(n)
	if err != nil || h != nil || p.archive == nil {
		return h, err
	}

	jar, err := p.archive.SegmentForBlock(archive.KindHeaders, n)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	raw, found, err := jar.Cursor().RecordAt(n)
	if err != nil || !found {
		return nil, err
	}
	h, err = storage.DecodeHeader(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read archived header", err).AtBlock(n)
	}
	return h, nil
}

func (p *Provider) BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error) {
	return p.kv.BlockBodyIndices(n)
}

func (p *Provider) TransactionNumberByHash(hash gethCommon.Hash) (uint64, bool, error) {
	return p.kv.TransactionNumberByHash(hash)
}

func (p *Provider) TransactionByNumber(record uint64) (*types.Transaction, error) {
	tx, err := p.kv.TransactionByNumber(record)
	if err != nil || tx != nil {
		return tx, err
	}
	raw, err := p.archivedRecord(archive.KindTransactions, record)
	if err != nil || raw == nil {
		return nil, err
	}
	tx, err = storage.DecodeTransaction(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read archived transaction", err).AtRecord(record)
	}
	return tx, nil
}

func (p *Provider) ReceiptByNumber(record uint64) (*types.Receipt, error) {
	receipt, err := p.kv.ReceiptByNumber(record)
	if err != nil || receipt != nil {
		return receipt, err
	}
	raw, err := p.archivedRecord(archive.KindReceipts, record)
	if err != nil || raw == nil {
		return nil, err
	}
	receipt, err = storage.DecodeReceipt(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read archived receipt", err).AtRecord(record)
	}
	return receipt, nil
}

func (p *Provider) archivedRecord(kind archive.SegmentKind, record uint64) ([]byte, error) {
	if p.archive == nil {
		return nil, nil
	}
	jar, err := p.archive.SegmentForRecord(kind, record)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	raw, _, err := jar.Cursor().RecordAt(record)
	return raw, err
}

// TransactionsByBlock returns the block's transactions in record order.
func (p *Provider) TransactionsByBlock(n uint64, indices common.BlockBodyIndices) ([]*types.Transaction, error) {
	return readBlock(p, archive.KindTransactions, n, indices, p.kv.TransactionByNumber, storage.DecodeTransaction)
}

// ReceiptsByBlock returns the block's receipts in record order.
func (p *Provider) ReceiptsByBlock(n uint64, indices common.BlockBodyIndices) ([]*types.Receipt, error) {
	return readBlock(p, archive.KindReceipts, n, indices, p.kv.ReceiptByNumber, storage.DecodeReceipt)
}

// readBlock resolves every record of a block, reading the archive only for records the
// key/value tier lacks. A record absent from both tiers makes the block inconsistent.
func readBlock[T any](
	p *Provider,
	kind archive.SegmentKind,
	n uint64,
	indices common.BlockBodyIndices,
	kvGet func(uint64) (*T, error),
	decode func([]byte) (*T, error),
) ([]*T, error) {
	if err := indices.Validate(); err != nil {
		return nil, common.NewStoreAccessError(fmt.Sprintf("read %s", kind), err).AtBlock(n)
	}
	out := make([]*T, indices.RecordCount)
	var missing []uint64
	for i := uint64(0); i < indices.RecordCount; i++ {
		record := indices.FirstRecord + i
		v, err := kvGet(record)
		if err != nil {
			return nil, err
		}
		if v == nil {
			missing = append(missing, record)
			continue
		}
		out[i] = v
	}
	if len(missing) == 0 {
		return out, nil
	}

	if p.archive != nil {
		res, err := p.archive.ReadBlock(kind, n, indices)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		if res != nil {
			for _, item := range res.Records {
				i := item.Number - indices.FirstRecord
				if out[i] != nil {
					continue
				}
				v, err := decode(item.Data)
				if err != nil {
					return nil, common.NewStoreAccessError(fmt.Sprintf("read archived %s", kind), err).AtBlock(n).AtRecord(item.Number)
				}
				out[i] = v
			}
		}
	}

	for i, v := range out {
		if v == nil {
			record := indices.FirstRecord + uint64(i)
			return nil, common.NewStoreAccessError(fmt.Sprintf("read %s", kind),
				fmt.Errorf("record missing from both tiers, block declares [%d, %d)", indices.FirstRecord, indices.EndRecord())).
				AtBlock(n).AtRecord(record)
		}
	}
	return out, nil
}

// LatestState opens a snapshot of the latest state. Callers must close it.
func (p *Provider) LatestState() (storage.IStateSnapshot, error) {
	return p.kv.LatestState()
}

func (p *Provider) Close() error {
	var errs []error
	if p.archive != nil {
		errs = append(errs, p.archive.Close())
	}
	errs = append(errs, p.kv.Close())
	return errors.Join(errs...)
}
