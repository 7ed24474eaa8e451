package query

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/metrics"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

func observe(op string, err error) {
	metrics.Queries.WithLabelValues(op).Inc()
	if common.KindOf(err) == common.ErrorKindStoreAccess {
		metrics.StoreErrors.WithLabelValues(op).Inc()
	}
}

// belowRange reports blocks under the earliest available block. Such requests are answered
// without touching the store.
func (d *Database) belowRange(op string, n uint64) bool {
	if n >= d.blockRange.Earliest {
		return false
	}
	log.Debug().Str("op", op).Uint64("block", n).Uint64("earliest", d.blockRange.Earliest).Msg("Block is before earliest available")
	return true
}

// GetBlockData returns the header and transaction count of block n, or nil when the block is
// below the range or has no header. A header without body indices has a zero count.
func (d *Database) GetBlockData(n uint64) (data *common.BlockData, err error) {
	defer func() { observe("get_block_data", err) }()
	if d.belowRange("get_block_data", n) {
		return nil, nil
	}

	header, err := d.store.HeaderByNumber(n)
	if err != nil {
		return nil, err
	}
	if header == nil {
		log.Debug().Uint64("block", n).Msg("Header not found")
		return nil, nil
	}

	indices, err := d.store.BlockBodyIndices(n)
	if err != nil {
		return nil, err
	}
	var txCount uint64
	if indices != nil {
		txCount = indices.RecordCount
	}

	data = &common.BlockData{Header: common.NewBlockHeader(header), TxCount: txCount}
	log.Info().Uint64("block", n).Str("hash", data.Header.Hash.Hex()).Uint64("tx_count", txCount).Msg("Fetched block data")
	return data, nil
}

// GetTransactions returns the transactions of block n in block order. The result is empty
// below the range or when the block has no body indices.
func (d *Database) GetTransactions(n uint64) (txs []*types.Transaction, err error) {
	defer func() { observe("get_transactions", err) }()
	if d.belowRange("get_transactions", n) {
		return nil, nil
	}

	indices, err := d.store.BlockBodyIndices(n)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		log.Debug().Uint64("block", n).Msg("Block body not found")
		return nil, nil
	}

	txs, err = d.store.TransactionsByBlock(n, *indices)
	if err != nil {
		return nil, err
	}
	log.Info().Uint64("block", n).Int("count", len(txs)).Msg("Fetched transactions for block")
	return txs, nil
}

// GetReceipts returns the receipts of block n in block order, under the same availability
// rules as GetTransactions.
func (d *Database) GetReceipts(n uint64) (receipts []*types.Receipt, err error) {
	defer func() { observe("get_receipts", err) }()
	if d.belowRange("get_receipts", n) {
		return nil, nil
	}

	indices, err := d.store.BlockBodyIndices(n)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		log.Debug().Uint64("block", n).Msg("Block body not found")
		return nil, nil
	}

	return d.store.ReceiptsByBlock(n, *indices)
}

// GetReceiptByHash returns the receipt of a transaction, or nil when the hash is unknown or
// its record has no receipt.
func (d *Database) GetReceiptByHash(hash gethCommon.Hash) (receipt *types.Receipt, err error) {
	defer func() { observe("get_receipt_by_hash", err) }()

	record, found, err := d.store.TransactionNumberByHash(hash)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Debug().Str("hash", hash.Hex()).Msg("Transaction hash not found")
		return nil, nil
	}
	return d.store.ReceiptByNumber(record)
}

// LatestState opens a snapshot of the latest state. Reads that must agree with each other
// should share one snapshot. Callers close it.
func (d *Database) LatestState() (storage.IStateSnapshot, error) {
	return d.store.LatestState()
}

// GetAccount reads addr from a fresh latest-state snapshot. Historical state is not served.
func (d *Database) GetAccount(addr gethCommon.Address) (account *common.AccountState, err error) {
	defer func() { observe("get_account", err) }()

	state, err := d.store.LatestState()
	if err != nil {
		return nil, err
	}
	defer state.Close()
	return state.Account(addr)
}

// GetStorage reads one storage slot from a fresh latest-state snapshot; nil means not found.
func (d *Database) GetStorage(addr gethCommon.Address, slot gethCommon.Hash) (value *common.StorageSlot, err error) {
	defer func() { observe("get_storage", err) }()

	state, err := d.store.LatestState()
	if err != nil {
		return nil, err
	}
	defer state.Close()
	return state.Storage(addr, slot)
}
