package storage

import (
	"fmt"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// IKeyValueStorage is the read-only key/value tier. Lookups return nil (or found=false)
// for absent entries and a store access error for engine or decode failures.
type IKeyValueStorage interface {
	LastBlockNumber() (uint64, bool, error)
	HeaderByNumber(n uint64) (*types.Header, error)
	BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error)
	TransactionByNumber(record uint64) (*types.Transaction, error)
	ReceiptByNumber(record uint64) (*types.Receipt, error)
	TransactionNumberByHash(hash gethCommon.Hash) (uint64, bool, error)
	LatestState() (IStateSnapshot, error)
	Close() error
}

// IStateSnapshot is a point-in-time view of the latest state.
type IStateSnapshot interface {
	Account(addr gethCommon.Address) (*common.AccountState, error)
	Storage(addr gethCommon.Address, slot gethCommon.Hash) (*common.StorageSlot, error)
	Close() error
}

func NewConnector(cfg *config.StoreConfig) (IKeyValueStorage, error) {
	var conn IKeyValueStorage
	var err error
	switch cfg.Engine {
	case config.StoreEnginePebble, "":
		conn, err = NewPebbleConnector(cfg)
	case config.StoreEngineBadger:
		conn, err = NewBadgerConnector(cfg)
	case config.StoreEngineMemory:
		conn, err = NewMemoryConnector(nil), nil
	default:
		return nil, fmt.Errorf("no storage driver for engine %q", cfg.Engine)
	}
	if err != nil {
		return nil, common.NewStoreAccessError("open store", err)
	}
	return conn, nil
}
