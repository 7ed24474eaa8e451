package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	config "github.com/thirdweb-dev/chainscan/configs"
)

type BadgerConnector struct {
	kvReader
	db *badger.DB
}

func NewBadgerConnector(cfg *config.StoreConfig) (*BadgerConnector, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	opts := badger.DefaultOptions(cfg.Path)
	opts.ReadOnly = true
	if cfg.CacheSizeMB > 0 {
		opts.BlockCacheSize = int64(cfg.CacheSizeMB) << 20
	}

	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	bc := &BadgerConnector{db: db}
	bc.kvReader = kvReader{get: func(key []byte) ([]byte, bool, error) {
		var (
			val   []byte
			found bool
		)
		err := db.View(func(txn *badger.Txn) error {
			var err error
			val, found, err = badgerGet(txn, key)
			return err
		})
		return val, found, err
	}}
	return bc, nil
}

func badgerGet(txn *badger.Txn, key []byte) ([]byte, bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// LatestState holds a read transaction open; badger read transactions are snapshots.
func (bc *BadgerConnector) LatestState() (IStateSnapshot, error) {
	txn := bc.db.NewTransaction(false)
	return stateReader{
		get: func(key []byte) ([]byte, bool, error) {
			return badgerGet(txn, key)
		},
		release: func() error {
			txn.Discard()
			return nil
		},
	}, nil
}

func (bc *BadgerConnector) Close() error {
	return bc.db.Close()
}
