package storage

import (
	"fmt"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// getFunc returns a copy of the value stored at key. found is false when the key is absent.
type getFunc func(key []byte) (value []byte, found bool, err error)

// kvReader decodes the schema on top of an engine-specific point lookup.
type kvReader struct {
	get getFunc
}

func (r kvReader) LastBlockNumber() (uint64, bool, error) {
	raw, found, err := r.get(lastBlockKey)
	if err != nil {
		return 0, false, common.NewStoreAccessError("read last block", err)
	}
	if !found {
		return 0, false, nil
	}
	n, err := decodeNumber(raw)
	if err != nil {
		return 0, false, common.NewStoreAccessError("read last block", err)
	}
	return n, true, nil
}

func (r kvReader) HeaderByNumber(n uint64) (*types.Header, error) {
	raw, found, err := r.get(headerKey(n))
	if err != nil {
		return nil, common.NewStoreAccessError("read header", err).AtBlock(n)
	}
	if !found {
		return nil, nil
	}
	h, err := DecodeHeader(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read header", err).AtBlock(n)
	}
	return h, nil
}

func (r kvReader) BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error) {
	raw, found, err := r.get(bodyIndicesKey(n))
	if err != nil {
		return nil, common.NewStoreAccessError("read body indices", err).AtBlock(n)
	}
	if !found {
		return nil, nil
	}
	indices, err := DecodeBodyIndices(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read body indices", err).AtBlock(n)
	}
	return indices, nil
}

func (r kvReader) TransactionByNumber(record uint64) (*types.Transaction, error) {
	raw, found, err := r.get(transactionKey(record))
	if err != nil {
		return nil, common.NewStoreAccessError("read transaction", err).AtRecord(record)
	}
	if !found {
		return nil, nil
	}
	tx, err := DecodeTransaction(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read transaction", err).AtRecord(record)
	}
	return tx, nil
}

func (r kvReader) ReceiptByNumber(record uint64) (*types.Receipt, error) {
	raw, found, err := r.get(receiptKey(record))
	if err != nil {
		return nil, common.NewStoreAccessError("read receipt", err).AtRecord(record)
	}
	if !found {
		return nil, nil
	}
	receipt, err := DecodeReceipt(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read receipt", err).AtRecord(record)
	}
	return receipt, nil
}

func (r kvReader) TransactionNumberByHash(hash gethCommon.Hash) (uint64, bool, error) {
	raw, found, err := r.get(txLookupKey(hash))
	if err != nil {
		return 0, false, common.NewStoreAccessError("read transaction lookup "+hash.Hex(), err)
	}
	if !found {
		return 0, false, nil
	}
	n, err := decodeNumber(raw)
	if err != nil {
		return 0, false, common.NewStoreAccessError("read transaction lookup "+hash.Hex(), err)
	}
	return n, true, nil
}

// stateReader serves account and storage reads from one consistent view.
type stateReader struct {
	get     getFunc
	release func() error
}

func (s stateReader) Account(addr gethCommon.Address) (*common.AccountState, error) {
	raw, found, err := s.get(accountKey(addr))
	if err != nil {
		return nil, common.NewStoreAccessError("read account "+addr.Hex(), err)
	}
	if !found {
		return nil, nil
	}
	acc, err := DecodeAccount(raw)
	if err != nil {
		return nil, common.NewStoreAccessError("read account "+addr.Hex(), err)
	}
	return &common.AccountState{
		Address:     addr,
		Balance:     acc.Balance,
		Nonce:       acc.Nonce,
		CodePresent: len(acc.CodeHash) > 0 && gethCommon.BytesToHash(acc.CodeHash) != types.EmptyCodeHash,
	}, nil
}

func (s stateReader) Storage(addr gethCommon.Address, slot gethCommon.Hash) (*common.StorageSlot, error) {
	raw, found, err := s.get(storageKey(addr, slot))
	if err != nil {
		return nil, common.NewStoreAccessError(fmt.Sprintf("read storage %s slot %s", addr.Hex(), slot.Hex()), err)
	}
	if !found {
		return nil, nil
	}
	value, err := DecodeStorageValue(raw)
	if err != nil {
		return nil, common.NewStoreAccessError(fmt.Sprintf("read storage %s slot %s", addr.Hex(), slot.Hex()), err)
	}
	return &common.StorageSlot{Key: slot, Value: value}, nil
}

func (s stateReader) Close() error {
	if s.release == nil {
		return nil
	}
	return s.release()
}
