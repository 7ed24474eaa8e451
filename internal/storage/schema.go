package storage

import (
	"encoding/binary"
	"fmt"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// Key layout of the key/value tier. Numbers are 8-byte big-endian so keys sort in block order.
var (
	lastBlockKey = []byte("LastBlock")

	headerPrefix      = []byte("h")
	bodyIndicesPrefix = []byte("b")
	transactionPrefix = []byte("t")
	receiptPrefix     = []byte("r")
	txLookupPrefix    = []byte("l")
	accountPrefix     = []byte("a")
	storagePrefix     = []byte("o")
)

func encodeNumber(n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return b[:]
}

func numberKey(prefix []byte, n uint64) []byte {
	return append(append([]byte{}, prefix...), encodeNumber(n)...)
}

func headerKey(n uint64) []byte      { return numberKey(headerPrefix, n) }
func bodyIndicesKey(n uint64) []byte { return numberKey(bodyIndicesPrefix, n) }
func transactionKey(n uint64) []byte { return numberKey(transactionPrefix, n) }
func receiptKey(n uint64) []byte     { return numberKey(receiptPrefix, n) }

func txLookupKey(hash gethCommon.Hash) []byte {
	return append(append([]byte{}, txLookupPrefix...), hash.Bytes()...)
}

func accountKey(addr gethCommon.Address) []byte {
	return append(append([]byte{}, accountPrefix...), addr.Bytes()...)
}

func storageKey(addr gethCommon.Address, slot gethCommon.Hash) []byte {
	key := append(append([]byte{}, storagePrefix...), addr.Bytes()...)
	return append(key, slot.Bytes()...)
}

func decodeNumber(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("invalid number encoding of length %d", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

type storedBodyIndices struct {
	FirstRecord uint64
	RecordCount uint64
}

// storedReceipt keeps the consensus fields of a receipt plus its envelope type.
type storedReceipt struct {
	Type              uint8
	Status            uint64
	CumulativeGasUsed uint64
	Logs              []*types.Log
}

func EncodeHeader(h *types.Header) ([]byte, error) {
	return rlp.EncodeToBytes(h)
}

func DecodeHeader(b []byte) (*types.Header, error) {
	h := new(types.Header)
	if err := rlp.DecodeBytes(b, h); err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}
	return h, nil
}

func EncodeBodyIndices(b common.BlockBodyIndices) ([]byte, error) {
	return rlp.EncodeToBytes(storedBodyIndices{FirstRecord: b.FirstRecord, RecordCount: b.RecordCount})
}

func DecodeBodyIndices(b []byte) (*common.BlockBodyIndices, error) {
	var stored storedBodyIndices
	if err := rlp.DecodeBytes(b, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode body indices: %w", err)
	}
	indices := &common.BlockBodyIndices{FirstRecord: stored.FirstRecord, RecordCount: stored.RecordCount}
	if err := indices.Validate(); err != nil {
		return nil, fmt.Errorf("invalid body indices: %w", err)
	}
	return indices, nil
}

func EncodeTransaction(tx *types.Transaction) ([]byte, error) {
	return tx.MarshalBinary()
}

func DecodeTransaction(b []byte) (*types.Transaction, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return tx, nil
}

func EncodeReceipt(r *types.Receipt) ([]byte, error) {
	logs := r.Logs
	if logs == nil {
		logs = []*types.Log{}
	}
	return rlp.EncodeToBytes(storedReceipt{
		Type:              r.Type,
		Status:            r.Status,
		CumulativeGasUsed: r.CumulativeGasUsed,
		Logs:              logs,
	})
}

func DecodeReceipt(b []byte) (*types.Receipt, error) {
	var stored storedReceipt
	if err := rlp.DecodeBytes(b, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return &types.Receipt{
		Type:              stored.Type,
		Status:            stored.Status,
		CumulativeGasUsed: stored.CumulativeGasUsed,
		Logs:              stored.Logs,
	}, nil
}

func EncodeAccount(acc *types.StateAccount) ([]byte, error) {
	return rlp.EncodeToBytes(acc)
}

func DecodeAccount(b []byte) (*types.StateAccount, error) {
	acc := new(types.StateAccount)
	if err := rlp.DecodeBytes(b, acc); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return acc, nil
}

// EncodeStorageValue stores a slot value with its leading zeroes trimmed, as the state trie does.
func EncodeStorageValue(v gethCommon.Hash) ([]byte, error) {
	return rlp.EncodeToBytes(gethCommon.TrimLeftZeroes(v[:]))
}

func DecodeStorageValue(b []byte) (gethCommon.Hash, error) {
	var raw []byte
	if err := rlp.DecodeBytes(b, &raw); err != nil {
		return gethCommon.Hash{}, fmt.Errorf("failed to decode storage value: %w", err)
	}
	if len(raw) > gethCommon.HashLength {
		return gethCommon.Hash{}, fmt.Errorf("storage value of %d bytes", len(raw))
	}
	return gethCommon.BytesToHash(raw), nil
}

// Batch collects encoded entries keyed the way the stores read them. The stores
// never write; batches feed the memory engine and on-disk fixtures.
type Batch map[string][]byte

func (b Batch) SetLastBlock(n uint64) {
	b[string(lastBlockKey)] = encodeNumber(n)
}

func (b Batch) PutHeader(h *types.Header) error {
	enc, err := EncodeHeader(h)
	if err != nil {
		return err
	}
	b[string(headerKey(h.Number.Uint64()))] = enc
	return nil
}

func (b Batch) PutBodyIndices(block uint64, indices common.BlockBodyIndices) error {
	enc, err := EncodeBodyIndices(indices)
	if err != nil {
		return err
	}
	b[string(bodyIndicesKey(block))] = enc
	return nil
}

// PutTransaction stores tx under its record number and indexes its hash.
func (b Batch) PutTransaction(record uint64, tx *types.Transaction) error {
	enc, err := EncodeTransaction(tx)
	if err != nil {
		return err
	}
	b[string(transactionKey(record))] = enc
	b[string(txLookupKey(tx.Hash()))] = encodeNumber(record)
	return nil
}

func (b Batch) PutTransactionLookup(hash gethCommon.Hash, record uint64) {
	b[string(txLookupKey(hash))] = encodeNumber(record)
}

func (b Batch) PutReceipt(record uint64, r *types.Receipt) error {
	enc, err := EncodeReceipt(r)
	if err != nil {
		return err
	}
	b[string(receiptKey(record))] = enc
	return nil
}

func (b Batch) PutAccount(addr gethCommon.Address, acc *types.StateAccount) error {
	enc, err := EncodeAccount(acc)
	if err != nil {
		return err
	}
	b[string(accountKey(addr))] = enc
	return nil
}

func (b Batch) PutStorage(addr gethCommon.Address, slot, value gethCommon.Hash) error {
	enc, err := EncodeStorageValue(value)
	if err != nil {
		return err
	}
	b[string(storageKey(addr, slot))] = enc
	return nil
}

// PutRaw stores arbitrary bytes, used to plant corrupt entries.
func (b Batch) PutRaw(key, value []byte) {
	b[string(key)] = value
}
