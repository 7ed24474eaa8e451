package provider

import (
	"errors"
	"math"
	"math/big"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/archive/archivetest"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

var callee = gethCommon.HexToAddress("0xabc")

func legacyTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: nonce, GasPrice: big.NewInt(1), Gas: 21000, To: &callee})
}

func encode[T any](t *testing.T, v T, fn func(T) ([]byte, error)) []byte {
	t.Helper()
	raw, err := fn(v)
	require.NoError(t, err)
	return raw
}

// newTieredProvider builds a store where block 20 lives in the key/value tier and blocks
// 0..9 live in the archive with records 0..5.
func newTieredProvider(t *testing.T, archivedTxs []*types.Transaction) *Provider {
	t.Helper()

	b := storage.Batch{}
	b.SetLastBlock(20)
	require.NoError(t, b.PutHeader(&types.Header{Number: big.NewInt(20), Difficulty: big.NewInt(0)}))
	require.NoError(t, b.PutBodyIndices(20, common.BlockBodyIndices{FirstRecord: 100, RecordCount: 1}))
	require.NoError(t, b.PutTransaction(100, legacyTx(100)))
	require.NoError(t, b.PutReceipt(100, &types.Receipt{Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 21000}))
	require.NoError(t, b.PutBodyIndices(5, common.BlockBodyIndices{FirstRecord: 3, RecordCount: 3}))
	for i, tx := range archivedTxs {
		if tx != nil {
			b.PutTransactionLookup(tx.Hash(), uint64(i))
		}
	}

	dir := t.TempDir()
	headers := make([][]byte, 10)
	for n := range headers {
		headers[n] = encode(t, &types.Header{Number: big.NewInt(int64(n)), Difficulty: big.NewInt(0), Time: uint64(n)}, storage.EncodeHeader)
	}
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{Kind: archive.KindHeaders, BlockStart: 0, BlockEnd: 9, Records: headers, Compressed: true})

	txRecords := make([][]byte, len(archivedTxs))
	receiptRecords := make([][]byte, len(archivedTxs))
	for i, tx := range archivedTxs {
		if tx == nil {
			continue
		}
		txRecords[i] = encode(t, tx, storage.EncodeTransaction)
		receiptRecords[i] = encode(t, &types.Receipt{Type: tx.Type(), Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: uint64(i+1) * 21000}, storage.EncodeReceipt)
	}
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{Kind: archive.KindTransactions, BlockStart: 0, BlockEnd: 9, Records: txRecords, Compressed: true})
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{Kind: archive.KindReceipts, BlockStart: 0, BlockEnd: 9, Records: receiptRecords, Compressed: true})

	arc, err := archive.Open(dir, true)
	require.NoError(t, err)
	p := New(storage.NewMemoryConnector(b), arc)
	t.Cleanup(func() { p.Close() })
	return p
}

func archivedTxs() []*types.Transaction {
	txs := make([]*types.Transaction, 6)
	for i := range txs {
		txs[i] = legacyTx(uint64(i))
	}
	return txs
}

func TestHeaderFallsBackToArchive(t *testing.T) {
	p := newTieredProvider(t, archivedTxs())

	h, err := p.HeaderByNumber(20)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, uint64(20), h.Number.Uint64())

	h, err = p.HeaderByNumber(7)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, uint64(7), h.Time)

	h, err = p.HeaderByNumber(15)
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestTransactionsByBlockFromArchive(t *testing.T) {
	txs := archivedTxs()
	p := newTieredProvider(t, txs)

	got, err := p.TransactionsByBlock(5, common.BlockBodyIndices{FirstRecord: 3, RecordCount: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, tx := range got {
		assert.Equal(t, txs[3+i].Hash(), tx.Hash())
	}

	receipts, err := p.ReceiptsByBlock(5, common.BlockBodyIndices{FirstRecord: 3, RecordCount: 3})
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	assert.Equal(t, uint64(4*21000), receipts[0].CumulativeGasUsed)

	got, err = p.TransactionsByBlock(20, common.BlockBodyIndices{FirstRecord: 100, RecordCount: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(100), got[0].Nonce())
}

func TestRecordMissingFromBothTiers(t *testing.T) {
	txs := archivedTxs()
	txs[4] = nil
	p := newTieredProvider(t, txs)

	_, err := p.TransactionsByBlock(5, common.BlockBodyIndices{FirstRecord: 3, RecordCount: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreAccess))

	var e *common.Error
	require.True(t, errors.As(err, &e))
	require.NotNil(t, e.Record)
	assert.Equal(t, uint64(4), *e.Record)
}

func TestImplausibleIndicesRejectedBeforeAllocation(t *testing.T) {
	p := newTieredProvider(t, archivedTxs())

	var err error
	require.NotPanics(t, func() {
		_, err = p.TransactionsByBlock(5, common.BlockBodyIndices{FirstRecord: 3, RecordCount: 1 << 62})
	})
	assert.True(t, errors.Is(err, common.ErrStoreAccess))

	_, err = p.ReceiptsByBlock(5, common.BlockBodyIndices{FirstRecord: math.MaxUint64, RecordCount: 2})
	assert.True(t, errors.Is(err, common.ErrStoreAccess))
}

func TestReceiptByNumberFallsBackToArchive(t *testing.T) {
	txs := archivedTxs()
	p := newTieredProvider(t, txs)

	record, found, err := p.TransactionNumberByHash(txs[2].Hash())
	require.NoError(t, err)
	require.True(t, found)

	receipt, err := p.ReceiptByNumber(record)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, uint64(3*21000), receipt.CumulativeGasUsed)

	tx, err := p.TransactionByNumber(record)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, txs[2].Hash(), tx.Hash())

	receipt, err = p.ReceiptByNumber(50)
	require.NoError(t, err)
	assert.Nil(t, receipt)
}

func TestBestBlockNumber(t *testing.T) {
	p := newTieredProvider(t, archivedTxs())
	n, err := p.BestBlockNumber()
	require.NoError(t, err)
	assert.Equal(t, uint64(20), n)

	dir := t.TempDir()
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{Kind: archive.KindHeaders, BlockStart: 0, BlockEnd: 4, Records: make([][]byte, 5)})
	arc, err := archive.Open(dir, false)
	require.NoError(t, err)
	archiveOnly := New(storage.NewMemoryConnector(nil), arc)
	defer archiveOnly.Close()

	n, err = archiveOnly.BestBlockNumber()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)

	empty := New(storage.NewMemoryConnector(nil), nil)
	_, err = empty.BestBlockNumber()
	assert.Error(t, err)
}
