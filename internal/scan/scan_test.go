package scan

import (
	"errors"
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

type staticIndices map[uint64]common.BlockBodyIndices

func (s staticIndices) BlockBodyIndices(n uint64) (*common.BlockBodyIndices, error) {
	idx, ok := s[n]
	if !ok {
		return nil, nil
	}
	return &idx, nil
}

var dest = gethCommon.HexToAddress("0x00000000000000000000000000000000000000aa")

func encodedTx(t *testing.T, nonce uint64, to *gethCommon.Address) []byte {
	raw, err := storage.EncodeTransaction(types.NewTx(&types.LegacyTx{Nonce: nonce, To: to, GasPrice: big.NewInt(1), Gas: 21000}))
	require.NoError(t, err)
	return raw
}

func encodedReceipt(t *testing.T, status uint64, gas uint64) []byte {
	raw, err := storage.EncodeReceipt(&types.Receipt{Type: types.AccessListTxType, Status: status, CumulativeGasUsed: gas})
	require.NoError(t, err)
	return raw
}

func TestTransactionsScan(t *testing.T) {
	dir := t.TempDir()
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{
		Kind: archive.KindTransactions, BlockStart: 0, BlockEnd: 9, RecordStart: 100,
		Records: [][]byte{encodedTx(t, 0, &dest), nil, encodedTx(t, 2, nil), encodedTx(t, 3, &dest)},
	})
	arc, err := archive.Open(dir, false)
	require.NoError(t, err)
	defer arc.Close()

	indices := staticIndices{
		4: {FirstRecord: 100, RecordCount: 3},
		5: {FirstRecord: 103, RecordCount: 1},
	}

	lines, err := Transactions(indices, arc, 4)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, uint64(100), lines[0].Record)
	assert.Equal(t, uint64(102), lines[1].Record)
	assert.Nil(t, lines[1].To)
	assert.Contains(t, lines[1].String(), "block=4 tx_num=102")
	assert.Contains(t, lines[1].String(), "to=create")
	assert.Contains(t, lines[0].String(), "to="+dest.Hex())

	_, err = Transactions(indices, arc, 6)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestTransactionsScanEmptyBlockFails(t *testing.T) {
	dir := t.TempDir()
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{
		Kind: archive.KindTransactions, BlockStart: 0, BlockEnd: 9, RecordStart: 0,
		Records: [][]byte{encodedTx(t, 0, &dest)},
	})
	arc, err := archive.Open(dir, false)
	require.NoError(t, err)
	defer arc.Close()

	_, err = Transactions(staticIndices{3: {FirstRecord: 1, RecordCount: 0}}, arc, 3)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestReceiptsScan(t *testing.T) {
	dir := t.TempDir()
	archivetest.MustWriteSegment(t, dir, archivetest.Segment{
		Kind: archive.KindReceipts, BlockStart: 10, BlockEnd: 19, RecordStart: 500,
		Records: [][]byte{encodedReceipt(t, 1, 21000), nil, encodedReceipt(t, 0, 50000)},
		Compressed: true,
	})
	arc, err := archive.Open(dir, true)
	require.NoError(t, err)
	defer arc.Close()

	var lines []ReceiptLine
	n, err := Receipts(arc, 15, func(l ReceiptLine) error {
		lines = append(lines, l)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, lines, 2)
	assert.Equal(t, uint64(500), lines[0].Record)
	assert.Equal(t, uint64(502), lines[1].Record)
	assert.Equal(t, "tx_num=502 tx_type=Eip2930 success=false cumulative_gas_used=50000 logs=0", lines[1].String())

	_, err = Receipts(arc, 42, func(ReceiptLine) error { return nil })
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
