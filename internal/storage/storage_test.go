package storage

import (
	"errors"
	"math"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v4"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

var (
	fixtureEOA      = gethCommon.HexToAddress("0x1000")
	fixtureContract = gethCommon.HexToAddress("0x2000")
	fixtureSlot     = gethCommon.BigToHash(big.NewInt(2))
	fixtureValue    = gethCommon.BigToHash(big.NewInt(0xbeef))
)

func fixtureTxs() []*types.Transaction {
	return []*types.Transaction{
		types.NewTx(&types.LegacyTx{Nonce: 0, GasPrice: big.NewInt(7), Gas: 21000, To: &fixtureContract, Value: big.NewInt(1)}),
		types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1), Nonce: 1, GasTipCap: big.NewInt(2), GasFeeCap: big.NewInt(30), Gas: 90000, Data: []byte{0x60, 0x80}}),
	}
}

func fixtureBatch(t *testing.T) Batch {
	t.Helper()
	b := Batch{}
	b.SetLastBlock(5)
	require.NoError(t, b.PutHeader(&types.Header{Number: big.NewInt(5), Difficulty: big.NewInt(0), Time: 100, GasUsed: 42000}))
	require.NoError(t, b.PutBodyIndices(5, common.BlockBodyIndices{FirstRecord: 10, RecordCount: 2}))
	for i, tx := range fixtureTxs() {
		require.NoError(t, b.PutTransaction(uint64(10+i), tx))
		require.NoError(t, b.PutReceipt(uint64(10+i), &types.Receipt{
			Type:              tx.Type(),
			Status:            types.ReceiptStatusSuccessful,
			CumulativeGasUsed: uint64(21000 * (i + 1)),
			Logs:              []*types.Log{{Address: fixtureContract, Topics: []gethCommon.Hash{{0x01}}, Data: []byte{0x02}}},
		}))
	}
	require.NoError(t, b.PutAccount(fixtureEOA, &types.StateAccount{
		Nonce: 3, Balance: uint256.NewInt(1000), Root: types.EmptyRootHash, CodeHash: types.EmptyCodeHash.Bytes(),
	}))
	require.NoError(t, b.PutAccount(fixtureContract, &types.StateAccount{
		Nonce: 1, Balance: uint256.NewInt(0), Root: types.EmptyRootHash, CodeHash: gethCommon.HexToHash("0xc0de").Bytes(),
	}))
	require.NoError(t, b.PutStorage(fixtureContract, fixtureSlot, fixtureValue))
	return b
}

func writePebbleFixture(t *testing.T, b Batch) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "pebble")
	db, err := pebble.Open(dir, &pebble.Options{})
	require.NoError(t, err)
	for k, v := range b {
		require.NoError(t, db.Set([]byte(k), v, pebble.Sync))
	}
	require.NoError(t, db.Close())
	return dir
}

func writeBadgerFixture(t *testing.T, b Batch) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "badger")
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for k, v := range b {
			if err := txn.Set([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	}))
	require.NoError(t, db.Close())
	return dir
}

func openAll(t *testing.T, b Batch) map[string]IKeyValueStorage {
	t.Helper()
	pc, err := NewConnector(&config.StoreConfig{Engine: config.StoreEnginePebble, Path: writePebbleFixture(t, b)})
	require.NoError(t, err)
	bc, err := NewConnector(&config.StoreConfig{Engine: config.StoreEngineBadger, Path: writeBadgerFixture(t, b)})
	require.NoError(t, err)

	stores := map[string]IKeyValueStorage{
		"memory": NewMemoryConnector(b),
		"pebble": pc,
		"badger": bc,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestConnectorsReadChainData(t *testing.T) {
	txs := fixtureTxs()
	for name, store := range openAll(t, fixtureBatch(t)) {
		t.Run(name, func(t *testing.T) {
			last, found, err := store.LastBlockNumber()
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, uint64(5), last)

			h, err := store.HeaderByNumber(5)
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, uint64(5), h.Number.Uint64())
			assert.Equal(t, uint64(42000), h.GasUsed)

			missing, err := store.HeaderByNumber(6)
			require.NoError(t, err)
			assert.Nil(t, missing)

			indices, err := store.BlockBodyIndices(5)
			require.NoError(t, err)
			require.NotNil(t, indices)
			assert.Equal(t, common.BlockBodyIndices{FirstRecord: 10, RecordCount: 2}, *indices)

			tx, err := store.TransactionByNumber(11)
			require.NoError(t, err)
			require.NotNil(t, tx)
			assert.Equal(t, txs[1].Hash(), tx.Hash())
			assert.Nil(t, tx.To())

			record, found, err := store.TransactionNumberByHash(txs[0].Hash())
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, uint64(10), record)

			_, found, err = store.TransactionNumberByHash(gethCommon.Hash{0xff})
			require.NoError(t, err)
			assert.False(t, found)

			receipt, err := store.ReceiptByNumber(11)
			require.NoError(t, err)
			require.NotNil(t, receipt)
			assert.Equal(t, uint8(types.DynamicFeeTxType), receipt.Type)
			assert.Equal(t, uint64(42000), receipt.CumulativeGasUsed)
			assert.Len(t, receipt.Logs, 1)
		})
	}
}

func TestConnectorsReadState(t *testing.T) {
	for name, store := range openAll(t, fixtureBatch(t)) {
		t.Run(name, func(t *testing.T) {
			state, err := store.LatestState()
			require.NoError(t, err)
			defer state.Close()

			eoa, err := state.Account(fixtureEOA)
			require.NoError(t, err)
			require.NotNil(t, eoa)
			assert.Equal(t, uint64(3), eoa.Nonce)
			assert.Equal(t, uint64(1000), eoa.Balance.Uint64())
			assert.False(t, eoa.CodePresent)

			contract, err := state.Account(fixtureContract)
			require.NoError(t, err)
			require.NotNil(t, contract)
			assert.True(t, contract.CodePresent)

			absent, err := state.Account(gethCommon.HexToAddress("0xdead"))
			require.NoError(t, err)
			assert.Nil(t, absent)

			slot, err := state.Storage(fixtureContract, fixtureSlot)
			require.NoError(t, err)
			require.NotNil(t, slot)
			assert.Equal(t, fixtureValue, slot.Value)

			empty, err := state.Storage(fixtureContract, gethCommon.Hash{})
			require.NoError(t, err)
			assert.Nil(t, empty)
		})
	}
}

func TestCorruptEntryIsStoreAccessError(t *testing.T) {
	b := Batch{}
	b.PutRaw(headerKey(9), []byte{0xde, 0xad})
	b.PutRaw(lastBlockKey, []byte{0x01})
	store := NewMemoryConnector(b)

	_, err := store.HeaderByNumber(9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreAccess))

	_, _, err = store.LastBlockNumber()
	assert.Equal(t, common.ErrorKindStoreAccess, common.KindOf(err))
}

func TestCorruptLookupErrorsNameTheKey(t *testing.T) {
	hash := gethCommon.HexToHash("0xfeed")
	b := Batch{}
	b.PutRaw(txLookupKey(hash), []byte{0x01, 0x02})
	b.PutRaw(accountKey(fixtureEOA), []byte{0xde, 0xad})
	b.PutRaw(storageKey(fixtureContract, fixtureSlot), []byte{0xde, 0xad})
	store := NewMemoryConnector(b)

	_, _, err := store.TransactionNumberByHash(hash)
	require.True(t, errors.Is(err, common.ErrStoreAccess))
	assert.Contains(t, err.Error(), hash.Hex())

	state, err := store.LatestState()
	require.NoError(t, err)
	defer state.Close()

	_, err = state.Account(fixtureEOA)
	require.True(t, errors.Is(err, common.ErrStoreAccess))
	assert.Contains(t, err.Error(), fixtureEOA.Hex())

	_, err = state.Storage(fixtureContract, fixtureSlot)
	require.True(t, errors.Is(err, common.ErrStoreAccess))
	assert.Contains(t, err.Error(), fixtureContract.Hex())
	assert.Contains(t, err.Error(), fixtureSlot.Hex())
}

func TestImplausibleBodyIndicesAreStoreAccessError(t *testing.T) {
	b := Batch{}
	raw, err := EncodeBodyIndices(common.BlockBodyIndices{FirstRecord: 0, RecordCount: 1 << 62})
	require.NoError(t, err)
	b.PutRaw(bodyIndicesKey(9), raw)
	raw, err = EncodeBodyIndices(common.BlockBodyIndices{FirstRecord: math.MaxUint64, RecordCount: 1})
	require.NoError(t, err)
	b.PutRaw(bodyIndicesKey(10), raw)
	store := NewMemoryConnector(b)

	for _, n := range []uint64{9, 10} {
		indices, err := store.BlockBodyIndices(n)
		assert.Nil(t, indices)
		assert.True(t, errors.Is(err, common.ErrStoreAccess), "block %d", n)
	}
}

func TestOpenMissingStoreFails(t *testing.T) {
	_, err := NewConnector(&config.StoreConfig{Engine: config.StoreEnginePebble, Path: filepath.Join(t.TempDir(), "nope")})
	assert.True(t, errors.Is(err, common.ErrStoreAccess))

	_, err = NewConnector(&config.StoreConfig{Engine: "leveldb", Path: t.TempDir()})
	assert.Error(t, err)
}
