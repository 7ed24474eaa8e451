package handlers

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/chainscan/internal/analyzer"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/provider"
	"github.com/thirdweb-dev/chainscan/internal/query"
	"github.com/thirdweb-dev/chainscan/internal/storage"
)

var (
	contract = gethCommon.HexToAddress("0x00000000000000000000000000000000000000c0")
	receiver = gethCommon.HexToAddress("0x00000000000000000000000000000000000000d0")
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
}

func testRouter(t *testing.T) (*gin.Engine, *types.Transaction) {
	gin.SetMode(gin.TestMode)

	b := storage.Batch{}
	b.SetLastBlock(12)
	for n := uint64(5); n <= 12; n++ {
		require.NoError(t, b.PutHeader(&types.Header{Number: new(big.Int).SetUint64(n), Difficulty: big.NewInt(0), Time: 1_700_000_000 + n}))
	}
	tx := types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1), To: &receiver, GasFeeCap: big.NewInt(20), GasTipCap: big.NewInt(2), Gas: 21000})
	require.NoError(t, b.PutBodyIndices(12, common.BlockBodyIndices{FirstRecord: 0, RecordCount: 1}))
	require.NoError(t, b.PutTransaction(0, tx))
	require.NoError(t, b.PutReceipt(0, &types.Receipt{Type: types.DynamicFeeTxType, Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 21000}))
	require.NoError(t, b.PutAccount(contract, &types.StateAccount{
		Nonce:    3,
		Balance:  uint256.NewInt(500),
		Root:     types.EmptyRootHash,
		CodeHash: gethCommon.HexToHash("0x1234").Bytes(),
	}))
	require.NoError(t, b.PutStorage(contract, gethCommon.Hash{}, gethCommon.HexToHash("0x2a")))

	db, err := query.NewDatabase(provider.New(storage.NewMemoryConnector(b), nil), []uint64{1, 100})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRouter(db, Limits{}), tx
}

func get(t *testing.T, r *gin.Engine, path string) (int, envelope) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetRange(t *testing.T) {
	r, _ := testRouter(t)
	code, body := get(t, r, "/range")
	require.Equal(t, http.StatusOK, code)

	var got common.BlockRange
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, common.BlockRange{Earliest: 5, Latest: 12}, got)
}

func TestGetBlock(t *testing.T) {
	r, _ := testRouter(t)

	code, body := get(t, r, "/blocks/12")
	require.Equal(t, http.StatusOK, code)
	var data common.BlockData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, uint64(12), data.Header.Number)
	assert.Equal(t, uint64(1), data.TxCount)

	code, _ = get(t, r, "/blocks/0xc")
	assert.Equal(t, http.StatusOK, code)

	code, body = get(t, r, "/blocks/2")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "block 2 not found", body.Message)

	code, body = get(t, r, "/blocks/twelve")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

func TestGetBlockTransactions(t *testing.T) {
	r, tx := testRouter(t)

	code, body := get(t, r, "/blocks/12/transactions?analyzed=true")
	require.Equal(t, http.StatusOK, code)
	var analyzed []common.AnalyzedTx
	require.NoError(t, json.Unmarshal(body.Data, &analyzed))
	require.Len(t, analyzed, 1)
	assert.Equal(t, tx.Hash(), analyzed[0].Hash)
	assert.Equal(t, common.TxVariantEip1559, analyzed[0].VariantTag)
	assert.Equal(t, uint64(20), analyzed[0].MaxFeePerGas.Uint64())

	code, body = get(t, r, "/blocks/12/transactions")
	require.Equal(t, http.StatusOK, code)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, tx.Hash().Hex(), raw[0]["hash"])

	code, body = get(t, r, "/blocks/3/transactions")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body.Data))

	code, _ = get(t, r, "/blocks/12/transactions?analyzed=perhaps")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetReceipts(t *testing.T) {
	r, tx := testRouter(t)

	code, body := get(t, r, "/blocks/12/receipts")
	require.Equal(t, http.StatusOK, code)
	var summaries []common.ReceiptSummary
	require.NoError(t, json.Unmarshal(body.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Success)

	code, body = get(t, r, "/receipts/"+tx.Hash().Hex())
	require.Equal(t, http.StatusOK, code)
	var summary common.ReceiptSummary
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, uint64(21000), summary.CumulativeGasUsed)
	assert.Equal(t, uint8(types.DynamicFeeTxType), summary.TxType)

	code, _ = get(t, r, "/receipts/"+gethCommon.HexToHash("0xff").Hex())
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, r, "/receipts/0x1234")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetReceiptStats(t *testing.T) {
	r, _ := testRouter(t)

	code, body := get(t, r, "/stats/receipts?count=2")
	require.Equal(t, http.StatusOK, code)
	var stats receiptStatsResponse
	require.NoError(t, json.Unmarshal(body.Data, &stats))
	assert.Equal(t, []uint64{8, 12}, stats.Blocks)
	assert.Equal(t, 1, stats.Successful)
	require.NotNil(t, stats.SuccessRate)
	assert.Equal(t, 100.0, *stats.SuccessRate)
}

// recordingQuerier captures the sizes the handlers pass down.
type recordingQuerier struct {
	Querier
	statsCount int
	slotCount  int
}

func (q *recordingQuerier) ReceiptStats(count int) *analyzer.ReceiptStats {
	q.statsCount = count
	return &analyzer.ReceiptStats{}
}

func (q *recordingQuerier) StateOf(addr gethCommon.Address, slotCount int) (*query.StateReport, error) {
	q.slotCount = slotCount
	return &query.StateReport{Account: &common.AccountState{Address: addr, Balance: uint256.NewInt(0)}}, nil
}

func TestRequestSizesAreClamped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		limits    Limits
		path      string
		wantStats int
		wantSlots int
	}{
		{name: "stats default", path: "/stats/receipts", wantStats: defaultStatsSampleSize},
		{name: "stats under limit", limits: Limits{MaxStatsSamples: 50}, path: "/stats/receipts?count=20", wantStats: 20},
		{name: "stats over limit", limits: Limits{MaxStatsSamples: 50}, path: "/stats/receipts?count=1000000000", wantStats: 50},
		{name: "stats over default limit", path: "/stats/receipts?count=1000000000", wantStats: defaultMaxStatsSamples},
		{name: "slots over limit", limits: Limits{MaxStateSlots: 8}, path: "/accounts/" + contract.Hex() + "?slots=100000", wantSlots: 8},
		{name: "slots over default limit", path: "/accounts/" + contract.Hex() + "?slots=100000", wantSlots: defaultMaxStateSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQuerier{}
			code, _ := get(t, NewRouter(q, tt.limits), tt.path)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.wantStats, q.statsCount)
			assert.Equal(t, tt.wantSlots, q.slotCount)
		})
	}
}

func TestGetAccount(t *testing.T) {
	r, _ := testRouter(t)

	code, body := get(t, r, "/accounts/"+contract.Hex())
	require.Equal(t, http.StatusOK, code)
	var account common.AccountState
	require.NoError(t, json.Unmarshal(body.Data, &account))
	assert.Equal(t, uint64(3), account.Nonce)
	assert.Equal(t, uint64(500), account.Balance.Uint64())
	assert.True(t, account.CodePresent)

	code, body = get(t, r, "/accounts/"+contract.Hex()+"?slots=2")
	require.Equal(t, http.StatusOK, code)
	var report query.StateReport
	require.NoError(t, json.Unmarshal(body.Data, &report))
	require.Len(t, report.Slots, 1)
	assert.Equal(t, gethCommon.HexToHash("0x2a"), report.Slots[0].Value)

	code, _ = get(t, r, "/accounts/"+receiver.Hex())
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, r, "/accounts/0xnothex")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetStorage(t *testing.T) {
	r, _ := testRouter(t)

	code, body := get(t, r, "/accounts/"+contract.Hex()+"/storage/0")
	require.Equal(t, http.StatusOK, code)
	var slot common.StorageSlot
	require.NoError(t, json.Unmarshal(body.Data, &slot))
	assert.Equal(t, gethCommon.HexToHash("0x2a"), slot.Value)

	code, _ = get(t, r, "/accounts/"+contract.Hex()+"/storage/1")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, r, "/accounts/"+contract.Hex()+"/storage/-1")
	assert.Equal(t, http.StatusBadRequest, code)
}
