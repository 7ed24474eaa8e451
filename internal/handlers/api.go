package handlers

import (
	"net/http"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thirdweb-dev/chainscan/internal/analyzer"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/middleware"
	"github.com/thirdweb-dev/chainscan/internal/query"
)

// Querier is the read surface the HTTP handlers serve. *query.Database implements it.
type Querier interface {
	Range() common.BlockRange
	GetBlockData(n uint64) (*common.BlockData, error)
	GetTransactions(n uint64) ([]*types.Transaction, error)
	AnalyzeBlock(n uint64) ([]common.AnalyzedTx, error)
	GetReceipts(n uint64) ([]*types.Receipt, error)
	GetReceiptByHash(hash gethCommon.Hash) (*types.Receipt, error)
	GetAccount(addr gethCommon.Address) (*common.AccountState, error)
	GetStorage(addr gethCommon.Address, slot gethCommon.Hash) (*common.StorageSlot, error)
	StateOf(addr gethCommon.Address, slotCount int) (*query.StateReport, error)
	ReceiptStats(count int) *analyzer.ReceiptStats
}

// Limits caps the work a single request can ask for. Larger ?count= and ?slots= values are
// clamped, not rejected. Zero fields fall back to the defaults.
type Limits struct {
	MaxStatsSamples int
	MaxStateSlots   int
}

const (
	defaultMaxStatsSamples = 1_000
	defaultMaxStateSlots   = 256
)

func (l Limits) withDefaults() Limits {
	if l.MaxStatsSamples <= 0 {
		l.MaxStatsSamples = defaultMaxStatsSamples
	}
	if l.MaxStateSlots <= 0 {
		l.MaxStateSlots = defaultMaxStateSlots
	}
	return l
}

type Handler struct {
	db     Querier
	limits Limits
}

// NewRouter wires every read-only route to db.
func NewRouter(db Querier, limits Limits) *gin.Engine {
	h := &Handler{db: db, limits: limits.withDefaults()}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/range", h.GetRange)

	blocks := r.Group("/blocks/:number")
	{
		blocks.GET("", h.GetBlock)
		blocks.GET("/transactions", h.GetBlockTransactions)
		blocks.GET("/receipts", h.GetBlockReceipts)
	}

	r.GET("/receipts/:hash", h.GetReceipt)
	r.GET("/stats/receipts", h.GetReceiptStats)

	accounts := r.Group("/accounts/:address")
	{
		accounts.GET("", h.GetAccount)
		accounts.GET("/storage/:slot", h.GetStorage)
	}
	return r
}
