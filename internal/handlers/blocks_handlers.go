package handlers

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/chainscan/api"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

func (h *Handler) GetRange(c *gin.Context) {
	api.OK(c, h.db.Range())
}

func blockNumberParam(c *gin.Context) (uint64, bool) {
	n, err := common.ParseBlockNumber(c.Param("number"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return 0, false
	}
	return n, true
}

// GetBlock answers 404 for blocks below the range or without a header.
func (h *Handler) GetBlock(c *gin.Context) {
	n, ok := blockNumberParam(c)
	if !ok {
		return
	}
	data, err := h.db.GetBlockData(n)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	if data == nil {
		api.NotFoundErrorHandler(c, fmt.Sprintf("block %d not found", n))
		return
	}
	api.OK(c, data)
}

// GetBlockTransactions returns raw transactions, or their normalized form with ?analyzed=true.
func (h *Handler) GetBlockTransactions(c *gin.Context) {
	n, ok := blockNumberParam(c)
	if !ok {
		return
	}
	params, err := api.ParseQueryParams(c.Request.URL.Query())
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	if params.Analyzed {
		analyzed, err := h.db.AnalyzeBlock(n)
		if err != nil {
			api.ErrorHandler(c, err)
			return
		}
		api.OK(c, analyzed)
		return
	}

	txs, err := h.db.GetTransactions(n)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	if txs == nil {
		txs = []*types.Transaction{}
	}
	api.OK(c, txs)
}

func (h *Handler) GetBlockReceipts(c *gin.Context) {
	n, ok := blockNumberParam(c)
	if !ok {
		return
	}
	receipts, err := h.db.GetReceipts(n)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	api.OK(c, common.SummarizeReceipts(receipts))
}
