package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/chainscan/api"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

const defaultStatsSampleSize = 10

func (h *Handler) GetReceipt(c *gin.Context) {
	hash, err := common.ParseHash(c.Param("hash"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	receipt, err := h.db.GetReceiptByHash(hash)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	if receipt == nil {
		api.NotFoundErrorHandler(c, fmt.Sprintf("receipt for %s not found", hash.Hex()))
		return
	}
	api.OK(c, common.SummarizeReceipt(receipt))
}

type receiptStatsResponse struct {
	Blocks             []uint64 `json:"blocks"`
	Receipts           int      `json:"receipts"`
	Successful         int      `json:"successful"`
	Failed             int      `json:"failed"`
	TotalCumulativeGas uint64   `json:"total_cumulative_gas"`
	SuccessRate        *float64 `json:"success_rate"`
}

// GetReceiptStats samples ?count= blocks across the range, at most Limits.MaxStatsSamples.
func (h *Handler) GetReceiptStats(c *gin.Context) {
	params, err := api.ParseQueryParams(c.Request.URL.Query())
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	count := params.Count
	if count == 0 {
		count = defaultStatsSampleSize
	}
	count = min(count, h.limits.MaxStatsSamples)

	stats := h.db.ReceiptStats(count)
	resp := receiptStatsResponse{
		Blocks:             stats.Blocks,
		Receipts:           stats.Receipts,
		Successful:         stats.Successful,
		Failed:             stats.Failed,
		TotalCumulativeGas: stats.TotalCumulativeGas,
	}
	if rate, ok := stats.SuccessRate(); ok {
		resp.SuccessRate = &rate
	}
	api.OK(c, resp)
}
