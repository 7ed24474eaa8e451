package common

import (
	"github.com/ethereum/go-ethereum/core/types"
)

type ReceiptSummary struct {
	Success           bool   `json:"success"`
	CumulativeGasUsed uint64 `json:"cumulative_gas_used"`
	LogCount          int    `json:"log_count"`
	TxType            uint8  `json:"tx_type"`
}

func SummarizeReceipt(r *types.Receipt) ReceiptSummary {
	return ReceiptSummary{
		Success:           r.Status == types.ReceiptStatusSuccessful,
		CumulativeGasUsed: r.CumulativeGasUsed,
		LogCount:          len(r.Logs),
		TxType:            r.Type,
	}
}

func SummarizeReceipts(receipts []*types.Receipt) []ReceiptSummary {
	summaries := make([]ReceiptSummary, 0, len(receipts))
	for _, r := range receipts {
		summaries = append(summaries, SummarizeReceipt(r))
	}
	return summaries
}

// TxTypeName renders a typed-envelope byte the way analyzed transactions tag their variant.
func TxTypeName(txType uint8) string {
	switch txType {
	case types.LegacyTxType:
		return TxVariantLegacy
	case types.AccessListTxType:
		return TxVariantEip2930
	case types.DynamicFeeTxType:
		return TxVariantEip1559
	case types.BlobTxType:
		return TxVariantEip4844
	case types.SetCodeTxType:
		return TxVariantEip7702
	default:
		return "Unknown"
	}
}
