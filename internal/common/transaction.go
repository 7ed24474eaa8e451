package common

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	TxVariantLegacy  = "Legacy"
	TxVariantEip2930 = "Eip2930"
	TxVariantEip1559 = "Eip1559"
	TxVariantEip4844 = "Eip4844"
	TxVariantEip7702 = "Eip7702"
)

// AnalyzedTx is the normalized view of any transaction variant. Either GasPrice or the
// MaxFeePerGas/MaxPriorityFeePerGas pair is set, depending on VariantTag.
type AnalyzedTx struct {
	BlockNumber          uint64              `json:"block_number"`
	Index                uint32              `json:"index"`
	Hash                 gethCommon.Hash     `json:"hash"`
	To                   *gethCommon.Address `json:"to"`
	Value                *uint256.Int        `json:"value"`
	Nonce                uint64              `json:"nonce"`
	GasLimit             uint64              `json:"gas_limit"`
	GasPrice             *uint256.Int        `json:"gas_price,omitempty"`
	MaxFeePerGas         *uint256.Int        `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas *uint256.Int        `json:"max_priority_fee_per_gas,omitempty"`
	InputSize            int                 `json:"input_size"`
	VariantTag           string              `json:"variant_tag"`
}

// IsContractCreation reports whether the transaction deploys code.
func (t AnalyzedTx) IsContractCreation() bool {
	return t.To == nil
}
