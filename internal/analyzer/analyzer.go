package analyzer

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// Analyze normalizes the transactions of one block, stamping each with its in-block index.
func Analyze(blockNumber uint64, txs []*types.Transaction) []common.AnalyzedTx {
	out := make([]common.AnalyzedTx, 0, len(txs))
	for i, tx := range txs {
		out = append(out, AnalyzeTransaction(blockNumber, uint32(i), tx))
	}
	return out
}

func AnalyzeTransaction(blockNumber uint64, index uint32, tx *types.Transaction) common.AnalyzedTx {
	analyzed := common.AnalyzedTx{
		BlockNumber: blockNumber,
		Index:       index,
		Hash:        tx.Hash(),
		To:          tx.To(),
		Value:       toUint256(tx.Value()),
		Nonce:       tx.Nonce(),
		GasLimit:    tx.Gas(),
		InputSize:   len(tx.Data()),
	}

	switch tx.Type() {
	case types.LegacyTxType:
		analyzed.VariantTag = common.TxVariantLegacy
		analyzed.GasPrice = toUint256(tx.GasPrice())
	case types.AccessListTxType:
		analyzed.VariantTag = common.TxVariantEip2930
		analyzed.GasPrice = toUint256(tx.GasPrice())
	case types.DynamicFeeTxType:
		analyzed.VariantTag = common.TxVariantEip1559
		setFeeCaps(&analyzed, tx)
	case types.BlobTxType:
		analyzed.VariantTag = common.TxVariantEip4844
		setFeeCaps(&analyzed, tx)
	case types.SetCodeTxType:
		analyzed.VariantTag = common.TxVariantEip7702
		setFeeCaps(&analyzed, tx)
	default:
		analyzed.VariantTag = common.TxTypeName(tx.Type())
	}
	return analyzed
}

func setFeeCaps(analyzed *common.AnalyzedTx, tx *types.Transaction) {
	analyzed.MaxFeePerGas = toUint256(tx.GasFeeCap())
	analyzed.MaxPriorityFeePerGas = toUint256(tx.GasTipCap())
}

func toUint256(v *big.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil
	}
	return out
}

// TransactionTos returns the destination of each transaction in order; nil marks a contract creation.
func TransactionTos(analyzed []common.AnalyzedTx) []*gethCommon.Address {
	tos := make([]*gethCommon.Address, 0, len(analyzed))
	for _, tx := range analyzed {
		tos = append(tos, tx.To)
	}
	return tos
}

// ContractCreations flags each transaction as a creation (true) or a call (false), in order.
func ContractCreations(analyzed []common.AnalyzedTx) []bool {
	flags := make([]bool, 0, len(analyzed))
	for _, tx := range analyzed {
		flags = append(flags, tx.IsContractCreation())
	}
	return flags
}
