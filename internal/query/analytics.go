package query

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/analyzer"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// AnalyzeBlock returns the normalized transactions of block n.
func (d *Database) AnalyzeBlock(n uint64) ([]common.AnalyzedTx, error) {
	txs, err := d.GetTransactions(n)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(n, txs), nil
}

// TransactionTos returns the destination of each transaction of block n; nil marks a contract creation.
func (d *Database) TransactionTos(n uint64) ([]*gethCommon.Address, error) {
	analyzed, err := d.AnalyzeBlock(n)
	if err != nil {
		return nil, err
	}
	return analyzer.TransactionTos(analyzed), nil
}

// ContractCreations flags each transaction of block n as a creation or a call.
func (d *Database) ContractCreations(n uint64) ([]bool, error) {
	analyzed, err := d.AnalyzeBlock(n)
	if err != nil {
		return nil, err
	}
	return analyzer.ContractCreations(analyzed), nil
}

// ReceiptStats aggregates the receipts of count blocks sampled across the range. Blocks
// whose receipts cannot be read are logged and left out.
func (d *Database) ReceiptStats(count int) *analyzer.ReceiptStats {
	stats := &analyzer.ReceiptStats{}
	for _, n := range analyzer.SampleBlocks(d.blockRange, count) {
		receipts, err := d.GetReceipts(n)
		if err != nil {
			log.Warn().Err(err).Uint64("block", n).Msg("Receipts access error")
			continue
		}
		summaries := common.SummarizeReceipts(receipts)
		for i, r := range summaries {
			if i >= 2 {
				break
			}
			log.Debug().Uint64("block", n).Int("index", i).Uint64("cumulative_gas_used", r.CumulativeGasUsed).
				Bool("success", r.Success).Int("logs", r.LogCount).Msg("Receipt summary")
		}
		log.Info().Uint64("block", n).Int("receipts", len(summaries)).Msg("Receipts in block")
		stats.Add(n, summaries)
	}
	return stats
}

type StateReport struct {
	Account *common.AccountState `json:"account"`
	Slots   []common.StorageSlot `json:"slots"`
}

// StateOf reads an account and its first slotCount storage slots from one snapshot.
// Absent slots are left out of the report.
func (d *Database) StateOf(addr gethCommon.Address, slotCount int) (*StateReport, error) {
	state, err := d.LatestState()
	if err != nil {
		return nil, err
	}
	defer state.Close()

	account, err := state.Account(addr)
	if err != nil {
		return nil, err
	}
	report := &StateReport{Account: account}
	for i := 0; i < slotCount; i++ {
		key := gethCommon.BigToHash(new(big.Int).SetInt64(int64(i)))
		slot, err := state.Storage(addr, key)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			report.Slots = append(report.Slots, *slot)
		}
	}
	return report, nil
}
