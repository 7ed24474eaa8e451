package query

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// CapabilityReport records what each store capability returned for one block. Failures maps
// a capability name to its error message.
type CapabilityReport struct {
	BestBlock     uint64                   `json:"best_block"`
	Header        *common.BlockHeader      `json:"header,omitempty"`
	BodyIndices   *common.BlockBodyIndices `json:"body_indices,omitempty"`
	Transactions  int                      `json:"transactions"`
	Receipts      int                      `json:"receipts"`
	ReceiptByHash *common.ReceiptSummary   `json:"receipt_by_hash,omitempty"`
	ZeroAccount   *common.AccountState     `json:"zero_account,omitempty"`
	ZeroSlot      *common.StorageSlot      `json:"zero_slot,omitempty"`
	Failures      map[string]string        `json:"failures,omitempty"`
}

func (r *CapabilityReport) fail(capability string, err error) {
	log.Warn().Err(err).Str("capability", capability).Msg("Capability failed")
	if r.Failures == nil {
		r.Failures = map[string]string{}
	}
	r.Failures[capability] = err.Error()
}

// ExerciseCapabilities calls every store capability around block n directly, bypassing the
// range checks. Only a failing best block lookup is returned as an error; every other
// failure is logged and recorded in the report.
func (d *Database) ExerciseCapabilities(n uint64, txHash *gethCommon.Hash) (*CapabilityReport, error) {
	best, err := d.store.BestBlockNumber()
	if err != nil {
		return nil, err
	}
	report := &CapabilityReport{BestBlock: best}
	log.Info().Uint64("latest", best).Msg("Latest block number")

	if header, err := d.store.HeaderByNumber(n); err != nil {
		report.fail("header_by_number", err)
	} else if header == nil {
		log.Warn().Uint64("block", n).Msg("Header not found")
	} else {
		h := common.NewBlockHeader(header)
		report.Header = &h
		log.Info().Uint64("block", h.Number).Uint64("timestamp", h.Timestamp).Uint64("gas_used", h.GasUsed).Msg("Header fetched")
	}

	indices, err := d.store.BlockBodyIndices(n)
	switch {
	case err != nil:
		report.fail("block_body_indices", err)
	case indices == nil:
		log.Warn().Uint64("block", n).Msg("Body indices not found")
	default:
		report.BodyIndices = indices
		log.Info().Uint64("first_record", indices.FirstRecord).Uint64("record_count", indices.RecordCount).Msg("Body indices")
	}

	if indices != nil {
		if txs, err := d.store.TransactionsByBlock(n, *indices); err != nil {
			report.fail("transactions_by_block", err)
		} else {
			report.Transactions = len(txs)
			log.Info().Int("count", len(txs)).Msg("Transactions in block")
			if len(txs) > 0 {
				log.Debug().Str("hash", txs[0].Hash().Hex()).Interface("to", txs[0].To()).Msg("First transaction")
			}
		}

		if receipts, err := d.store.ReceiptsByBlock(n, *indices); err != nil {
			report.fail("receipts_by_block", err)
		} else {
			report.Receipts = len(receipts)
			log.Info().Int("count", len(receipts)).Msg("Receipts in block")
			if len(receipts) > 0 {
				first := common.SummarizeReceipt(receipts[0])
				log.Debug().Bool("success", first.Success).Uint64("cumulative_gas_used", first.CumulativeGasUsed).
					Int("logs", first.LogCount).Msg("First receipt")
			}
		}
	}

	if txHash != nil {
		d.exerciseReceiptByHash(report, *txHash)
	}
	d.exerciseState(report)
	return report, nil
}

func (d *Database) exerciseReceiptByHash(report *CapabilityReport, hash gethCommon.Hash) {
	record, found, err := d.store.TransactionNumberByHash(hash)
	if err != nil {
		report.fail("transaction_number_by_hash", err)
		return
	}
	if !found {
		log.Warn().Str("hash", hash.Hex()).Msg("Transaction hash not found")
		return
	}
	receipt, err := d.store.ReceiptByNumber(record)
	if err != nil {
		report.fail("receipt_by_number", err)
		return
	}
	if receipt == nil {
		log.Warn().Uint64("record", record).Msg("Receipt not found by record number")
		return
	}
	summary := common.SummarizeReceipt(receipt)
	report.ReceiptByHash = &summary
	log.Info().Bool("success", summary.Success).Uint64("cumulative_gas_used", summary.CumulativeGasUsed).Msg("Receipt by hash")
}

func (d *Database) exerciseState(report *CapabilityReport) {
	state, err := d.store.LatestState()
	if err != nil {
		report.fail("latest_state", err)
		return
	}
	defer state.Close()

	zero := gethCommon.Address{}
	if account, err := state.Account(zero); err != nil {
		report.fail("account", err)
	} else if account == nil {
		log.Info().Msg("No account for the zero address")
	} else {
		report.ZeroAccount = account
		log.Info().Stringer("balance", account.Balance).Uint64("nonce", account.Nonce).Msg("Account for the zero address")
	}

	if slot, err := state.Storage(zero, gethCommon.Hash{}); err != nil {
		report.fail("storage", err)
	} else if slot == nil {
		log.Debug().Msg("No storage at slot 0 for the zero address")
	} else {
		report.ZeroSlot = slot
		log.Debug().Str("value", slot.Value.Hex()).Msg("Storage slot 0 for the zero address")
	}
}
