package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/metrics"
)

const defaultMaxRowsPerFile = 1_000_000

// TransactionRow is the parquet layout of an analyzed transaction. 256-bit amounts are
// stored as decimal strings.
type TransactionRow struct {
	BlockNumber          uint64  `parquet:"block_number"`
	Index                uint32  `parquet:"tx_index"`
	Hash                 string  `parquet:"hash"`
	To                   *string `parquet:"to,optional"`
	Value                string  `parquet:"value"`
	Nonce                uint64  `parquet:"nonce"`
	GasLimit             uint64  `parquet:"gas_limit"`
	GasPrice             *string `parquet:"gas_price,optional"`
	MaxFeePerGas         *string `parquet:"max_fee_per_gas,optional"`
	MaxPriorityFeePerGas *string `parquet:"max_priority_fee_per_gas,optional"`
	InputSize            int64   `parquet:"input_size"`
	Variant              string  `parquet:"variant"`
	ContractCreation     bool    `parquet:"contract_creation"`
}

func NewTransactionRow(tx common.AnalyzedTx) TransactionRow {
	row := TransactionRow{
		BlockNumber:      tx.BlockNumber,
		Index:            tx.Index,
		Hash:             tx.Hash.Hex(),
		Nonce:            tx.Nonce,
		GasLimit:         tx.GasLimit,
		InputSize:        int64(tx.InputSize),
		Variant:          tx.VariantTag,
		ContractCreation: tx.IsContractCreation(),
		Value:            "0",
	}
	if tx.To != nil {
		to := tx.To.Hex()
		row.To = &to
	}
	if tx.Value != nil {
		row.Value = tx.Value.Dec()
	}
	if tx.GasPrice != nil {
		v := tx.GasPrice.Dec()
		row.GasPrice = &v
	}
	if tx.MaxFeePerGas != nil {
		v := tx.MaxFeePerGas.Dec()
		row.MaxFeePerGas = &v
	}
	if tx.MaxPriorityFeePerGas != nil {
		v := tx.MaxPriorityFeePerGas.Dec()
		row.MaxPriorityFeePerGas = &v
	}
	return row
}

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
	parquet.PageBufferSize(8 * 1024 * 1024), // 8MB pages
}

// Writer appends rows to parquet files under dir, starting a new file once maxRows rows
// were written. A file is named after the first and last block it holds once it is closed.
type Writer struct {
	dir     string
	maxRows int

	file      *os.File
	writer    *parquet.GenericWriter[TransactionRow]
	rows      int
	fromBlock uint64
	toBlock   uint64

	files []string
}

func NewWriter(dir string, maxRows int) (*Writer, error) {
	if maxRows <= 0 {
		maxRows = defaultMaxRowsPerFile
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &Writer{dir: dir, maxRows: maxRows}, nil
}

// Write appends rows in order, rotating files as they fill up.
func (w *Writer) Write(rows []TransactionRow) error {
	for len(rows) > 0 {
		if w.file == nil {
			if err := w.open(rows[0].BlockNumber); err != nil {
				return err
			}
		}

		n := min(w.maxRows-w.rows, len(rows))
		if _, err := w.writer.Write(rows[:n]); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
		w.rows += n
		w.toBlock = rows[n-1].BlockNumber
		metrics.ExportedRows.Add(float64(n))
		rows = rows[n:]

		if w.rows >= w.maxRows {
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) open(fromBlock uint64) error {
	file, err := os.CreateTemp(w.dir, "transactions-*.parquet.tmp")
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	w.file = file
	w.writer = parquet.NewGenericWriter[TransactionRow](file, writerOptions...)
	w.rows = 0
	w.fromBlock = fromBlock
	w.toBlock = fromBlock
	return nil
}

// Flush closes the current file, if any, and moves it to its final name.
func (w *Writer) Flush() error {
	if w.file == nil {
		return nil
	}
	tmp := w.file.Name()
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}
	w.file = nil
	w.writer = nil

	name := filepath.Join(w.dir, fmt.Sprintf("transactions_%d_%d.parquet", w.fromBlock, w.toBlock))
	if err := os.Rename(tmp, name); err != nil {
		return fmt.Errorf("failed to rename parquet file: %w", err)
	}
	w.files = append(w.files, name)
	metrics.ExportedFiles.Inc()
	return nil
}

// Files lists the completed files in the order they were written.
func (w *Writer) Files() []string {
	return w.files
}
