package export

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/libs"
)

// ExportPrefix is the key prefix uploaded files are stored under.
const ExportPrefix = "exports"

type BlockAnalyzer interface {
	Range() common.BlockRange
	AnalyzeBlock(n uint64) ([]common.AnalyzedTx, error)
}

type Upload struct {
	Client libs.S3Uploader
	Bucket string
	Prefix string
}

type Exporter struct {
	source BlockAnalyzer
	writer *Writer
	upload *Upload
}

// NewExporter writes to w; upload may be nil to keep files local.
func NewExporter(source BlockAnalyzer, w *Writer, upload *Upload) *Exporter {
	return &Exporter{source: source, writer: w, upload: upload}
}

type Result struct {
	Blocks int      `json:"blocks"`
	Rows   int      `json:"rows"`
	Files  []string `json:"files"`
}

// Run exports the analyzed transactions of the inclusive range [from, to]. Blocks outside
// the available range contribute no rows. The first block that cannot be read aborts the run.
func (e *Exporter) Run(ctx context.Context, from, to uint64) (*Result, error) {
	if from > to {
		return nil, common.NewInvalidArgumentError("export", "from block %d is after to block %d", from, to)
	}
	r := e.source.Range()
	if to > r.Latest {
		log.Warn().Uint64("to", to).Uint64("latest", r.Latest).Msg("Export range ends past the latest block, clamping")
		to = r.Latest
	}

	res := &Result{}
	for n := from; n <= to; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		analyzed, err := e.source.AnalyzeBlock(n)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze block %d: %w", n, err)
		}
		res.Blocks++

		if len(analyzed) > 0 {
			rows := make([]TransactionRow, 0, len(analyzed))
			for _, tx := range analyzed {
				rows = append(rows, NewTransactionRow(tx))
			}
			if err := e.writer.Write(rows); err != nil {
				return nil, err
			}
			res.Rows += len(rows)
		}
		if n == to {
			break
		}
	}
	if err := e.writer.Flush(); err != nil {
		return nil, err
	}
	res.Files = e.writer.Files()

	if e.upload != nil {
		for _, file := range res.Files {
			key := path.Join(e.upload.Prefix, ExportPrefix, filepath.Base(file))
			if err := libs.UploadFile(ctx, e.upload.Client, e.upload.Bucket, key, file); err != nil {
				return nil, err
			}
		}
	}

	log.Info().Uint64("from", from).Uint64("to", to).Int("rows", res.Rows).Int("files", len(res.Files)).Msg("Export finished")
	return res, nil
}
