package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Range Metrics
var (
	LatestBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chainscan_latest_block",
		Help: "The latest block number detected when the store was opened",
	})

	EarliestBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chainscan_earliest_block",
		Help: "The earliest block with a resolvable header detected when the store was opened",
	})
)

// Query Metrics
var (
	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainscan_queries_total",
		Help: "The total number of block queries served",
	}, []string{"op"})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainscan_store_errors_total",
		Help: "The total number of queries that failed with a store access error",
	}, []string{"op"})
)

// Archive Metrics
var (
	ArchiveRecordsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainscan_archive_records_read_total",
		Help: "The total number of records read from archive segments",
	}, []string{"kind"})

	ArchiveRecordsMissing = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainscan_archive_records_missing_total",
		Help: "The total number of records absent from archive segments during reads",
	}, []string{"kind"})

	ArchiveSegmentDownloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainscan_archive_segment_downloads_total",
		Help: "The total number of segment files downloaded from the remote archive",
	})
)

// Export Metrics
var (
	ExportedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainscan_exported_rows_total",
		Help: "The total number of analyzed transactions written to parquet",
	})

	ExportedFiles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainscan_exported_files_total",
		Help: "The total number of parquet files written",
	})
)
