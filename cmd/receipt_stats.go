package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

var receiptStatsCmd = &cobra.Command{
	Use:   "receipt-stats",
	Short: "Aggregate receipts of blocks sampled across the available range",
	Args:  cobra.NoArgs,
	RunE:  RunReceiptStats,
}

func init() {
	receiptStatsCmd.Flags().Int("count", 10, "How many blocks to sample, starting from the latest")
}

func RunReceiptStats(cmd *cobra.Command, args []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count <= 0 {
		return common.NewInvalidArgumentError("receipt stats", "sample count must be positive")
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	stats := db.ReceiptStats(count)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Blocks sampled: %v\nReceipts: %d\nSuccessful: %d\nFailed: %d\nTotal cumulative gas: %d\n",
		stats.Blocks, stats.Receipts, stats.Successful, stats.Failed, stats.TotalCumulativeGas)
	if rate, ok := stats.SuccessRate(); ok {
		fmt.Fprintf(out, "Success rate: %.2f%%\n", rate)
	}
	return nil
}
