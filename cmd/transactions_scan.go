package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/chainscan/internal/scan"
)

var transactionsScanCmd = &cobra.Command{
	Use:   "transactions-scan <block>",
	Short: "Read a block's transactions straight from the archive transactions segment",
	Args:  cobra.ExactArgs(1),
	RunE:  RunTransactionsScan,
}

func RunTransactionsScan(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	arc := db.Archive()
	if arc == nil {
		return fmt.Errorf("no archive configured, set --archive-dir or archive.dir")
	}
	lines, err := scan.Transactions(db.Store(), arc, n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
