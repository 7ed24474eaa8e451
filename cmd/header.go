package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:   "header <block>",
	Short: "Print a block header and its transaction count",
	Args:  cobra.ExactArgs(1),
	RunE:  RunHeader,
}

func RunHeader(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := db.GetBlockData(n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if data == nil {
		fmt.Fprintf(out, "Block #%d not found or not available\n", n)
		return nil
	}
	fmt.Fprintf(out, "Block #%d\nHash: %s\nParent: %s\nTimestamp: %d\nTx count: %d\n",
		data.Header.Number, data.Header.Hash.Hex(), data.Header.ParentHash.Hex(), data.Header.Timestamp, data.TxCount)
	return nil
}
