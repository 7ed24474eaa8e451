package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tosCmd = &cobra.Command{
	Use:   "tos <block>",
	Short: "Print the destination of every transaction in a block",
	Long:  "Prints one line per transaction in block order. Contract creations have no destination and print None.",
	Args:  cobra.ExactArgs(1),
	RunE:  RunTos,
}

func RunTos(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	tos, err := db.TransactionTos(n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, to := range tos {
		if to == nil {
			fmt.Fprintf(out, "%d: None\n", i)
			continue
		}
		fmt.Fprintf(out, "%d: %s\n", i, to.Hex())
	}
	return nil
}
