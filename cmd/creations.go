package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var creationsCmd = &cobra.Command{
	Use:   "creations <block>",
	Short: "Classify every transaction in a block as a contract creation or a call",
	Args:  cobra.ExactArgs(1),
	RunE:  RunCreations,
}

func RunCreations(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	creations, err := db.ContractCreations(n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, create := range creations {
		kind := "CALL"
		if create {
			kind = "CREATE"
		}
		fmt.Fprintf(out, "%d: %s\n", i, kind)
	}
	return nil
}
