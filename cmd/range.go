package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Print the latest and earliest available blocks",
	Args:  cobra.NoArgs,
	RunE:  RunRange,
}

func RunRange(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	r := db.Range()
	fmt.Fprintf(cmd.OutOrStdout(), "Latest: %d\nEarliest: %d\n", r.Latest, r.Earliest)
	return nil
}
