package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <block>",
	Short: "Print the normalized form of every transaction in a block, one JSON object per line",
	Args:  cobra.ExactArgs(1),
	RunE:  RunAnalyze,
}

func RunAnalyze(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	analyzed, err := db.AnalyzeBlock(n)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, tx := range analyzed {
		if err := enc.Encode(tx); err != nil {
			return err
		}
	}
	return nil
}
