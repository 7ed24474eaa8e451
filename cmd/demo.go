package cmd

import (
	"encoding/json"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

var demoCmd = &cobra.Command{
	Use:   "demo <block>",
	Short: "Exercise every store capability around a block and print what each returned",
	Args:  cobra.ExactArgs(1),
	RunE:  RunDemo,
}

func init() {
	demoCmd.Flags().String("tx", "", "Transaction hash to look up a receipt for")
}

func RunDemo(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	var txHash *gethCommon.Hash
	if raw, _ := cmd.Flags().GetString("tx"); raw != "" {
		h, err := common.ParseHash(raw)
		if err != nil {
			return err
		}
		txHash = &h
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := db.ExerciseCapabilities(n, txHash)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
