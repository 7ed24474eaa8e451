package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

var stateCmd = &cobra.Command{
	Use:   "state <address>",
	Short: "Print an account and its first storage slots from the latest state",
	Args:  cobra.ExactArgs(1),
	RunE:  RunState,
}

func init() {
	stateCmd.Flags().Int("slots", 4, "How many storage slots to read, starting at slot 0")
}

func RunState(cmd *cobra.Command, args []string) error {
	addr, err := common.ParseAddress(args[0])
	if err != nil {
		return err
	}
	slots, err := cmd.Flags().GetInt("slots")
	if err != nil {
		return err
	}
	if slots < 0 {
		return common.NewInvalidArgumentError("state", "slot count must not be negative")
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := db.StateOf(addr, slots)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if report.Account == nil {
		fmt.Fprintf(out, "Account %s not found\n", addr.Hex())
	} else {
		fmt.Fprintf(out, "Account %s\nBalance: %s\nNonce: %d\nCode present: %t\n",
			addr.Hex(), report.Account.Balance.Dec(), report.Account.Nonce, report.Account.CodePresent)
	}
	for _, slot := range report.Slots {
		fmt.Fprintf(out, "Slot %s: %s\n", slot.Key.Hex(), slot.Value.Hex())
	}
	return nil
}
