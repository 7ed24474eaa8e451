package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/scan"
)

var receiptsScanCmd = &cobra.Command{
	Use:   "receipts-scan <block>",
	Short: "Print every receipt of the archive segment holding a block",
	Long:  "Opens only the archive directory. The key/value store is not needed.",
	Args:  cobra.ExactArgs(1),
	RunE:  RunReceiptsScan,
}

func RunReceiptsScan(cmd *cobra.Command, args []string) error {
	n, err := blockArg(args)
	if err != nil {
		return err
	}
	if config.Cfg.Archive.Dir == "" {
		return fmt.Errorf("no archive configured, set --archive-dir or archive.dir")
	}
	arc, err := archive.Open(config.Cfg.Archive.Dir, config.Cfg.Archive.Compressed)
	if err != nil {
		return err
	}
	defer arc.Close()

	out := cmd.OutOrStdout()
	count, err := scan.Receipts(arc, n, func(line scan.ReceiptLine) error {
		_, err := fmt.Fprintln(out, line)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Uint64("block", n).Int("receipts", count).Msg("Scanned receipts segment")
	return nil
}
