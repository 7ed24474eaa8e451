package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/export"
	"github.com/thirdweb-dev/chainscan/internal/libs"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the analyzed transactions of a block range to parquet files",
	Args:  cobra.NoArgs,
	RunE:  RunExport,
}

func init() {
	exportCmd.Flags().String("from", "", "First block to export")
	exportCmd.Flags().String("to", "", "Last block to export, inclusive")
	exportCmd.Flags().String("export-dir", "", "Directory to write parquet files to")
	exportCmd.Flags().Int("export-max-rows-per-file", 0, "Rows per parquet file before a new file is started")
	exportCmd.Flags().Bool("export-s3-upload", false, "Upload finished files to the archive S3 bucket")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")
	viper.BindPFlag("export.dir", exportCmd.Flags().Lookup("export-dir"))
	viper.BindPFlag("export.maxRowsPerFile", exportCmd.Flags().Lookup("export-max-rows-per-file"))
	viper.BindPFlag("export.s3Upload", exportCmd.Flags().Lookup("export-s3-upload"))
}

func RunExport(cmd *cobra.Command, args []string) error {
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	from, err := common.ParseBlockNumber(fromRaw)
	if err != nil {
		return err
	}
	to, err := common.ParseBlockNumber(toRaw)
	if err != nil {
		return err
	}

	var upload *export.Upload
	if config.Cfg.Export.S3Upload {
		s3Cfg := config.Cfg.Archive.S3
		if s3Cfg == nil {
			return fmt.Errorf("export upload needs archive.s3.bucket to be configured")
		}
		client, err := libs.NewS3Client(cmd.Context(), s3Cfg)
		if err != nil {
			return err
		}
		upload = &export.Upload{Client: client, Bucket: s3Cfg.Bucket, Prefix: s3Cfg.Prefix}
	}

	writer, err := export.NewWriter(config.Cfg.Export.Dir, config.Cfg.Export.MaxRowsPerFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := export.NewExporter(db, writer, upload).Run(cmd.Context(), from, to)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exported %d transactions from %d blocks\n", res.Rows, res.Blocks)
	for _, file := range res.Files {
		fmt.Fprintln(out, file)
	}
	return nil
}
