package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	config "github.com/thirdweb-dev/chainscan/configs"
	customLogger "github.com/thirdweb-dev/chainscan/internal/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
	"github.com/thirdweb-dev/chainscan/internal/query"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           "chainscan",
		Short:         "Read-only queries over a two-tier chain history store",
		Long:          "Reads block headers, transactions, receipts and account state from a key/value index and a segmented archive.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log", "", "Log level to use for the application (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("store-path", "", "Path of the key/value store")
	rootCmd.PersistentFlags().String("store-engine", "", "Key/value store engine (pebble|badger|memory)")
	rootCmd.PersistentFlags().Int("store-cache-size-mb", 0, "Block cache size of the key/value store in MB")
	rootCmd.PersistentFlags().String("archive-dir", "", "Directory holding archive segment files")
	rootCmd.PersistentFlags().Bool("archive-compressed", true, "Whether archive segment records are zstd compressed")
	rootCmd.PersistentFlags().String("archive-s3-bucket", "", "S3 bucket to download missing archive segments from")
	rootCmd.PersistentFlags().String("archive-s3-prefix", "", "Key prefix of archive segments in the S3 bucket")
	rootCmd.PersistentFlags().String("archive-s3-region", "", "Region of the archive S3 bucket")
	rootCmd.PersistentFlags().String("archive-s3-endpoint", "", "Custom S3 endpoint, for S3 compatible stores")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store-path"))
	viper.BindPFlag("store.engine", rootCmd.PersistentFlags().Lookup("store-engine"))
	viper.BindPFlag("store.cacheSizeMB", rootCmd.PersistentFlags().Lookup("store-cache-size-mb"))
	viper.BindPFlag("archive.dir", rootCmd.PersistentFlags().Lookup("archive-dir"))
	viper.BindPFlag("archive.compressed", rootCmd.PersistentFlags().Lookup("archive-compressed"))
	viper.BindPFlag("archive.s3.bucket", rootCmd.PersistentFlags().Lookup("archive-s3-bucket"))
	viper.BindPFlag("archive.s3.prefix", rootCmd.PersistentFlags().Lookup("archive-s3-prefix"))
	viper.BindPFlag("archive.s3.region", rootCmd.PersistentFlags().Lookup("archive-s3-region"))
	viper.BindPFlag("archive.s3.endpoint", rootCmd.PersistentFlags().Lookup("archive-s3-endpoint"))

	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(tosCmd)
	rootCmd.AddCommand(creationsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(receiptStatsCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(transactionsScanCmd)
	rootCmd.AddCommand(receiptsScanCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() error {
	if err := config.LoadConfig(cfgFile); err != nil {
		return err
	}
	customLogger.InitLogger()
	return nil
}

// openDatabase opens the configured store and detects its block range.
func openDatabase(cmd *cobra.Command) (*query.Database, error) {
	if config.Cfg.Store.Path == "" && config.Cfg.Store.Engine != config.StoreEngineMemory {
		return nil, fmt.Errorf("no store path configured, set --store-path or store.path")
	}
	db, err := query.Open(cmd.Context(), &config.Cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	r := db.Range()
	log.Info().Uint64("latest", r.Latest).Uint64("earliest", r.Earliest).Msg("Opened store")
	return db, nil
}

func blockArg(args []string) (uint64, error) {
	return common.ParseBlockNumber(args[0])
}
