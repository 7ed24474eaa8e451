package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type StoreEngine string

const (
	StoreEnginePebble StoreEngine = "pebble"
	StoreEngineBadger StoreEngine = "badger"
	StoreEngineMemory StoreEngine = "memory"
)

type StoreConfig struct {
	Path        string      `mapstructure:"path"`
	Engine      StoreEngine `mapstructure:"engine"`
	CacheSizeMB int         `mapstructure:"cacheSizeMB"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type ArchiveConfig struct {
	Dir        string    `mapstructure:"dir"`
	Compressed bool      `mapstructure:"compressed"`
	S3         *S3Config `mapstructure:"s3"`
}

type RangeConfig struct {
	ProbeCandidates []uint64 `mapstructure:"probeCandidates"`
}

type APIConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	MaxStatsSamples int    `mapstructure:"maxStatsSamples"`
	MaxStateSlots   int    `mapstructure:"maxStateSlots"`
}

type ExportConfig struct {
	Dir            string `mapstructure:"dir"`
	MaxRowsPerFile int    `mapstructure:"maxRowsPerFile"`
	S3Upload       bool   `mapstructure:"s3Upload"`
}

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Store   StoreConfig   `mapstructure:"store"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Range   RangeConfig   `mapstructure:"range"`
	API     APIConfig     `mapstructure:"api"`
	Export  ExportConfig  `mapstructure:"export"`
}

var Cfg Config

// DefaultProbeCandidates are the block numbers tested before the earliest block binary search.
var DefaultProbeCandidates = []uint64{1, 100, 1_000, 10_000}

func setDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("store.engine", string(StoreEnginePebble))
	viper.SetDefault("store.cacheSizeMB", 64)
	viper.SetDefault("archive.compressed", true)
	viper.SetDefault("range.probeCandidates", DefaultProbeCandidates)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 3000)
	viper.SetDefault("api.maxStatsSamples", 1_000)
	viper.SetDefault("api.maxStateSlots", 256)
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("export.maxRowsPerFile", 1_000_000)
}

func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// flags and env can carry everything a command needs, so a missing default file is fine
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. STORE_PATH to store.path
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return Cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Store.Engine {
	case StoreEnginePebble, StoreEngineBadger, StoreEngineMemory:
	case "":
		c.Store.Engine = StoreEnginePebble
	default:
		return fmt.Errorf("unsupported store engine %q", c.Store.Engine)
	}
	if len(c.Range.ProbeCandidates) == 0 {
		c.Range.ProbeCandidates = DefaultProbeCandidates
	}
	if c.Archive.S3 != nil && c.Archive.S3.Bucket == "" {
		c.Archive.S3 = nil
	}
	return nil
}
