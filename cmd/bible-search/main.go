// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bible-search CLI. With no
// subcommand it starts the interactive shell; the subcommands run one
// search or library operation and exit.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bible-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bible-search CLI.
var rootCmd = &cobra.Command{
	Use:   "bible-search",
	Short: "Search and study the Bible from the terminal",
	Long: `bible-search loads a verse text file and answers free-form queries:
references (Col 2:2,4-6), whole chapters (Col 1), whole books (Col) and
keywords (love one another). Searches, bookmarks and history are kept in a
local SQLite library.

Run without a subcommand for the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := setupLogger(cfg.Log, os.Stderr); err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Info().Str("path", used).Msg("using config file")
		}
		return nil
	},
	RunE: runShell,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./bible-search.yaml or ~/.config/bible-search/bible-search.yaml)")
	flags.String("corpus", "", "verse text file, one \"Book C:V text\" per line")
	flags.String("data-dir", "", "directory for the history and bookmark database")
	flags.String("history-policy", "", "when to record searches: matched or recognized")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("corpus.path", flags.Lookup("corpus"))
	_ = viper.BindPFlag("library.data_dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("search.history_policy", flags.Lookup("history-policy"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bible-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bible-search"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("BIBLE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func setDefaults() {
	dataDir := filepath.Join(".", "library")
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".local", "share", "bible-search")
	}

	viper.SetDefault("corpus.path", filepath.Join("data", "bible.txt"))
	viper.SetDefault("library.data_dir", dataDir)
	viper.SetDefault("library.history_limit", 0)
	viper.SetDefault("search.history_policy", string(types.HistoryMatched))
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")
}

// loadConfig decodes the merged flags, environment, file and defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if !cfg.Search.HistoryPolicy.Valid() {
		return cfg, fmt.Errorf("invalid search.history_policy %q: use matched or recognized", cfg.Search.HistoryPolicy)
	}
	if cfg.Library.HistoryLimit < 0 {
		return cfg, fmt.Errorf("invalid library.history_limit %d: must be zero or more", cfg.Library.HistoryLimit)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
