// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-triage CLI. It fetches the
// newest astro-ph.CO submissions, scores each title against the keyword
// table, and prints the ones above the relevance threshold.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-triage/internal/feed"
	"github.com/pdiddy/arxiv-triage/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the only command: there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "arxiv-triage",
	Short: "List the most relevant new astro-ph.CO preprints",
	Long: `arxiv-triage queries arXiv for the latest extragalactic and cosmology
papers, scores each title with a weighted keyword table, and prints those
scoring above 0.7. Lines are sorted by ascending score, so the most relevant
paper is printed last.

Output format is "SCORE  ID TITLE"; with --keywords the matched patterns are
appended to each line.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		log := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if used := viper.ConfigFileUsed(); used != "" {
			log.Info("using config file", "path", used)
		}
		fetcher := feed.NewArxivFetcher(cfg.Feed.HTTPConfig)
		return run(cmd.Context(), cfg, fetcher, cmd.OutOrStdout(), log)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-triage.yaml or ~/.config/arxiv-triage/config.yaml)")
	rootCmd.Flags().Bool("keywords", false, "display the keywords matched in each title")

	viper.BindPFlag("rank.show_keywords", rootCmd.Flags().Lookup("keywords"))
	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-triage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-triage"))
		}
	}

	viper.SetEnvPrefix("ARXIV_TRIAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
