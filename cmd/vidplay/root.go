package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	catalogPath string
	logLevel    string
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "vidplay",
	Short: "Command-line video player simulator",
	Long: `vidplay - command-line video player simulator

Starts an interactive session over a catalog of videos. Play, pause and
stop videos, build playlists, search by title or tag, and flag videos
that should not be played.

Type HELP in the session for the list of commands.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlayer,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vidplay {{.Version}}\n")
}
