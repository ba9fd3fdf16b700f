package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/setanarut/kaleidoslice/utils"
	"github.com/spf13/cobra"
)

// cfg is loaded once in the root PersistentPreRunE.
var cfg = utils.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:          "kaleidoslice",
	Short:        "Mirror an image four ways and interleave it into a kaleidoscope pattern",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		level, err := utils.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file with default options")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
