package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"billbook/internal/app"
	"billbook/internal/config"
	"billbook/internal/logger"
)

var version = "dev"

// ledgerApp is opened by the root command before any subcommand runs.
var ledgerApp *app.App

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Inspect, export and import the bottle billing ledger",
	Long: `ledgerctl operates directly on the ledger store named by the BILLBOOK_*
environment (or .env file), the same store the HTTP server uses.

Stop the server before importing: both processes keep their own copy of the
document and the last writer wins.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		// Logs go to stderr so command output can be piped.
		logCfg := cfg.Log.Logger()
		if logCfg.Output == "" || logCfg.Output == "stdout" {
			logCfg.Output = "stderr"
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
			logCfg.Level = "warn"
		}
		if err := logger.Setup(logCfg); err != nil {
			return err
		}

		ledgerApp, err = app.New(cmd.Context(), cfg)
		return err
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if ledgerApp == nil {
			return nil
		}
		return ledgerApp.Close()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("ledgerctl")
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at the configured level instead of warn")
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
