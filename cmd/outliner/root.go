package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Extract structured outlines from PDF documents",
	Long: `Outliner turns layout-model detections over PDF pages into a document
outline: a title plus an ordered list of headings tagged H1, H2 or H3.

The process command walks a directory of PDFs, pairs each file with its
<stem>.layout.json detection dump, and writes one outline JSON per
document. A document that cannot be processed gets an error payload
instead; it never aborts the batch.`,
	Version: version.String(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.outliner/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "summary", "output format: summary, json or yaml",
	)

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	return mgr.Get(), nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
