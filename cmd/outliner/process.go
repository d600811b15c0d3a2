package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/batch"
	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/detect"
	"github.com/tsawler/outliner/hierarchy"
	"github.com/tsawler/outliner/model"
)

var (
	inputDir  string
	outputDir string
	workers   int
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract outlines for every PDF in a directory",
	Long: `Process scans the input directory for PDF files, pairs each with its
layout detection dump (<stem>.layout.json, written by the layout-model
sidecar), and writes <stem>.json outlines to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if inputDir != "" {
			cfg.InputDir = inputDir
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if workers > 0 {
			cfg.MaxWorkers = workers
		}

		engineCfg, err := cfg.EngineConfig()
		if err != nil {
			return err
		}

		runner := batch.NewRunner(batch.Options{
			InputDir:  cfg.InputDir,
			OutputDir: cfg.OutputDir,
			Workers:   cfg.MaxWorkers,
			Logger:    newLogger(),
		}, dumpProcessor(cfg, engineCfg))

		report, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}

		switch outputFormat {
		case "summary":
			printSummary(cmd.OutOrStdout(), cfg.OutputDir, report)
		default:
			rendered, err := report.Render(outputFormat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
		}

		if report.Failed > 0 {
			return fmt.Errorf("%d of %d documents failed", report.Failed, report.Total)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVarP(&inputDir, "input", "i", "", "input directory (overrides config)")
	processCmd.Flags().StringVarP(&outputDir, "out-dir", "d", "", "output directory (overrides config)")
	processCmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent workers (overrides config)")
}

// dumpProcessor builds the per-document processor: it loads the
// document's detection dump and runs the classification engine over it.
func dumpProcessor(cfg *config.Config, engineCfg hierarchy.Config) batch.ProcessorFunc {
	return func(ctx context.Context, pdfPath string) (model.Outline, error) {
		if err := ctx.Err(); err != nil {
			return model.Outline{}, err
		}

		dumpPath := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".layout.json"
		elements, err := detect.LoadElements(dumpPath)
		if err != nil {
			return model.Outline{}, err
		}

		elements = detect.Threshold(elements, cfg.ConfidenceThreshold)
		elements = detect.Headings(elements)
		detect.SortTopToBottom(elements)

		return outliner.FromElementsWithConfig(elements, engineCfg), nil
	}
}
