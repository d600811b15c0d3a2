package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/render"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pdf> [file.pdf...]",
	Short: "Show page count and size for PDF files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []render.DocInfo
		for _, path := range args {
			info, err := render.Info(path)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}

		switch outputFormat {
		case "json":
			rendered, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
		case "yaml":
			rendered, err := yaml.Marshal(infos)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
		default:
			for _, info := range infos {
				valid := successStyle.Render("valid")
				if err := render.Validate(info.Path); err != nil {
					valid = errorStyle.Render("invalid")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", headerStyle.Render(info.Path), valid)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %d\n", dimStyle.Render("Pages:"), info.Pages)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %d bytes\n", dimStyle.Render("Size:"), info.SizeBytes)
			}
		}
		return nil
	},
}
