// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/requirements-engine/internal/export"
	"github.com/pdiddy/requirements-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <report-text-file>",
	Short: "Render an existing report text as DOCX and PDF",
	Long: `Export reads a markdown-like report text from a file and renders the
DOCX and PDF artifacts without re-running inference. By default the
artifacts land beside the text file; --beside puts them beside another
document instead, named after that document's stem.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading report text: %w", err)
	}

	sourcePath := args[0]
	if beside, _ := cmd.Flags().GetString("beside"); beside != "" {
		sourcePath = beside
	}

	cfg := types.ExportConfig{Overwrite: viper.GetBool("export.overwrite")}
	if cmd.Flags().Changed("overwrite") {
		cfg.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	}

	result := export.SaveReports(string(data), sourcePath, cfg, os.Stderr)
	if result.Failed() {
		return fmt.Errorf("both report formats failed")
	}
	return nil
}

func init() {
	exportCmd.Flags().String("beside", "", "place the artifacts beside this document, named after its stem")
	exportCmd.Flags().Bool("overwrite", true, "replace existing report files")

	rootCmd.AddCommand(exportCmd)
}
