// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/requirements-engine/internal/analyze"
	"github.com/pdiddy/requirements-engine/internal/pipeline"
	"github.com/pdiddy/requirements-engine/internal/secrets"
	"github.com/pdiddy/requirements-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <document>",
	Short: "Run the full analysis pipeline on a PDF or DOCX document",
	Long: `Analyze extracts the document's text, normalizes it, submits it to the
configured inference service, and writes <stem>_Report.docx and
<stem>_Report.pdf beside the source document. A YAML run summary goes
to stdout; per-stage progress goes to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfigFromFlags(cmd)

	p := pipeline.New(cfg, analyze.NewChatBackend(cfg.Analysis))

	result, err := p.Run(cmd.Context(), args[0], os.Stderr)
	if err != nil {
		return err
	}

	if printReport, _ := cmd.Flags().GetBool("print-report"); printReport {
		fmt.Println(result.Report.Content)
		return nil
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// pipelineConfigFromFlags merges flag values over the viper configuration.
func pipelineConfigFromFlags(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Analysis: types.AnalysisConfig{
			AIConfig: types.AIConfig{
				Model:      viper.GetString("analysis.model"),
				BaseURL:    viper.GetString("analysis.base_url"),
				APIKey:     secretDefault(secrets.InferenceAPIKey, viper.GetString("analysis.api_key")),
				MaxRetries: viper.GetInt("analysis.max_retries"),
			},
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("analysis.timeout"),
				UserAgent: "requirements-engine/" + version,
			},
			MaxInputChars: viper.GetInt("analysis.max_input_chars"),
			Language:      viper.GetString("analysis.language"),
		},
		Export: types.ExportConfig{
			Overwrite: viper.GetBool("export.overwrite"),
		},
	}

	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Analysis.Model = model
	}
	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.Analysis.BaseURL = baseURL
	}
	if maxChars, _ := cmd.Flags().GetInt("max-input-chars"); maxChars > 0 {
		cfg.Analysis.MaxInputChars = maxChars
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Analysis.Timeout = timeout
	}
	if retries, _ := cmd.Flags().GetInt("retries"); retries > 0 {
		cfg.Analysis.MaxRetries = retries
	}
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		cfg.Analysis.Language = language
	}
	if cmd.Flags().Changed("overwrite") {
		cfg.Export.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	}

	return cfg
}

func init() {
	analyzeCmd.Flags().String("model", "", "model identifier the inference service resolves")
	analyzeCmd.Flags().String("base-url", "", "OpenAI-compatible endpoint of the inference service")
	analyzeCmd.Flags().Int("max-input-chars", 0, "character budget for the submitted text")
	analyzeCmd.Flags().Duration("timeout", 0, "inference request timeout")
	analyzeCmd.Flags().Int("retries", 0, "retry attempts for failed inference calls")
	analyzeCmd.Flags().String("language", "", "response language of the report")
	analyzeCmd.Flags().Bool("overwrite", true, "replace existing report files")
	analyzeCmd.Flags().Bool("print-report", false, "print the report text instead of the YAML summary")

	rootCmd.AddCommand(analyzeCmd)
}
