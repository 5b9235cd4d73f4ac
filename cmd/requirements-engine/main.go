// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the requirements-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/requirements-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the requirements-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "requirements-engine",
	Short: "Requirements-engineering analysis for PDF and DOCX documents",
	Long: `requirements-engine extracts text from a PDF or DOCX document, cleans it,
sends it to a local language model for requirements-engineering analysis,
and exports the structured answer as DOCX and PDF reports beside the
source document.

Each pipeline stage is reachable on its own: analyze runs the full
read-normalize-analyze-export sequence, extract stops after text cleanup,
and export renders an existing report text without re-running inference.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./requirements-engine.yaml or ~/.config/requirements-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("requirements-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "requirements-engine"))
		}
	}

	viper.SetEnvPrefix("REQUIREMENTS_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("analysis.model", "qwen2.5:3b")
	viper.SetDefault("analysis.base_url", "http://localhost:11434/v1")
	viper.SetDefault("analysis.max_input_chars", 12000)
	viper.SetDefault("analysis.max_retries", 1)
	viper.SetDefault("analysis.timeout", "120s")
	viper.SetDefault("analysis.language", "German")
	viper.SetDefault("export.overwrite", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
