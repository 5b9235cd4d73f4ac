package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/requirements-engine/internal/normalize"
	"github.com/pdiddy/requirements-engine/internal/reader"
)

var extractCmd = &cobra.Command{
	Use:   "extract <document>",
	Short: "Extract and clean a document's text without analyzing it",
	Long: `Extract reads a PDF or DOCX document, extracts its visible text, runs
the normalization passes (de-hyphenation, footer stripping, whitespace
collapsing), and prints the cleaned text to stdout or writes it to a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	doc, err := reader.Open(args[0])
	if err != nil {
		return err
	}

	raw, err := reader.Extract(doc)
	if err != nil {
		return err
	}

	var text string
	if noClean, _ := cmd.Flags().GetBool("raw"); noClean {
		text = raw
	} else {
		text = normalize.Clean(raw)
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "written: %s\n", out)
		return nil
	}

	fmt.Println(text)
	return nil
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "write the text to a file instead of stdout")
	extractCmd.Flags().Bool("raw", false, "skip normalization and print the raw extracted text")

	rootCmd.AddCommand(extractCmd)
}
