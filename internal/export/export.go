// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders an analysis report into DOCX and PDF files beside
// the source document.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

const (
	// reportSuffix is appended to the source basename for both artifacts.
	reportSuffix = "_Report"

	// reportTitle is the fixed title block of both rendered formats.
	reportTitle = "Requirements Analysis Report"
)

// OutputPaths derives the report target paths from the source document
// path: the source's own directory, its stem plus "_Report", one path per
// format.
func OutputPaths(sourcePath string) (docxPath, pdfPath string) {
	dir := filepath.Dir(sourcePath)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	base := filepath.Join(dir, stem+reportSuffix)
	return base + ".docx", base + ".pdf"
}

// SaveReports renders both report formats for the given markdown-like text.
// The formats are attempted independently: a failure is recorded in the
// result as a KindExportError and never prevents the sibling format's
// attempt. Per-file status lines go to w.
func SaveReports(text, sourcePath string, cfg types.ExportConfig, w io.Writer) types.ExportResult {
	docxPath, pdfPath := OutputPaths(sourcePath)

	var result types.ExportResult

	if err := renderTarget(docxPath, cfg, func(path string) error { return writeDOCX(text, path) }); err != nil {
		result.DOCXErr = types.WrapStageError(types.KindExportError, err, "rendering %s", docxPath)
		fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(docxPath), err)
	} else {
		result.DOCXPath = docxPath
		fmt.Fprintf(w, "written: %s\n", filepath.Base(docxPath))
	}

	if err := renderTarget(pdfPath, cfg, func(path string) error { return writePDF(text, path) }); err != nil {
		result.PDFErr = types.WrapStageError(types.KindExportError, err, "rendering %s", pdfPath)
		fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(pdfPath), err)
	} else {
		result.PDFPath = pdfPath
		fmt.Fprintf(w, "written: %s\n", filepath.Base(pdfPath))
	}

	return result
}

// renderTarget applies the overwrite policy before rendering into path.
func renderTarget(path string, cfg types.ExportConfig, render func(string) error) error {
	if !cfg.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("target already exists")
		}
	}
	return render(path)
}

// headingLine reports whether line is a #-prefixed heading and returns its
// text and level (1-3). Deeper nesting is not a heading.
func headingLine(line string) (string, int, bool) {
	for level := 3; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), level, true
		}
	}
	return "", 0, false
}
