// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"os"
	"testing"

	docx "github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
)

// writeTestDOCX creates a minimal DOCX file with one paragraph per entry.
func writeTestDOCX(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	doc := docx.New().WithDefaultTheme()
	for _, p := range paragraphs {
		doc.AddParagraph().AddText(p)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		t.Fatalf("writing test docx: %v", err)
	}
}

// writeTestPDF creates a single-page PDF with one text cell per line. With
// no lines the page stays blank, simulating a scan without a text layer.
func writeTestPDF(t *testing.T, path string, lines []string) {
	t.Helper()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.CellFormat(0, 10, line, "", 1, "L", false, 0, "")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing test pdf: %v", err)
	}
}
