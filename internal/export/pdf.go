// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// writePDF renders the report onto A4 pages: a bold centered title block,
// then every line (blank or not) as a wrapped cell. Lines pass through
// SanitizeLine first because the core fonts only cover a single-byte
// Western encoding.
func writePDF(text, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, 10, tr(SanitizeLine(line)), "", "", false)
	}

	return pdf.OutputFileAndClose(path)
}
