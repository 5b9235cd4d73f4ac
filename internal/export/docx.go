// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// headingSizes are run sizes in half-points for heading levels 1-3. The
// library has no named heading styles, so levels map to stepped bold sizes.
var headingSizes = [...]string{"36", "30", "26"}

const titleSize = "40"

// writeDOCX walks the report line by line: blank lines are skipped, lines
// with one to three #-space markers become headings of the matching level,
// every other line a body paragraph. Inline markdown is not interpreted.
func writeDOCX(text, path string) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(reportTitle).Size(titleSize).Bold()

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if content, level, ok := headingLine(line); ok {
			doc.AddParagraph().AddText(content).Size(headingSizes[level-1]).Bold()
			continue
		}
		doc.AddParagraph().AddText(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
