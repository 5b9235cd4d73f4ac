// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

// extractDOCX concatenates paragraph text in document order, one paragraph
// per line. Tables and embedded objects are skipped.
func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", types.WrapStageError(types.KindReadError, err, "opening docx %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", types.WrapStageError(types.KindReadError, err, "stat docx %s", path)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", types.WrapStageError(types.KindReadError, err, "parsing docx %s", path)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		paragraphs = append(paragraphs, p.String())
	}
	return strings.Join(paragraphs, "\n"), nil
}
