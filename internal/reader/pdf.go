// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

// extractPDF pulls text page by page, joining pages with newlines. Pages
// without a text layer contribute nothing.
func extractPDF(path string) (text string, err error) {
	// The pdf parser panics on some malformed files; convert that into a
	// regular read error so a corrupt input never crashes the caller.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = types.NewStageError(types.KindReadError, "parsing pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", types.WrapStageError(types.KindReadError, err, "opening pdf %s", path)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", types.WrapStageError(types.KindReadError, err, "extracting pdf page %d of %s", i, path)
		}
		if pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}
