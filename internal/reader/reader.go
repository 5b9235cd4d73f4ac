// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader extracts plain text from PDF and DOCX source documents.
package reader

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

// DetectFormat determines the document format from the path's extension,
// case-insensitively. Unrecognized or missing extensions produce a
// KindUnsupportedFormat error carrying the rejected extension.
func DetectFormat(path string) (types.DocumentFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx":
		return types.FormatDOCX, nil
	default:
		return "", types.NewStageError(types.KindUnsupportedFormat, "unsupported document format %q", ext)
	}
}

// Open resolves a path into a SourceDocument.
func Open(path string) (types.SourceDocument, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return types.SourceDocument{}, err
	}
	return types.SourceDocument{Path: path, Format: format}, nil
}

// Extract reads the document's visible text. An empty result is a valid
// outcome (a scanned PDF without a text layer, an empty DOCX); failure is
// reported only through the error, never through the text.
func Extract(doc types.SourceDocument) (string, error) {
	switch doc.Format {
	case types.FormatPDF:
		return extractPDF(doc.Path)
	case types.FormatDOCX:
		return extractDOCX(doc.Path)
	default:
		return "", types.NewStageError(types.KindUnsupportedFormat, "unsupported document format %q", string(doc.Format))
	}
}
