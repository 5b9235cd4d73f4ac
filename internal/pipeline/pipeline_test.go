// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	docx "github.com/fumiama/go-docx"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

// fakeBackend implements analyze.Backend with a canned report. An optional
// gate channel lets a test hold a run in flight.
type fakeBackend struct {
	response string
	err      error
	entered  chan struct{}
	gate     chan struct{}

	lastUser string
}

func (f *fakeBackend) Complete(ctx context.Context, system, user string) (string, error) {
	f.lastUser = user
	if f.entered != nil {
		close(f.entered)
		f.entered = nil
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// writeSourceDOCX creates a DOCX document with the given paragraphs.
func writeSourceDOCX(t *testing.T, path string, paragraphs []string) {
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
		t.Fatal(err)
	}
}

func testConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Analysis: types.AnalysisConfig{AIConfig: types.AIConfig{Model: "test-model", MaxRetries: 1}},
		Export:   types.ExportConfig{Overwrite: true},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "lastenheft.docx")
	writeSourceDOCX(t, source, []string{"Das System muss die Anforde-", "rung erfüllen.", "Seite 1 von 2"})

	report := "# Analyse-Bericht\n\n## 1. Zusammenfassung\nKurz.\n\n## 2. Funktionale Anforderungen\n- [REQ-F-01] Muss."
	backend := &fakeBackend{response: report}

	var log bytes.Buffer
	result, err := New(testConfig(), backend).Run(context.Background(), source, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Format != types.FormatDOCX {
		t.Errorf("format = %q", result.Format)
	}
	if result.Report.Content != report {
		t.Errorf("report content modified: %q", result.Report.Content)
	}

	// Normalization happened before submission: hyphen joined, footer gone.
	if !strings.Contains(backend.lastUser, "Anforderung") {
		t.Errorf("submitted text %q misses joined word", backend.lastUser)
	}
	if strings.Contains(backend.lastUser, "Seite 1 von 2") {
		t.Errorf("submitted text %q kept page footer", backend.lastUser)
	}

	wantDOCX := filepath.Join(dir, "lastenheft_Report.docx")
	wantPDF := filepath.Join(dir, "lastenheft_Report.pdf")
	if result.DOCXPath != wantDOCX || result.PDFPath != wantPDF {
		t.Errorf("paths = (%q, %q), want (%q, %q)", result.DOCXPath, result.PDFPath, wantDOCX, wantPDF)
	}
	for _, path := range []string{wantDOCX, wantPDF} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing artifact: %v", err)
		}
	}
}

func TestRun_UnsupportedFormatAbortsEarly(t *testing.T) {
	backend := &fakeBackend{response: "report"}
	_, err := New(testConfig(), backend).Run(context.Background(), "notes.txt", &bytes.Buffer{})
	if types.KindOf(err) != types.KindUnsupportedFormat {
		t.Errorf("kind = %q, want %q", types.KindOf(err), types.KindUnsupportedFormat)
	}
}

func TestRun_InferenceFailureExportsNothing(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "doc.docx")
	writeSourceDOCX(t, source, []string{"Inhalt"})

	backend := &fakeBackend{err: errors.New("service down")}
	_, err := New(testConfig(), backend).Run(context.Background(), source, &bytes.Buffer{})
	if types.KindOf(err) != types.KindInferenceError {
		t.Fatalf("kind = %q, want %q (err: %v)", types.KindOf(err), types.KindInferenceError, err)
	}

	// No partial analysis may be exported.
	docxPath := filepath.Join(dir, "doc_Report.docx")
	if _, err := os.Stat(docxPath); !os.IsNotExist(err) {
		t.Errorf("report artifact written despite aborted run")
	}
}

func TestRun_SecondRunWhileBusy(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "doc.docx")
	writeSourceDOCX(t, source, []string{"Inhalt"})

	backend := &fakeBackend{response: "report", entered: make(chan struct{}), gate: make(chan struct{})}
	p := New(testConfig(), backend)
	entered := backend.entered

	done := make(chan error, 1)
	go func() {
		_, err := p.Run(context.Background(), source, &bytes.Buffer{})
		done <- err
	}()

	// Wait until the first run holds the lock inside the backend call.
	<-entered

	if _, err := p.Run(context.Background(), source, &bytes.Buffer{}); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent run: err = %v, want ErrBusy", err)
	}

	close(backend.gate)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// With the first run finished the pipeline accepts work again.
	if _, err := p.Run(context.Background(), source, &bytes.Buffer{}); err != nil {
		t.Errorf("run after release failed: %v", err)
	}
}
