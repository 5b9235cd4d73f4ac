// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one full analysis run: read, normalize, analyze,
// export.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pdiddy/requirements-engine/internal/analyze"
	"github.com/pdiddy/requirements-engine/internal/export"
	"github.com/pdiddy/requirements-engine/internal/normalize"
	"github.com/pdiddy/requirements-engine/internal/reader"
	"github.com/pdiddy/requirements-engine/pkg/types"
)

// ErrBusy is returned when a run is requested while another is in flight.
var ErrBusy = errors.New("analysis run already in progress")

// Pipeline sequences the four stages and owns the single-run invariant: at
// most one analysis run is in flight at a time, enforced here rather than
// left to caller convention.
type Pipeline struct {
	cfg     types.PipelineConfig
	backend analyze.Backend
	mu      sync.Mutex
}

// New builds a pipeline around the given inference backend.
func New(cfg types.PipelineConfig, backend analyze.Backend) *Pipeline {
	return &Pipeline{cfg: cfg, backend: backend}
}

// Result summarizes one completed run.
type Result struct {
	Source          string                `yaml:"source"`
	Format          types.DocumentFormat  `yaml:"format"`
	ExtractedChars  int                   `yaml:"extracted_chars"`
	NormalizedChars int                   `yaml:"normalized_chars"`
	DOCXPath        string                `yaml:"docx,omitempty"`
	PDFPath         string                `yaml:"pdf,omitempty"`
	Duration        time.Duration         `yaml:"duration"`
	Report          *types.AnalysisReport `yaml:"-"`
}

// Run executes the full sequence for one source document, writing per-stage
// progress to w. Extraction and inference failures abort the run; export
// failures are isolated per format and land in the result, not in the
// returned error. A call while another run is in flight fails fast with
// ErrBusy.
func (p *Pipeline) Run(ctx context.Context, path string, w io.Writer) (*Result, error) {
	if !p.mu.TryLock() {
		return nil, ErrBusy
	}
	defer p.mu.Unlock()

	start := time.Now()

	doc, err := reader.Open(path)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "reading   %s (%s)\n", path, doc.Format)
	raw, err := reader.Extract(doc)
	if err != nil {
		return nil, err
	}

	clean := normalize.Clean(raw)
	fmt.Fprintf(w, "cleaned   %d chars (%d raw)\n", len([]rune(clean)), len([]rune(raw)))

	fmt.Fprintf(w, "analyzing with %s\n", p.cfg.Analysis.Model)
	report, err := analyze.Analyze(ctx, p.backend, clean, p.cfg.Analysis)
	if err != nil {
		return nil, err
	}

	exported := export.SaveReports(report.Content, path, p.cfg.Export, w)

	return &Result{
		Source:          path,
		Format:          doc.Format,
		ExtractedChars:  len([]rune(raw)),
		NormalizedChars: len([]rune(clean)),
		DOCXPath:        exported.DOCXPath,
		PDFPath:         exported.PDFPath,
		Duration:        time.Since(start).Round(time.Millisecond),
		Report:          report,
	}, nil
}
