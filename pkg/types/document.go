package types

// DocumentFormat identifies a supported source document format.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// SourceDocument identifies the file one analysis run works on. It is
// created when the caller picks a path, read once, and never mutated.
type SourceDocument struct {
	Path   string         `json:"path" yaml:"path"`
	Format DocumentFormat `json:"format" yaml:"format"`
}

// AnalysisReport is the markdown answer produced by one analysis run. The
// content is the model's response verbatim; its section structure is
// enforced by prompt only and never validated here.
type AnalysisReport struct {
	Content string `json:"content" yaml:"content"`
	Model   string `json:"model" yaml:"model"`
}

// ExportResult pairs the outcomes of one export run. An empty path means
// that format's render failed; the matching error says why. One format
// failing never prevents the other's attempt.
type ExportResult struct {
	DOCXPath string `json:"docx,omitempty" yaml:"docx,omitempty"`
	PDFPath  string `json:"pdf,omitempty" yaml:"pdf,omitempty"`

	DOCXErr error `json:"-" yaml:"-"`
	PDFErr  error `json:"-" yaml:"-"`
}

// Complete reports whether both formats rendered.
func (r ExportResult) Complete() bool {
	return r.DOCXPath != "" && r.PDFPath != ""
}

// Failed reports whether neither format rendered.
func (r ExportResult) Failed() bool {
	return r.DOCXPath == "" && r.PDFPath == ""
}
