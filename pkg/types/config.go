package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 120s). The inference
	// request runs under it instead of inheriting transport defaults.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "requirements-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call an inference service.
type AIConfig struct {
	// Model is the model identifier the inference service resolves
	// (e.g. "qwen2.5:3b").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the OpenAI-compatible endpoint of the inference service
	// (default "http://localhost:11434/v1", a local Ollama server).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against remote endpoints. Local servers
	// usually need none.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed inference
	// calls (default 1).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// AnalysisConfig holds settings for the requirements-analysis stage.
type AnalysisConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	// MaxInputChars caps the document text submitted to the model,
	// counted in characters (default 12000). Longer inputs are truncated
	// before submission, never silently processed in full.
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`

	// Language is the natural language the model must answer in
	// (default "German"). The report template itself is fixed.
	Language string `json:"language" yaml:"language"`
}

// ExportConfig holds settings for the report-export stage.
type ExportConfig struct {
	// Overwrite controls what happens when a report target already
	// exists: replace it (true, the default) or fail that format while
	// the sibling format still runs.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}

// PipelineConfig groups all stage configurations for one analysis run.
type PipelineConfig struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Export   ExportConfig   `json:"export" yaml:"export"`
}
