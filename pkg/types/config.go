// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the tool that reads text from PDF pages.
type ExtractionBackend string

const (
	// BackendLedongthuc reads the embedded text layer in-process.
	BackendLedongthuc ExtractionBackend = "ledongthuc"
	// BackendPdftotext runs poppler's pdftotext inside a container.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is a logrus level name ("info", "debug", ...).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ExtractionConfig holds settings for an extraction run.
type ExtractionConfig struct {
	// RootDir is the repository root the source inventory is derived from.
	RootDir string `json:"root" yaml:"root" mapstructure:"root"`

	// OutputDir overrides the default output directory under RootDir.
	OutputDir string `json:"output" yaml:"output" mapstructure:"output"`

	// Backend selects the extraction tool: ledongthuc or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	// DBPath, when set, is the SQLite page store updated after the run.
	DBPath string `json:"db,omitempty" yaml:"db,omitempty" mapstructure:"db"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}
