// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk YAML summary of a batch run.
type Report struct {
	Backend     string           `yaml:"backend"`
	OutputDir   string           `yaml:"output_dir"`
	GeneratedAt time.Time        `yaml:"generated_at"`
	Documents   []DocumentReport `yaml:"documents"`
	Summary     ReportSummary    `yaml:"summary"`
}

// DocumentReport describes one extracted document.
type DocumentReport struct {
	Slug        string `yaml:"slug"`
	Source      string `yaml:"source"`
	Output      string `yaml:"output"`
	Pages       int    `yaml:"pages"`
	FailedPages []int  `yaml:"failed_pages,omitempty"`
}

// ReportSummary holds run totals.
type ReportSummary struct {
	Documents   int `yaml:"documents"`
	Pages       int `yaml:"pages"`
	FailedPages int `yaml:"failed_pages"`
}

// NewReport builds a Report from a finished batch.
func NewReport(r BatchResult, now time.Time) Report {
	rep := Report{
		Backend:     r.Backend,
		OutputDir:   r.OutputDir,
		GeneratedAt: now.UTC(),
		Documents:   make([]DocumentReport, 0, len(r.Documents)),
	}
	for _, d := range r.Documents {
		rep.Documents = append(rep.Documents, DocumentReport{
			Slug:        d.Slug,
			Source:      d.Path,
			Output:      d.Output,
			Pages:       len(d.Pages),
			FailedPages: d.FailedPages(),
		})
		rep.Summary.Pages += len(d.Pages)
	}
	rep.Summary.Documents = r.Total()
	rep.Summary.FailedPages = r.FailedPages()
	return rep
}

// WriteReport saves a YAML report of r to path.
func WriteReport(path string, r BatchResult) error {
	data, err := yaml.Marshal(NewReport(r, time.Now()))
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &rep, nil
}
