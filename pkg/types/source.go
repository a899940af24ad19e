// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared by the extraction stages and the CLI.
package types

// Source pairs a filesystem-safe slug with the path of a PDF to extract.
// The slug becomes the base name of the output text file.
type Source struct {
	// Slug is the short identifier used for the output file (e.g. "pitch-deck").
	Slug string `json:"slug" yaml:"slug"`

	// Path is the filesystem path to the source PDF.
	Path string `json:"path" yaml:"path"`
}

// PageResult is the outcome of extracting one page. Err is set when the
// page could not be extracted, in which case Text holds the placeholder
// written to the output instead.
type PageResult struct {
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"-" yaml:"-"`
	Err    error  `json:"-" yaml:"-"`
}

// Failed reports whether the page was replaced by an error placeholder.
func (p PageResult) Failed() bool {
	return p.Err != nil
}

// DocumentResult records what was written for one Source.
type DocumentResult struct {
	Source

	// Output is the path of the written text file.
	Output string `json:"output" yaml:"output"`

	// Pages lists every page in document order.
	Pages []PageResult `json:"-" yaml:"-"`
}

// FailedPages returns the numbers of pages replaced by a placeholder.
func (d DocumentResult) FailedPages() []int {
	var failed []int
	for _, p := range d.Pages {
		if p.Failed() {
			failed = append(failed, p.Number)
		}
	}
	return failed
}
