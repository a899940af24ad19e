// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/setly/pdftext/internal/inventory"
	"github.com/setly/pdftext/pkg/types"
)

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Backend   string
	OutputDir string
	Documents []types.DocumentResult
}

// Total returns the number of text files written.
func (r BatchResult) Total() int {
	return len(r.Documents)
}

// FailedPages returns the number of pages replaced by placeholders
// across all documents.
func (r BatchResult) FailedPages() int {
	n := 0
	for _, d := range r.Documents {
		n += len(d.FailedPages())
	}
	return n
}

// ConvertBatch validates that every source exists, then extracts each one
// in order and writes outDir/<slug>.txt. Nothing is written when an input
// is missing. A document that cannot be opened, or a failed write, stops
// the run; page failures only produce placeholders. On success the one-line
// summary is printed to w.
func ConvertBatch(ctx context.Context, o Opener, sources []types.Source, outDir string, w io.Writer, log logrus.FieldLogger) (BatchResult, error) {
	result := BatchResult{Backend: o.Name(), OutputDir: outDir}

	if err := inventory.Validate(sources); err != nil {
		return result, err
	}
	if err := EnsureDir(outDir); err != nil {
		return result, err
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, err := ConvertSource(o, src, outDir, log)
		if err != nil {
			return result, err
		}
		result.Documents = append(result.Documents, doc)
	}

	fmt.Fprintf(w, "Extracted %d PDFs to: %s\n", result.Total(), outDir)
	return result, nil
}

// ConvertSource extracts one source and writes its text file.
func ConvertSource(o Opener, src types.Source, outDir string, log logrus.FieldLogger) (types.DocumentResult, error) {
	entry := log.WithFields(logrus.Fields{"slug": src.Slug, "backend": o.Name()})

	text, pages, err := File(o, src.Path)
	if err != nil {
		return types.DocumentResult{}, fmt.Errorf("extracting %s: %w", src.Slug, err)
	}
	for _, p := range pages {
		if p.Failed() {
			entry.WithField("page", p.Number).WithError(p.Err).Warn("page extraction failed")
		}
	}

	out, err := WriteText(outDir, src.Slug, text)
	if err != nil {
		return types.DocumentResult{}, err
	}
	entry.WithFields(logrus.Fields{"pages": len(pages), "output": out}).Info("extracted")

	return types.DocumentResult{Source: src, Output: out, Pages: pages}, nil
}
