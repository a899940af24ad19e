// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/setly/pdftext/pkg/types"
)

// LedongthucOpener reads the embedded text layer in-process with
// github.com/ledongthuc/pdf. Image-only pages yield empty text.
type LedongthucOpener struct{}

// NewLedongthucOpener returns the default in-process backend.
func NewLedongthucOpener() *LedongthucOpener {
	return &LedongthucOpener{}
}

func (o *LedongthucOpener) Name() string { return string(types.BackendLedongthuc) }

// Open parses the PDF at path. The parser panics on some malformed
// files; those panics are returned as errors.
func (o *LedongthucOpener) Open(path string) (doc Document, err error) {
	var f *os.File
	defer func() {
		if r := recover(); r != nil {
			if f != nil {
				f.Close()
			}
			doc, err = nil, fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		// The file stays open when only the parse failed.
		if f != nil {
			f.Close()
		}
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &ledongthucDocument{file: f, reader: r}, nil
}

type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *ledongthucDocument) NumPage() int { return d.reader.NumPage() }

func (d *ledongthucDocument) PageText(n int) (string, error) {
	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no page object", n)
	}
	// nil fonts makes the library resolve this page's own font resources.
	return p.GetPlainText(nil)
}

func (d *ledongthucDocument) Close() error { return d.file.Close() }
