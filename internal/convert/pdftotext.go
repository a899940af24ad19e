// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/setly/pdftext/internal/container"
	"github.com/setly/pdftext/pkg/types"
)

const imagePoppler = "poppler:latest"

// PdftotextOpener extracts pages with poppler's pdftotext running in a
// container. Page counts come from pdfcpu so each page can be requested
// on its own and fail on its own.
type PdftotextOpener struct {
	runtime   container.Runtime
	pageCount func(path string) (int, error)
}

// NewPdftotextOpener verifies that the poppler image exists in rt.
func NewPdftotextOpener(rt container.Runtime) (*PdftotextOpener, error) {
	if err := rt.ImageExists(imagePoppler); err != nil {
		return nil, fmt.Errorf("poppler image not available in %s: %w", rt.Name(), err)
	}
	return &PdftotextOpener{runtime: rt, pageCount: api.PageCountFile}, nil
}

func (o *PdftotextOpener) Name() string { return string(types.BackendPdftotext) }

func (o *PdftotextOpener) Open(path string) (Document, error) {
	n, err := o.pageCount(path)
	if err != nil {
		return nil, fmt.Errorf("reading page count of %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}
	return &pdftotextDocument{runtime: o.runtime, data: data, pages: n}, nil
}

type pdftotextDocument struct {
	runtime container.Runtime
	data    []byte
	pages   int
}

func (d *pdftotextDocument) NumPage() int { return d.pages }

func (d *pdftotextDocument) PageText(n int) (string, error) {
	page := strconv.Itoa(n)
	args := []string{"pdftotext", "-q", "-enc", "UTF-8", "-f", page, "-l", page, "-", "-"}

	var out bytes.Buffer
	if err := d.runtime.Run(imagePoppler, args, bytes.NewReader(d.data), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (d *pdftotextDocument) Close() error { return nil }
