// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns PDF files into plain text with page markers.
// Text extraction is delegated to a pluggable backend (Opener); this
// package owns page iteration, failure isolation, and the output format.
package convert

import (
	"fmt"
	"strings"

	"github.com/setly/pdftext/pkg/types"
)

// pageBlock is the marker and body written for every page.
const pageBlock = "\n\n--- PAGE %d ---\n\n%s\n"

// Document is an opened PDF whose pages can be read one at a time.
type Document interface {
	// NumPage returns the number of pages.
	NumPage() int

	// PageText returns the plain text of page n (1-indexed).
	PageText(n int) (string, error)

	Close() error
}

// Opener opens PDFs for a particular extraction backend.
type Opener interface {
	// Name identifies the backend in logs and reports.
	Name() string

	// Open parses the PDF at path. An error here is fatal for the document.
	Open(path string) (Document, error)
}

// Placeholder is the text written in place of a page that failed extraction.
func Placeholder(page int, err error) string {
	return fmt.Sprintf("[EXTRACTION_ERROR page=%d: %v]\n", page, err)
}

// Text extracts every page of doc in order and joins them with page
// markers. A page that fails (or panics inside the parser) is replaced by
// a Placeholder; the remaining pages are still extracted.
func Text(doc Document) (string, []types.PageResult) {
	n := doc.NumPage()
	pages := make([]types.PageResult, 0, n)
	blocks := make([]string, 0, n)

	for i := 1; i <= n; i++ {
		text, err := pageText(doc, i)
		if err != nil {
			text = Placeholder(i, err)
		}
		pages = append(pages, types.PageResult{Number: i, Text: text, Err: err})
		blocks = append(blocks, fmt.Sprintf(pageBlock, i, strings.TrimSpace(text)))
	}

	return strings.TrimSpace(strings.Join(blocks, "\n")) + "\n", pages
}

func pageText(doc Document, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%v", r)
		}
	}()
	return doc.PageText(n)
}

// File opens the PDF at path with o and returns its page-marked text.
func File(o Opener, path string) (string, []types.PageResult, error) {
	doc, err := o.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer doc.Close()

	text, pages := Text(doc)
	return text, pages, nil
}
