// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		doc  *fakeDocument
		want string
	}{
		{
			name: "single page",
			doc:  &fakeDocument{pages: []string{"Hello"}},
			want: "--- PAGE 1 ---\n\nHello\n",
		},
		{
			name: "page text is trimmed",
			doc:  &fakeDocument{pages: []string{"  \n Hello \n\n"}},
			want: "--- PAGE 1 ---\n\nHello\n",
		},
		{
			name: "pages joined with blank lines",
			doc:  &fakeDocument{pages: []string{"one", "two"}},
			want: "--- PAGE 1 ---\n\none\n\n\n\n--- PAGE 2 ---\n\ntwo\n",
		},
		{
			name: "empty page keeps its marker",
			doc:  &fakeDocument{pages: []string{"", "two"}},
			want: "--- PAGE 1 ---\n\n\n\n\n\n--- PAGE 2 ---\n\ntwo\n",
		},
		{
			name: "no pages",
			doc:  &fakeDocument{},
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pages := Text(tt.doc)
			assert.Equal(t, tt.want, got)
			assert.Len(t, pages, len(tt.doc.pages))
		})
	}
}

func TestText_PageFailureIsolation(t *testing.T) {
	doc := &fakeDocument{
		pages:  []string{"first", "", "", "fourth"},
		errs:   map[int]error{2: errors.New("bad font")},
		panics: map[int]bool{3: true},
	}

	got, pages := Text(doc)

	assert.Contains(t, got, "--- PAGE 2 ---\n\n[EXTRACTION_ERROR page=2: bad font]")
	assert.Contains(t, got, "[EXTRACTION_ERROR page=3: malformed content stream on page 3]")
	assert.Contains(t, got, "--- PAGE 4 ---\n\nfourth\n")
	assert.True(t, strings.HasPrefix(got, "--- PAGE 1 ---\n\nfirst\n"))

	require.Len(t, pages, 4)
	assert.False(t, pages[0].Failed())
	assert.True(t, pages[1].Failed())
	assert.True(t, pages[2].Failed())
	assert.False(t, pages[3].Failed())
}

func TestText_MarkersAscending(t *testing.T) {
	doc := &fakeDocument{pages: make([]string, 12)}
	for i := range doc.pages {
		doc.pages[i] = fmt.Sprintf("body %d", i+1)
	}

	got, _ := Text(doc)

	matches := regexp.MustCompile(`--- PAGE (\d+) ---`).FindAllStringSubmatch(got, -1)
	require.Len(t, matches, 12)
	for i, m := range matches {
		assert.Equal(t, fmt.Sprint(i+1), m[1])
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "[EXTRACTION_ERROR page=7: boom]\n", Placeholder(7, errors.New("boom")))
}

func TestFile(t *testing.T) {
	doc := &fakeDocument{pages: []string{"Hello"}}
	o := &fakeOpener{docs: map[string]*fakeDocument{"a.pdf": doc}}

	text, pages, err := File(o, "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "--- PAGE 1 ---\n\nHello\n", text)
	assert.Len(t, pages, 1)
	assert.True(t, doc.closed, "document should be closed")

	_, _, err = File(o, "missing.pdf")
	assert.Error(t, err)
}

func TestLedongthucOpener(t *testing.T) {
	dir := t.TempDir()

	t.Run("single page", func(t *testing.T) {
		path := writePDF(t, dir, "hello.pdf", "Hello")
		text, pages, err := File(NewLedongthucOpener(), path)
		require.NoError(t, err)
		assert.Equal(t, "--- PAGE 1 ---\n\nHello\n", text)
		assert.Len(t, pages, 1)
	})

	t.Run("multi page", func(t *testing.T) {
		path := writePDF(t, dir, "three.pdf", "Alpha", "Beta", "Gamma")
		text, pages, err := File(NewLedongthucOpener(), path)
		require.NoError(t, err)
		require.Len(t, pages, 3)

		for i, word := range []string{"Alpha", "Beta", "Gamma"} {
			assert.Contains(t, text, fmt.Sprintf("--- PAGE %d ---\n\n%s\n", i+1, word))
		}
	})

	t.Run("not a PDF", func(t *testing.T) {
		path := dir + "/fake.pdf"
		require.NoError(t, writeString(path, "this is not a PDF"))
		_, err := NewLedongthucOpener().Open(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLedongthucOpener().Open(dir + "/nope.pdf")
		assert.Error(t, err)
	})
}
