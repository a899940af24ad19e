// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setly/pdftext/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index", "pages.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func deck(pages ...string) types.DocumentResult {
	d := types.DocumentResult{
		Source: types.Source{Slug: "pitch-deck", Path: "data/Setly_Pitch_Deck.pdf"},
		Output: "out/pitch-deck.txt",
	}
	for i, p := range pages {
		d.Pages = append(d.Pages, types.PageResult{Number: i + 1, Text: p})
	}
	return d
}

func TestRecordAndSearch(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	doc := deck("Market opportunity in Europe", "Team and founders", "European expansion roadmap")
	doc.Pages[1].Err = errors.New("bad font")
	manifesto := types.DocumentResult{
		Source: types.Source{Slug: "manifesto", Path: "data/SETLY_Manifesto_Vision2025.pdf"},
		Output: "out/manifesto.txt",
		Pages:  []types.PageResult{{Number: 1, Text: "We believe in roadmap clarity"}},
	}
	require.NoError(t, s.Record(ctx, "ledongthuc", []types.DocumentResult{doc, manifesto}))

	hits, err := s.Search(ctx, "roadmap", 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "manifesto", hits[0].Slug)
	assert.Equal(t, "pitch-deck", hits[1].Slug)
	assert.Equal(t, 3, hits[1].Page)
	assert.Contains(t, hits[1].Snippet, "[roadmap]")

	docs, err := s.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "pitch-deck", docs[1].Slug)
	assert.Equal(t, 3, docs[1].Pages)
	assert.Equal(t, 1, docs[1].FailedPages)
	assert.Equal(t, "ledongthuc", docs[1].Backend)
}

func TestRecord_ReplacesPreviousPages(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "ledongthuc", []types.DocumentResult{deck("old pricing", "old team")}))
	require.NoError(t, s.Record(ctx, "ledongthuc", []types.DocumentResult{deck("new pricing")}))

	hits, err := s.Search(ctx, "pricing", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Snippet, "new")

	hits, err = s.Search(ctx, "team", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_Limit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, "ledongthuc", []types.DocumentResult{deck("setly", "setly", "setly")}))

	hits, err := s.Search(ctx, "setly", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
	assert.Equal(t, 1, hits[0].Page)
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := openStore(t)
	_, err := s.Search(context.Background(), "  ", 0)
	assert.Error(t, err)
}
