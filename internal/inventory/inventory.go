// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inventory lists the company PDFs to extract and checks that they
// are all present before any work starts.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/setly/pdftext/pkg/types"
)

const (
	companyDataDir   = "SETLY company core data"
	formationDataDir = "Setly formation data"
	outputDir        = "content/company-data-extracted"
)

// entries is the fixed inventory in processing order.
var entries = []struct {
	slug string
	file string
}{
	{"one-page-overview", "Setly_One_Page_Overview.pdf"},
	{"business-plan-2025", "SETLY_Business_Plan_2025.pdf"},
	{"pitch-deck", "Setly_Pitch_Deck.pdf"},
	{"brand-story", "Setly_Brand_Story_Kiran_Revally.pdf"},
	{"brand-blueprint", "SETLY_Brand_Blueprint.pdf"},
	{"manifesto", "SETLY_Manifesto_Vision2025.pdf"},
	{"vision-2025-2030", "SETLY_Vision_2025_2030.pdf"},
}

// DataDir returns the directory under root that holds the source PDFs.
func DataDir(root string) string {
	return filepath.Join(root, companyDataDir, formationDataDir)
}

// OutputDir returns the default output directory under root.
func OutputDir(root string) string {
	return filepath.Join(root, filepath.FromSlash(outputDir))
}

// List returns the source records derived from root, in inventory order.
func List(root string) []types.Source {
	dir := DataDir(root)
	sources := make([]types.Source, len(entries))
	for i, e := range entries {
		sources[i] = types.Source{
			Slug: e.slug,
			Path: filepath.Join(dir, e.file),
		}
	}
	return sources
}

// MissingInputError reports every source path that does not exist.
type MissingInputError struct {
	Paths []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing PDFs (%d): %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// Validate checks that every source path exists. It returns a
// *MissingInputError naming all missing paths, not only the first.
func Validate(sources []types.Source) error {
	var missing []string
	for _, s := range sources {
		if _, err := os.Stat(s.Path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, s.Path)
				continue
			}
			return fmt.Errorf("checking %s: %w", s.Path, err)
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Paths: missing}
	}
	return nil
}
