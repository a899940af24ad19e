// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/setly/pdftext/internal/pagestore"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over pages recorded in the page store",
	Long: `Search queries the SQLite page store written by "pdftext extract --db".
The query uses SQLite full-text syntax (e.g. "pricing", "road*",
"market NEAR europe").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("no page store configured: pass --db or set db in the config file")
	}

	store, err := pagestore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for _, h := range hits {
		fmt.Printf("%-20s  p.%-4d  %s\n", h.Slug, h.Page, strings.ReplaceAll(h.Snippet, "\n", " "))
	}
	fmt.Printf("\n%d results\n", len(hits))
	return nil
}
