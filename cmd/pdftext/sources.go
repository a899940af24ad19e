// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/setly/pdftext/internal/inventory"
	"github.com/setly/pdftext/pkg/types"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the PDFs in the inventory and whether each exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printSources(os.Stdout, inventory.List(cfg.RootDir))
		fmt.Fprintf(os.Stdout, "\nOutput directory: %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func printSources(w io.Writer, sources []types.Source) {
	for _, s := range sources {
		status := "ok"
		if _, err := os.Stat(s.Path); err != nil {
			status = "missing"
		}
		fmt.Fprintf(w, "%-20s  %-7s  %s\n", s.Slug, status, s.Path)
	}
}
