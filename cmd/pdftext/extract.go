// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/setly/pdftext/internal/container"
	"github.com/setly/pdftext/internal/convert"
	"github.com/setly/pdftext/internal/inventory"
	"github.com/setly/pdftext/internal/pagestore"
	"github.com/setly/pdftext/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract every company PDF to a text file",
	Long: `Extract checks that every PDF in the inventory exists, then writes
one <slug>.txt per PDF. If any PDF is missing, nothing is written and all
missing paths are reported. A page that cannot be read is replaced by an
[EXTRACTION_ERROR ...] placeholder; a PDF that cannot be opened stops the run.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("report", "", "write a YAML run report to this path")
	_ = viper.BindPFlag("report", extractCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opener, err := newOpener(cfg.Backend)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sources := inventory.List(cfg.RootDir)
	result, err := convert.ConvertBatch(ctx, opener, sources, cfg.OutputDir, os.Stdout, log)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := convert.WriteReport(cfg.ReportPath, result); err != nil {
			return err
		}
		log.WithField("path", cfg.ReportPath).Info("report written")
	}

	if cfg.DBPath != "" {
		store, err := pagestore.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Record(ctx, result.Backend, result.Documents); err != nil {
			return err
		}
		log.WithField("db", cfg.DBPath).Info("page store updated")
	}

	if n := result.FailedPages(); n > 0 {
		log.Warnf("%d page(s) replaced by extraction error placeholders", n)
	}
	return nil
}

// newOpener returns the extraction backend named by backend.
func newOpener(backend types.ExtractionBackend) (convert.Opener, error) {
	switch backend {
	case types.BackendLedongthuc, "":
		return convert.NewLedongthucOpener(), nil
	case types.BackendPdftotext:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return convert.NewPdftotextOpener(rt)
	default:
		return nil, fmt.Errorf("unsupported backend %q: use %s or %s",
			backend, types.BackendLedongthuc, types.BackendPdftotext)
	}
}
