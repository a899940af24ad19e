// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdftext CLI, which extracts the
// company PDFs into page-marked plain-text files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/setly/pdftext/internal/inventory"
	"github.com/setly/pdftext/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the stderr logger configured in PersistentPreRunE.
var log = logrus.New()

// rootCmd runs the extraction when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pdftext",
	Short: "Extract the company PDFs into page-marked text files",
	Long: `pdftext reads the fixed set of company PDFs under
"SETLY company core data/Setly formation data", extracts the text of every
page, and writes one <slug>.txt per PDF to content/company-data-extracted.
Pages are separated by "--- PAGE n ---" markers.

Running pdftext without a subcommand is the same as "pdftext extract".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return configureLogger(log, cfg.Log)
	},
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./pdftext.yaml or ~/.config/pdftext/config.yaml)")
	flags.String("root", ".", "repository root containing the company data directory")
	flags.String("output", "", "output directory (default: <root>/content/company-data-extracted)")
	flags.String("backend", string(types.BackendLedongthuc), "extraction backend: ledongthuc or pdftotext")
	flags.String("db", "", "SQLite page store to update after extraction and to search")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	for key, flag := range map[string]string{
		"root":       "root",
		"output":     "output",
		"backend":    "backend",
		"db":         "db",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftext"))
		}
	}

	viper.SetEnvPrefix("PDFTEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged flag, env, and file settings and fills in
// the defaults derived from the root directory.
func loadConfig() (types.ExtractionConfig, error) {
	var cfg types.ExtractionConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return cfg, fmt.Errorf("resolving root %s: %w", cfg.RootDir, err)
	}
	cfg.RootDir = root

	if cfg.OutputDir == "" {
		cfg.OutputDir = inventory.OutputDir(root)
	}
	if cfg.Backend == "" {
		cfg.Backend = types.BackendLedongthuc
	}
	return cfg, nil
}

// configureLogger applies level and format to l, which writes to stderr.
func configureLogger(l *logrus.Logger, c types.LogConfig) error {
	l.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if c.Level != "" {
		parsed, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		level = parsed
	}
	l.SetLevel(level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q: use text or json", c.Format)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
