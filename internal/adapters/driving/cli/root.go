// Package cli implements the chartlens command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging across all commands.
var verbose bool

// Services the commands depend on. Injected from main via SetServices
// so the CLI package stays free of construction logic.
var (
	recordService     driving.RecordService
	annotationIndexer driving.AnnotationIndexer
	spanHighlighter   driving.SpanHighlighter
	configStore       driven.ConfigStore
)

// Services bundles the service implementations the CLI commands use.
type Services struct {
	Record      driving.RecordService
	Indexer     driving.AnnotationIndexer
	Highlighter driving.SpanHighlighter
	Config      driven.ConfigStore
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	recordService = s.Record
	annotationIndexer = s.Indexer
	spanHighlighter = s.Highlighter
	configStore = s.Config
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "chartlens",
	Short: "Browse ICD-10 annotated clinical notes",
	Long: `ChartLens is a viewer for hospital admission records whose clinical
notes carry ICD-10 annotations. It groups annotations by code, highlights
the annotated spans inside the note text, and lets you inspect records
from the terminal, an interactive TUI, or a local web dashboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
