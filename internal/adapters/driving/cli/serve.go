package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/web"
)

var (
	serveAddr string
	serveRate float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	Long: `Serve a local web dashboard over the imported records.

The dashboard lists the records in the store and renders each note with
its annotated spans highlighted. Codes are selected with checkboxes the
same way the TUI viewer toggles groups.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8750", "Address to listen on")
	serveCmd.Flags().Float64Var(&serveRate, "rate-limit", 20, "Max requests per second per client")
	rootCmd.AddCommand(serveCmd)
}

// applyServeConfig fills flags the user left unset from the config
// store, so `serve.addr` and `serve.rate_limit` in config.toml act as
// defaults that explicit flags override.
func applyServeConfig(cmd *cobra.Command) {
	if configStore == nil {
		return
	}
	if !cmd.Flags().Changed("addr") {
		if v := configStore.GetString("serve.addr"); v != "" {
			serveAddr = v
		}
	}
	if !cmd.Flags().Changed("rate-limit") {
		if v := configStore.GetInt("serve.rate_limit"); v > 0 {
			serveRate = float64(v)
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	if recordService == nil || annotationIndexer == nil || spanHighlighter == nil {
		return errors.New("record service not configured")
	}

	applyServeConfig(cmd)

	srv, err := web.NewServer(web.Config{
		Addr:      serveAddr,
		RateLimit: serveRate,
	}, &web.Ports{
		Record:      recordService,
		Indexer:     annotationIndexer,
		Highlighter: spanHighlighter,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	cmd.Printf("Serving dashboard on http://%s\n", serveAddr)

	if err := srv.ListenAndServe(cmd.Context()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
