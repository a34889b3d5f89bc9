package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui"
)

// tuiDataDir is the directory scanned for record files.
var tuiDataDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for ChartLens.

The TUI lists the record files in the data directory and opens a viewer
with the note text on one side and the annotation groups on the other.
Toggling a group highlights its spans inside the notes.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Space    - Toggle highlight
  Tab      - Switch panel
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiDataDir, "dir", "d", ".", "Directory containing record files")
	rootCmd.AddCommand(tuiCmd)
}

// applyTUIConfig fills the data directory from `tui.data_dir` in the
// config store when the --dir flag was left unset.
func applyTUIConfig(cmd *cobra.Command) {
	if configStore == nil {
		return
	}
	if !cmd.Flags().Changed("dir") {
		if v := configStore.GetString("tui.data_dir"); v != "" {
			tuiDataDir = v
		}
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug leaves a stack trace instead of
	// a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	applyTUIConfig(cmd)

	ports := &tui.Ports{
		Record:      recordService,
		Indexer:     annotationIndexer,
		Highlighter: spanHighlighter,
	}

	app, err := tui.NewApp(ports, tuiDataDir)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
