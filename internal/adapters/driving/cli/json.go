package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Pretty-print a record file",
	Long: `Pretty-print the raw JSON of an annotated record file.

When standard output is a terminal, the file name and size are printed
to standard error first, so piped output stays valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSON,
}

// jsonIndent is the number of spaces per indentation level.
var jsonIndent int

func init() {
	jsonCmd.Flags().IntVar(&jsonIndent, "indent", 2, "Spaces per indentation level")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("record file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", jsonIndent)); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.PrintErrf("%s (%s)\n\n", path, humanize.Bytes(uint64(info.Size())))
	}

	cmd.Println(buf.String())
	return nil
}
