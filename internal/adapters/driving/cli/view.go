package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "View an annotated record",
	Long: `View a record file with its annotation groups and notes.

Spans for the selected codes are highlighted inside the note text. With
no selection the notes are printed plain. Use --codes to pick specific
codes or --all to highlight every annotated span.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

var (
	viewCodes []string
	viewAll   bool
)

func init() {
	viewCmd.Flags().StringSliceVar(&viewCodes, "codes", nil, "ICD-10 codes to highlight (comma-separated)")
	viewCmd.Flags().BoolVar(&viewAll, "all", false, "Highlight every annotated span")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if recordService == nil || annotationIndexer == nil || spanHighlighter == nil {
		return errors.New("record service not configured")
	}

	rec, err := recordService.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading record: %w", err)
	}

	groups, _ := annotationIndexer.Build(*rec)

	active := make(map[string]bool, len(viewCodes))
	if viewAll {
		for _, g := range groups {
			active[g.Code] = true
		}
	} else {
		for _, code := range viewCodes {
			active[code] = true
		}
	}

	cmd.Printf("Record %s — %d notes, %d annotations\n\n", rec.ID, len(rec.Notes), rec.AnnotationCount())

	if len(groups) > 0 {
		cmd.Println("Codes:")
		for _, g := range groups {
			marker := " "
			if active[g.Code] {
				marker = "*"
			}
			cmd.Printf("  %s %s\n", marker, GroupLabel(g))
		}
		cmd.Println()
	}

	for i, note := range rec.Notes {
		header := fmt.Sprintf("[%d] %s", i+1, note.Category)
		if note.Description != "" {
			header += " — " + note.Description
		}
		cmd.Println(header)
		cmd.Println(strings.Repeat("-", len(header)))

		segments := spanHighlighter.Render(note.Text, note.Annotations, active)
		cmd.Println(renderSegments(segments))
		cmd.Println()
	}

	return nil
}

// GroupLabel formats an annotation group as a single summary line,
// truncating long descriptions. Truncation counts runes so a multi-byte
// character is never split.
func GroupLabel(g domain.AnnotationGroup) string {
	desc := g.Description
	if r := []rune(desc); len(r) > 40 {
		desc = string(r[:40]) + "..."
	}
	return fmt.Sprintf("%s (%s): %s (%d)", g.Code, g.CodeSystem, desc, g.Count())
}

var (
	diagnosisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	procedureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	otherCodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// renderSegments joins segments, styling highlighted spans by code system.
// Styles degrade to plain text when output is not a terminal.
func renderSegments(segments []domain.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.Highlighted {
			b.WriteString(seg.Content)
			continue
		}
		switch seg.CodeSystem {
		case domain.CodeSystemDiagnosis:
			b.WriteString(diagnosisStyle.Render(seg.Content))
		case domain.CodeSystemProcedure:
			b.WriteString(procedureStyle.Render(seg.Content))
		default:
			b.WriteString(otherCodeStyle.Render(seg.Content))
		}
	}
	return b.String()
}
