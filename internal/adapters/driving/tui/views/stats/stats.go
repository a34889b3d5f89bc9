// Package stats provides the annotation statistics view for the TUI.
package stats

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// Summary holds the aggregate annotation counts for a record.
type Summary struct {
	Total       int
	Diagnoses   int
	Procedures  int
	Other       int
	UniqueCodes int
}

// View is the statistics view.
type View struct {
	styles  *styles.Styles
	indexer driving.AnnotationIndexer

	record  *domain.Record
	groups  []domain.AnnotationGroup
	summary Summary
	width   int
	height  int
	ready   bool
}

// NewView creates a new stats view.
func NewView(s *styles.Styles, indexer driving.AnnotationIndexer) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		indexer: indexer,
		width:   80,
		height:  24,
	}
}

// SetRecord computes the statistics for a record.
func (v *View) SetRecord(rec *domain.Record) {
	v.record = rec
	v.groups = nil
	v.summary = Summary{}

	if rec == nil || v.indexer == nil {
		return
	}

	v.groups, _ = v.indexer.Build(*rec)
	v.summary.UniqueCodes = len(v.groups)

	for _, g := range v.groups {
		n := g.Count()
		v.summary.Total += n
		switch g.CodeSystem {
		case domain.CodeSystemDiagnosis:
			v.summary.Diagnoses += n
		case domain.CodeSystemProcedure:
			v.summary.Procedures += n
		default:
			v.summary.Other += n
		}
	}
}

// Init initialises the stats view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "s":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewViewer}
			}
		}
	}

	return v, nil
}

// View renders the statistics.
func (v *View) View() string {
	if v.record == nil {
		return v.styles.Muted.Render("No record loaded.")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Statistics - Record %s", v.record.ID)))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Annotations"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total:        %d\n", v.summary.Total))
	b.WriteString(fmt.Sprintf("  Diagnoses:    %d\n", v.summary.Diagnoses))
	b.WriteString(fmt.Sprintf("  Procedures:   %d\n", v.summary.Procedures))
	if v.summary.Other > 0 {
		b.WriteString(fmt.Sprintf("  Other:        %d\n", v.summary.Other))
	}
	b.WriteString(fmt.Sprintf("  Unique codes: %d\n", v.summary.UniqueCodes))

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Notes"))
	b.WriteString("\n")
	for i := range v.record.Notes {
		note := &v.record.Notes[i]
		b.WriteString(fmt.Sprintf("  [%d] %-24s %d annotations\n",
			i+1, note.Category, len(note.Annotations)))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back to viewer"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Stats returns the computed summary.
func (v *View) Stats() Summary {
	return v.summary
}
