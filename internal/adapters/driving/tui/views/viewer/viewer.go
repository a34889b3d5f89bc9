// Package viewer provides the record viewer, the central view of the TUI.
// It shows the annotation groups of a record next to its note text and
// highlights the spans of every toggled group.
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// focusArea identifies which panel receives navigation keys.
type focusArea int

const (
	focusGroups focusArea = iota
	focusNotes
)

// View is the record viewer.
type View struct {
	styles      *styles.Styles
	keys        *keymap.KeyMap
	indexer     driving.AnnotationIndexer
	highlighter driving.SpanHighlighter

	record       *domain.Record
	groups       []domain.AnnotationGroup
	active       map[string]bool
	selected     int
	focus        focusArea
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a new viewer.
func NewView(s *styles.Styles, indexer driving.AnnotationIndexer, highlighter driving.SpanHighlighter) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		indexer:     indexer,
		highlighter: highlighter,
		active:      map[string]bool{},
		width:       80,
		height:      24,
	}
}

// SetRecord loads a record into the viewer and rebuilds its groups.
// All groups start untoggled, so the notes render plain.
func (v *View) SetRecord(rec *domain.Record) {
	v.record = rec
	v.active = map[string]bool{}
	v.selected = 0
	v.scrollOffset = 0
	v.focus = focusGroups

	if rec == nil || v.indexer == nil {
		v.groups = nil
		return
	}
	v.groups, _ = v.indexer.Build(*rec)
}

// Init initialises the viewer.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keys.NextPanel):
		if v.focus == focusGroups {
			v.focus = focusNotes
		} else {
			v.focus = focusGroups
		}

	case keymap.Matches(k, v.keys.Up):
		if v.focus == focusGroups {
			if v.selected > 0 {
				v.selected--
			}
		} else if v.scrollOffset > 0 {
			v.scrollOffset--
		}

	case keymap.Matches(k, v.keys.Down):
		if v.focus == focusGroups {
			if v.selected < len(v.groups)-1 {
				v.selected++
			}
		} else {
			v.scrollOffset++
		}

	case keymap.Matches(k, v.keys.Toggle), keymap.Matches(k, v.keys.Select):
		if v.focus == focusGroups && v.selected < len(v.groups) {
			code := v.groups[v.selected].Code
			v.active[code] = !v.active[code]
			if !v.active[code] {
				delete(v.active, code)
			}
		}

	case keymap.Matches(k, v.keys.ToggleAll):
		v.toggleAll()

	case keymap.Matches(k, v.keys.Stats):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewStats}
		}

	case keymap.Matches(k, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewRecords}
		}
	}

	return v, nil
}

// toggleAll activates every group, or clears the selection when every
// group is already active.
func (v *View) toggleAll() {
	if len(v.active) == len(v.groups) {
		v.active = map[string]bool{}
		return
	}
	for _, g := range v.groups {
		v.active[g.Code] = true
	}
}

// View renders the viewer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.record == nil {
		return v.styles.Muted.Render("No record loaded.")
	}

	var b strings.Builder

	title := fmt.Sprintf("Record %s  (%d notes, %d annotations)",
		v.record.ID, len(v.record.Notes), v.record.AnnotationCount())
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	groupsWidth := v.width / 3
	if groupsWidth < 26 {
		groupsWidth = 26
	}
	notesWidth := v.width - groupsWidth - 4
	if notesWidth < 20 {
		notesWidth = 20
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.renderGroupsPanel(groupsWidth),
		"  ",
		v.renderNotesPanel(notesWidth),
	)
	b.WriteString(panels)

	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d of %d codes highlighted", len(v.active), len(v.groups))))
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderGroupsPanel renders the annotation group checklist.
func (v *View) renderGroupsPanel(width int) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Codes"))
	b.WriteString("\n")

	if len(v.groups) == 0 {
		b.WriteString(v.styles.Muted.Render("No annotations."))
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	for i, g := range v.groups {
		cursor := "  "
		if i == v.selected && v.focus == focusGroups {
			cursor = "> "
		}

		check := "[ ]"
		if v.active[g.Code] {
			check = "[x]"
		}

		label := fmt.Sprintf("%s (%d)", g.Code, g.Count())
		line := cursor + check + " " + label

		switch {
		case i == v.selected && v.focus == focusGroups:
			b.WriteString(v.styles.Selected.Render(line))
		case v.active[g.Code]:
			b.WriteString(v.styles.SpanStyle(g.CodeSystem).Render(line))
		default:
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if v.selected < len(v.groups) {
		g := v.groups[v.selected]
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(describeGroup(g)))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// describeGroup is the detail line under the group list. Long
// descriptions are truncated on a rune boundary.
func describeGroup(g domain.AnnotationGroup) string {
	desc := g.Description
	if r := []rune(desc); len(r) > 40 {
		desc = string(r[:40]) + "..."
	}
	return fmt.Sprintf("%s (%s): %s", g.Code, g.CodeSystem, desc)
}

// renderNotesPanel renders the note text with active spans highlighted.
func (v *View) renderNotesPanel(width int) string {
	var b strings.Builder

	for i := range v.record.Notes {
		note := &v.record.Notes[i]

		header := note.Category
		if note.Description != "" {
			header += " / " + note.Description
		}
		b.WriteString(v.styles.Subtitle.Render(header))
		b.WriteString("\n")
		b.WriteString(v.renderNote(note))
		b.WriteString("\n\n")
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(strings.TrimRight(b.String(), "\n"))

	lines := strings.Split(wrapped, "\n")
	visible := v.visibleLineCount()
	if v.scrollOffset > len(lines)-1 {
		v.scrollOffset = len(lines) - 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
	end := v.scrollOffset + visible
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[v.scrollOffset:end], "\n")
}

// renderNote highlights a single note's active spans.
func (v *View) renderNote(note *domain.Note) string {
	if v.highlighter == nil {
		return note.Text
	}

	segments := v.highlighter.Render(note.Text, note.Annotations, v.active)

	var b strings.Builder
	for _, seg := range segments {
		if seg.Highlighted {
			b.WriteString(v.styles.SpanStyle(seg.CodeSystem).Render(seg.Content))
		} else {
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}

// visibleLineCount returns how many note lines fit on screen.
func (v *View) visibleLineCount() int {
	// Reserve lines for title, status, and help
	reserved := 7
	available := v.height - reserved
	if available < 3 {
		available = 3
	}
	return available
}

// renderHelp renders the help footer from the viewer keybindings.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(keymap.HelpLine(v.keys.ViewerHelp()...))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Record returns the currently loaded record.
func (v *View) Record() *domain.Record {
	return v.record
}

// Groups returns the annotation groups of the current record.
func (v *View) Groups() []domain.AnnotationGroup {
	return v.groups
}

// ActiveCodes returns the set of toggled codes.
func (v *View) ActiveCodes() map[string]bool {
	return v.active
}
