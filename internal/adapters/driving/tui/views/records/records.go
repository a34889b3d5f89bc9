// Package records provides the record file list view for the TUI.
package records

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// View is the record file list view.
type View struct {
	styles        *styles.Styles
	keys          *keymap.KeyMap
	recordService driving.RecordService

	dataDir      string
	files        []domain.RecordFile
	selected     int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	scrollOffset int
}

// NewView creates a new records view scanning the given directory.
func NewView(s *styles.Styles, recordService driving.RecordService, dataDir string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:        s,
		keys:          keymap.DefaultKeyMap(),
		recordService: recordService,
		dataDir:       dataDir,
		files:         []domain.RecordFile{},
	}
}

// Init starts loading the record files.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadFiles()
}

// loadFiles returns a command that scans the data directory.
func (v *View) loadFiles() tea.Cmd {
	return func() tea.Msg {
		if v.recordService == nil {
			return messages.FilesLoaded{Err: fmt.Errorf("record service not available")}
		}

		files, err := v.recordService.ListFiles(v.dataDir)
		return messages.FilesLoaded{Files: files, Err: err}
	}
}

// Update handles messages for the records view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FilesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.files = msg.Files
			v.err = nil
			if v.selected >= len(v.files) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.FileChanged:
		// A record file changed on disk, rescan the directory.
		return v, v.loadFiles()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keys.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(k, v.keys.Down):
		if v.selected < len(v.files)-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(k, v.keys.Select):
		if v.selected < len(v.files) {
			file := v.files[v.selected]
			return v, func() tea.Msg {
				return messages.FileSelected{File: file}
			}
		}
	case keymap.Matches(k, v.keys.Reload):
		v.loading = true
		return v, v.loadFiles()
	case keymap.Matches(k, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the records view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Records - %s (%d)", v.dataDir, len(v.files))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Scanning for record files..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.files) == 0 {
		b.WriteString(v.styles.Muted.Render("No record files found in this directory."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.files) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderFile(i, &v.files[i]))
		b.WriteString("\n")
	}

	if len(v.files) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.files)),
			len(v.files))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderFile renders a single file line.
func (v *View) renderFile(index int, file *domain.RecordFile) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := file.Name
	maxNameLen := v.width - 16
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	size := humanize.Bytes(uint64(file.Size))

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, size))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxNameLen, name)) +
		v.styles.Muted.Render(size)
}

// renderHelp renders the help footer from the list keybindings.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(keymap.HelpLine(v.keys.Up, v.keys.Down, v.keys.Select, v.keys.Reload, v.keys.Back))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Files returns the current list of record files.
func (v *View) Files() []domain.RecordFile {
	return v.files
}

// SelectedFile returns the currently selected file.
func (v *View) SelectedFile() *domain.RecordFile {
	if v.selected < len(v.files) {
		return &v.files[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
