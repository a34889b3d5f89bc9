package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/views/menu"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/views/records"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/views/stats"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/tui/views/viewer"
	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// dataDir is the directory scanned and watched for record files.
	dataDir string

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the application keybindings.
	keys *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// recordsView lists the record files in the data directory.
	recordsView *records.View

	// viewerView shows a record's notes with highlighted spans.
	viewerView *viewer.View

	// statsView shows annotation statistics for the current record.
	statsView *stats.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// currentPath is the path of the record open in the viewer.
	currentPath string

	// watchCh delivers changed file paths from the directory watcher.
	watchCh <-chan string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, dataDir string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		dataDir:     dataDir,
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		menuView:    menu.NewView(s),
		recordsView: records.NewView(s, ports.Record, dataDir),
		viewerView:  viewer.NewView(s, ports.Indexer, ports.Highlighter),
		statsView:   stats.NewView(s, ports.Indexer),
		currentView: messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("chartlens - Annotated Notes"),
		a.startWatch(),
	)
}

// startWatch begins watching the data directory for record changes.
func (a *App) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := a.ports.Record.Watch(a.ctx, a.dataDir)
		if err != nil {
			return messages.WatchStopped{Err: err}
		}
		a.watchCh = ch
		return a.waitForChange()()
	}
}

// waitForChange blocks on the watcher channel for the next change.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-a.watchCh
		if !ok {
			return messages.WatchStopped{}
		}
		return messages.FileChanged{Path: path}
	}
}

// loadRecord parses a record file off the Update loop.
func (a *App) loadRecord(path string) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.ports.Record.Load(path)
		return messages.RecordLoaded{Path: path, Record: rec, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.recordsView.SetDimensions(msg.Width, msg.Height)
		a.viewerView.SetDimensions(msg.Width, msg.Height)
		a.statsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit. The menu handles its Quit item itself, but q and
		// ctrl+c exit from any view.
		if keymap.Matches(msg.String(), a.keys.Quit) {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
			return a, cmd

		case messages.ViewViewer:
			a.viewerView, cmd = a.viewerView.Update(msg)
			return a, cmd

		case messages.ViewStats:
			a.statsView, cmd = a.statsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Back from help goes to menu
			if keymap.Matches(msg.String(), a.keys.Back) {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRecords {
			return a, a.recordsView.Init()
		}
		return a, nil

	case messages.FilesLoaded:
		a.recordsView, cmd = a.recordsView.Update(msg)
		return a, cmd

	case messages.FileSelected:
		return a, a.loadRecord(msg.File.Path)

	case messages.RecordLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.recordsView, cmd = a.recordsView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.currentPath = msg.Path
		a.viewerView.SetRecord(msg.Record)
		a.statsView.SetRecord(msg.Record)
		a.currentView = messages.ViewViewer
		return a, nil

	case messages.FileChanged:
		logger.Debug("record file changed: %s", msg.Path)
		// Rescan the list and reload the open record if it changed.
		a.recordsView, cmd = a.recordsView.Update(msg)
		cmds := []tea.Cmd{cmd, a.waitForChange()}
		if msg.Path == a.currentPath {
			cmds = append(cmds, a.loadRecord(msg.Path))
		}
		return a, tea.Batch(cmds...)

	case messages.WatchStopped:
		if msg.Err != nil {
			logger.Warn("directory watch unavailable: %v", msg.Err)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewRecords {
			a.recordsView, cmd = a.recordsView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewRecords:
		return a.recordsView.View()
	case messages.ViewViewer:
		return a.viewerView.View()
	case messages.ViewStats:
		return a.statsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view from the full keybinding list.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, row := range a.keys.FullHelp() {
		for _, binding := range row {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render(keymap.HelpLine(a.keys.Back)))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.recordsView.SetDimensions(width, height)
	a.viewerView.SetDimensions(width, height)
	a.statsView.SetDimensions(width, height)
}
