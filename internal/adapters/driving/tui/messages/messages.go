// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewRecords lists the record files in the data directory.
	ViewRecords
	// ViewViewer shows a record's notes with annotation highlighting.
	ViewViewer
	// ViewStats shows annotation statistics for a record.
	ViewStats
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewRecords:
		return "records"
	case ViewViewer:
		return "viewer"
	case ViewStats:
		return "stats"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// FilesLoaded carries the record files found in the data directory.
type FilesLoaded struct {
	Files []domain.RecordFile
	Err   error
}

// FileSelected signals a record file was selected for viewing.
type FileSelected struct {
	File domain.RecordFile
}

// RecordLoaded carries a parsed record back to the model.
type RecordLoaded struct {
	Path   string
	Record *domain.Record
	Err    error
}

// FileChanged signals a record file changed on disk.
type FileChanged struct {
	Path string
}

// WatchStopped signals the directory watcher shut down.
type WatchStopped struct {
	Err error
}
