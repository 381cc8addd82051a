// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
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
	// ViewOpen reads and displays a file.
	ViewOpen
	// ViewCompose edits a JSON document before saving it.
	ViewCompose
	// ViewSaveDialog chooses where the composed document goes.
	ViewSaveDialog
	// ViewHistory lists recent activity.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewOpen:
		return "open"
	case ViewCompose:
		return "compose"
	case ViewSaveDialog:
		return "save_dialog"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SaveRequested asks the app to open the save dialog for a payload.
type SaveRequested struct {
	Payload domain.JSONPayload
}

// LocationChosen is sent when the save dialog closes.
// Location is empty when the dialog was cancelled.
type LocationChosen struct {
	Location domain.FileLocation
}

// Cancelled reports whether the dialog was dismissed.
func (m LocationChosen) Cancelled() bool {
	return m.Location.IsEmpty()
}

// SaveCompleted carries the outcome of a save.
type SaveCompleted struct {
	Result domain.SaveResult
}

// FileLoaded carries the outcome of a load.
type FileLoaded struct {
	Location domain.FileLocation
	Result   domain.LoadResult
}

// FileOpenRequested asks the app to show a file in the viewer.
type FileOpenRequested struct {
	Location domain.FileLocation
}

// HistoryLoaded carries recent activity records.
type HistoryLoaded struct {
	Activities []domain.Activity
	Err        error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
