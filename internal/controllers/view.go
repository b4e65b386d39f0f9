package controllers

import (
	"charfreq/internal/models"
)

// View is the UI surface the controller drives. Dialog methods are
// asynchronous: the callback runs once the user has answered, and the dialog
// is modal until then.
type View interface {
	// Selection returns the row currently selected in the entry list
	Selection() models.Selection
	ClearSelection()

	SetEntries(entries []string)
	SetSlices(slices []models.Slice)
	UpdateStatus(status string)

	PromptText(title, message string, callback func(text string, ok bool))
	ShowConfirm(title, message string, callback func(bool))
	// File pickers report ok=false on cancel, or a non-nil err when the
	// chosen file could not be opened. path may be empty alongside err.
	ShowOpenDialog(callback func(path string, ok bool, err error))
	ShowSaveDialog(callback func(path string, ok bool, err error))
	ShowError(title string, err error)
}
