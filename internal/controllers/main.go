package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"charfreq/internal/logger"
	"charfreq/internal/models"
	"charfreq/internal/services"
)

const component = "MainController"

const unknownFileName = "selected file"

// MainController runs the user-facing flows and keeps the chart in step with
// the entry store
type MainController struct {
	store  *models.EntryStore
	files  *services.EntryFileService
	logger logger.Logger

	mainView View
	quit     func()

	table models.FrequencyTable
}

// NewMainController creates a controller and subscribes it to store changes
func NewMainController(
	store *models.EntryStore,
	files *services.EntryFileService,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		store:  store,
		files:  files,
		logger: log,
		table:  models.FrequencyTable{},
	}

	store.SetOnChange(controller.recompute)
	return controller
}

// SetMainView associates the main view with this controller and renders the
// current store contents into it
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.recompute(mc.store.Entries())
}

// SetQuitHandler sets the function run after the user confirms quitting
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// FrequencyTable returns the table computed after the last store change
func (mc *MainController) FrequencyTable() models.FrequencyTable {
	return mc.table
}

// AddEntry prompts for a new line and appends it when non-blank
func (mc *MainController) AddEntry() {
	mc.mainView.PromptText("New entry", "Text", func(text string, ok bool) {
		if !ok {
			mc.logger.Debug(component, "add entry cancelled", nil)
			return
		}
		mc.SubmitEntry(text)
	})
}

// SubmitEntry trims text and appends it unless nothing is left
func (mc *MainController) SubmitEntry(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		mc.logger.Debug(component, "blank entry ignored", nil)
		return false
	}

	mc.store.Append(trimmed)
	mc.logger.Info(component, "entry added", map[string]interface{}{
		"length": len(trimmed),
	})
	return true
}

// DeleteEntry removes the selected entry, if any, and clears the selection
func (mc *MainController) DeleteEntry() {
	selection := mc.mainView.Selection()
	if mc.store.RemoveSelected(selection) {
		mc.logger.Info(component, "entry deleted", map[string]interface{}{
			"index": int(selection),
		})
	} else {
		mc.logger.Debug(component, "delete without selection ignored", nil)
	}
	mc.mainView.ClearSelection()
}

// DeleteAllEntries empties the store and clears the selection
func (mc *MainController) DeleteAllEntries() {
	mc.store.Clear()
	mc.mainView.ClearSelection()
	mc.logger.Info(component, "all entries deleted", nil)
}

// Load asks for a source file and loads it
func (mc *MainController) Load() {
	mc.mainView.ShowOpenDialog(func(path string, ok bool, err error) {
		if err != nil {
			mc.loadFailed(path, err)
			return
		}
		if !ok {
			return
		}
		_ = mc.LoadFile(path)
	})
}

// LoadFile clears the store, then replaces it with the lines of path. A read
// failure leaves the store empty.
func (mc *MainController) LoadFile(path string) error {
	mc.store.Clear()
	mc.mainView.ClearSelection()

	lines, err := mc.files.LoadFile(path)
	if err != nil {
		mc.reportFileError("Load error", "Error loading file", path, err)
		return err
	}

	mc.store.ReplaceAll(lines)
	mc.mainView.UpdateStatus(fmt.Sprintf("Loaded %s", filepath.Base(path)))
	return nil
}

// loadFailed handles a file the picker itself could not open. The store is
// cleared as for any other failed load.
func (mc *MainController) loadFailed(path string, err error) {
	mc.store.Clear()
	mc.mainView.ClearSelection()
	mc.reportFileError("Load error", "Error loading file", path,
		&services.FileError{Op: "load", Path: path, Err: err})
}

// Save asks for a destination file and saves to it
func (mc *MainController) Save() {
	mc.mainView.ShowSaveDialog(func(path string, ok bool, err error) {
		if err != nil {
			mc.reportFileError("Save error", "Error writing file", path,
				&services.FileError{Op: "save", Path: path, Err: err})
			return
		}
		if !ok {
			return
		}
		_ = mc.SaveFile(path)
	})
}

// SaveFile writes the entries to path, one per line
func (mc *MainController) SaveFile(path string) error {
	if err := mc.files.SaveFile(path, mc.store.Entries()); err != nil {
		mc.reportFileError("Save error", "Error writing file", path, err)
		return err
	}

	mc.mainView.UpdateStatus(fmt.Sprintf("Saved %s", filepath.Base(path)))
	return nil
}

// RequestQuit asks for confirmation and quits only on an explicit yes
func (mc *MainController) RequestQuit() {
	mc.logger.Info(component, "quit requested", nil)

	mc.mainView.ShowConfirm("Quit", "Do you really want to quit the application?", func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug(component, "quit declined", nil)
			return
		}
		if mc.quit != nil {
			mc.quit()
		}
	})
}

// recompute rebuilds the frequency table and the chart from scratch
func (mc *MainController) recompute(entries []string) {
	mc.table = models.ComputeFrequencies(entries)

	mc.logger.Debug(component, "frequencies recomputed", map[string]interface{}{
		"entries":    len(entries),
		"characters": mc.table.Total(),
		"distinct":   len(mc.table),
	})

	if mc.mainView == nil {
		return
	}

	mc.mainView.SetEntries(entries)
	mc.mainView.SetSlices(mc.table.Slices())
	mc.mainView.UpdateStatus(fmt.Sprintf("%d entries, %d characters, %d distinct",
		len(entries), mc.table.Total(), len(mc.table)))
}

func (mc *MainController) reportFileError(title, message, path string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"path": path,
	})

	name, cause := displayName(path), err
	var fileErr *services.FileError
	if errors.As(err, &fileErr) {
		name, cause = displayName(fileErr.Path), fileErr.Err
	}

	mc.mainView.ShowError(title, fmt.Errorf("%s %s: %w", message, name, cause))
}

// displayName names a file for the user, or falls back when the picker gave
// no path
func displayName(path string) string {
	if path == "" {
		return unknownFileName
	}
	return filepath.Base(path)
}
