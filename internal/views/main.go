package views

import (
	"charfreq/internal/logger"
	"charfreq/internal/models"
	"charfreq/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// DefaultFileName is suggested by the save dialog
const DefaultFileName = "entries.txt"

// MainView is the main application window content
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	entryList     *components.EntryList
	chartDisplay  *components.ChartDisplay
	statusBar     *components.StatusBar
	logger        logger.Logger

	// Event handlers - connected to controller
	addHandler       func()
	deleteHandler    func()
	deleteAllHandler func()
	saveHandler      func()
	loadHandler      func()
	quitHandler      func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, log logger.Logger) *MainView {
	view := &MainView{
		window: window,
		logger: log,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.entryList = components.NewEntryList()
	mv.chartDisplay = components.NewChartDisplay(mv.logger)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	contentArea := container.NewBorder(
		nil,
		nil,
		mv.entryList,
		nil,
		mv.chartDisplay.GetContainer(),
	)

	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		contentArea,
	)

	mv.window.SetContent(mv.mainContainer)
	mv.window.SetMainMenu(mv.buildMainMenu())
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() { dispatch(mv.addHandler) })
	mv.toolbar.SetDeleteHandler(func() { dispatch(mv.deleteHandler) })
	mv.toolbar.SetDeleteAllHandler(func() { dispatch(mv.deleteAllHandler) })
	mv.toolbar.SetSaveHandler(func() { dispatch(mv.saveHandler) })
	mv.toolbar.SetLoadHandler(func() { dispatch(mv.loadHandler) })
	mv.toolbar.SetQuitHandler(func() { dispatch(mv.quitHandler) })

	mv.entryList.SetDeleteHandler(func() { dispatch(mv.deleteHandler) })
}

func dispatch(handler func()) {
	if handler != nil {
		handler()
	}
}

// Event handler setters - called by the entry point

// SetAddHandler sets the handler for add requests
func (mv *MainView) SetAddHandler(handler func()) {
	mv.addHandler = handler
}

// SetDeleteHandler sets the handler for delete requests from the button,
// the menu and the Delete key
func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.deleteHandler = handler
}

// SetDeleteAllHandler sets the handler for delete-all requests
func (mv *MainView) SetDeleteAllHandler(handler func()) {
	mv.deleteAllHandler = handler
}

// SetSaveHandler sets the handler for save requests
func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

// SetLoadHandler sets the handler for load requests
func (mv *MainView) SetLoadHandler(handler func()) {
	mv.loadHandler = handler
}

// SetQuitHandler sets the handler for quit requests
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// UI update methods - called by controller

// Selection returns the selected entry row
func (mv *MainView) Selection() models.Selection {
	return mv.entryList.Selection()
}

// ClearSelection unselects the entry list
func (mv *MainView) ClearSelection() {
	fyne.Do(func() {
		mv.entryList.ClearSelection()
	})
}

// SetEntries updates the entry list
func (mv *MainView) SetEntries(entries []string) {
	fyne.Do(func() {
		mv.entryList.SetEntries(entries)
	})
}

// SetSlices replaces the chart contents
func (mv *MainView) SetSlices(slices []models.Slice) {
	fyne.Do(func() {
		mv.chartDisplay.SetSlices(slices)
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// PromptText asks for a line of text. ok is false when the user cancels.
func (mv *MainView) PromptText(title, message string, callback func(text string, ok bool)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(message)

	form := dialog.NewForm(title, "Add", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(message, entry)},
		func(ok bool) {
			callback(entry.Text, ok)
		},
		mv.window,
	)
	entry.OnSubmitted = func(string) {
		form.Submit()
	}

	fyne.Do(func() {
		form.Resize(fyne.NewSize(360, form.MinSize().Height))
		form.Show()
		mv.window.Canvas().Focus(entry)
	})
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowError displays an error dialog. The message of err names the file;
// title is only logged since Fyne error dialogs carry a fixed title.
func (mv *MainView) ShowError(title string, err error) {
	mv.logger.Debug("MainView", "showing error dialog", map[string]interface{}{
		"title": title,
	})
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowOpenDialog lets the user choose a text file to load
func (mv *MainView) ShowOpenDialog(callback func(path string, ok bool, err error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			callback(readerPath(reader), false, err)
			return
		}
		if reader == nil {
			callback("", false, nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path, true, nil)
	}, mv.window)
	// Fyne pickers take a single filter, so there is no separate all-files choice
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))

	fyne.Do(func() {
		fd.Show()
	})
}

// ShowSaveDialog lets the user choose where to save the entries
func (mv *MainView) ShowSaveDialog(callback func(path string, ok bool, err error)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			callback(writerPath(writer), false, err)
			return
		}
		if writer == nil {
			callback("", false, nil)
			return
		}
		path := writer.URI().Path()
		writer.Close()
		callback(path, true, nil)
	}, mv.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.SetFileName(DefaultFileName)

	fyne.Do(func() {
		fd.Show()
	})
}

func readerPath(reader fyne.URIReadCloser) string {
	if reader == nil || reader.URI() == nil {
		return ""
	}
	defer reader.Close()
	return reader.URI().Path()
}

func writerPath(writer fyne.URIWriteCloser) string {
	if writer == nil || writer.URI() == nil {
		return ""
	}
	defer writer.Close()
	return writer.URI().Path()
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// EntryList returns the entry list component
func (mv *MainView) EntryList() *components.EntryList {
	return mv.entryList
}

// ChartDisplay returns the chart component
func (mv *MainView) ChartDisplay() *components.ChartDisplay {
	return mv.chartDisplay
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// Toolbar returns the toolbar component
func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}
