package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the action buttons along the bottom of the window
type Toolbar struct {
	container       *fyne.Container
	quitButton      *widget.Button
	addButton       *widget.Button
	deleteButton    *widget.Button
	deleteAllButton *widget.Button
	saveButton      *widget.Button
	loadButton      *widget.Button

	// Event handlers
	quitHandler      func()
	addHandler       func()
	deleteHandler    func()
	deleteAllHandler func()
	saveHandler      func()
	loadHandler      func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.quitButton = widget.NewButtonWithIcon("Quit", theme.LogoutIcon(), func() {
		invoke(t.quitHandler)
	})

	t.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), func() {
		invoke(t.addHandler)
	})
	t.addButton.Importance = widget.HighImportance

	t.deleteButton = widget.NewButtonWithIcon("Delete", theme.ContentRemoveIcon(), func() {
		invoke(t.deleteHandler)
	})

	t.deleteAllButton = widget.NewButtonWithIcon("Delete All", theme.DeleteIcon(), func() {
		invoke(t.deleteAllHandler)
	})
	t.deleteAllButton.Importance = widget.DangerImportance

	t.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		invoke(t.saveHandler)
	})

	t.loadButton = widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), func() {
		invoke(t.loadHandler)
	})
}

func (t *Toolbar) buildLayout() {
	buttons := container.NewHBox(
		t.quitButton,
		t.addButton,
		t.deleteButton,
		t.deleteAllButton,
		t.saveButton,
		t.loadButton,
	)

	background := canvas.NewRectangle(color.NRGBA{R: 211, G: 211, B: 211, A: 255})
	t.container = container.NewStack(
		background,
		container.NewPadded(container.NewCenter(buttons)),
	)
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

// SetQuitHandler sets the handler for the Quit button
func (t *Toolbar) SetQuitHandler(handler func()) {
	t.quitHandler = handler
}

// SetAddHandler sets the handler for the Add button
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// SetDeleteHandler sets the handler for the Delete button
func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

// SetDeleteAllHandler sets the handler for the Delete All button
func (t *Toolbar) SetDeleteAllHandler(handler func()) {
	t.deleteAllHandler = handler
}

// SetSaveHandler sets the handler for the Save button
func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetLoadHandler sets the handler for the Load button
func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

// Buttons returns the buttons in display order
func (t *Toolbar) Buttons() []*widget.Button {
	return []*widget.Button{
		t.quitButton,
		t.addButton,
		t.deleteButton,
		t.deleteAllButton,
		t.saveButton,
		t.loadButton,
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
