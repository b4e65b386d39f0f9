package views

import (
	"fyne.io/fyne/v2"
)

func (mv *MainView) buildMainMenu() *fyne.MainMenu {
	quitItem := fyne.NewMenuItem("Quit", func() {
		dispatch(mv.quitHandler)
	})
	// Fyne appends its own Quit unless an item is flagged as the quit item
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Load...", func() {
			dispatch(mv.loadHandler)
		}),
		fyne.NewMenuItem("Save...", func() {
			dispatch(mv.saveHandler)
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Add...", func() {
			dispatch(mv.addHandler)
		}),
		fyne.NewMenuItem("Delete", func() {
			dispatch(mv.deleteHandler)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Delete All", func() {
			dispatch(mv.deleteAllHandler)
		}),
	)

	return fyne.NewMainMenu(fileMenu, editMenu)
}
