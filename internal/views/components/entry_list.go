package components

import (
	"charfreq/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const EntryListWidth = 300

// EntryList is a single-selection list of entries that reports the Delete key
type EntryList struct {
	widget.List

	entries   []string
	selection models.Selection

	deleteHandler func()
}

// NewEntryList creates an empty entry list
func NewEntryList() *EntryList {
	list := &EntryList{
		entries:   make([]string, 0),
		selection: models.NoSelection,
	}

	list.Length = func() int {
		return len(list.entries)
	}
	list.CreateItem = func() fyne.CanvasObject {
		return widget.NewLabel("")
	}
	list.UpdateItem = func(id widget.ListItemID, item fyne.CanvasObject) {
		if id < len(list.entries) {
			item.(*widget.Label).SetText(list.entries[id])
		}
	}
	list.OnSelected = func(id widget.ListItemID) {
		list.selection = models.Selection(id)
	}
	list.OnUnselected = func(id widget.ListItemID) {
		if list.selection == models.Selection(id) {
			list.selection = models.NoSelection
		}
	}

	list.ExtendBaseWidget(list)
	return list
}

// SetDeleteHandler sets the handler run when Delete is pressed on the list
func (l *EntryList) SetDeleteHandler(handler func()) {
	l.deleteHandler = handler
}

// TypedKey intercepts Delete and forwards everything else to the list
func (l *EntryList) TypedKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyDelete {
		if l.deleteHandler != nil {
			l.deleteHandler()
		}
		return
	}
	l.List.TypedKey(event)
}

// SetEntries replaces the displayed entries
func (l *EntryList) SetEntries(entries []string) {
	l.entries = entries
	if int(l.selection) >= len(entries) {
		l.ClearSelection()
	}
	l.Refresh()
}

// Entries returns the displayed entries
func (l *EntryList) Entries() []string {
	return l.entries
}

// Selection returns the selected row
func (l *EntryList) Selection() models.Selection {
	return l.selection
}

// ClearSelection unselects every row
func (l *EntryList) ClearSelection() {
	l.selection = models.NoSelection
	l.UnselectAll()
}

// MinSize keeps the list at a fixed width beside the chart
func (l *EntryList) MinSize() fyne.Size {
	size := l.List.MinSize()
	return fyne.NewSize(EntryListWidth, size.Height)
}
