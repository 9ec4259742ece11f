package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
	Dragging bool
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.Content }
func (i listItem) Description() string { return i.ID }
func (i listItem) FilterValue() string { return i.Content }

func toListItems(l model.List, dragID string) []list.Item {
	out := make([]list.Item, 0, len(l))
	for _, it := range l {
		out = append(out, listItem{Item: it, Dragging: dragID != "" && it.ID == dragID})
	}
	return out
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	grip := t.Muted.Render(t.Grip)
	text := it.Content
	if it.Dragging {
		grip = t.Dragging.Render(t.Grip)
		text = t.Dragging.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, grip, text)
}
