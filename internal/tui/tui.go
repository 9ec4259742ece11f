// Package tui is the interactive to-do list: a bubbles list with inline add,
// an edit dialog, removal and keyboard drag-and-drop.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	todolist "github.com/idilsaglam/todolist/internal/list"
	"github.com/idilsaglam/todolist/internal/liststore"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeDrag
)

// dragState tracks a pick-up in progress. to is where the item would land if
// dropped now.
type dragState struct {
	id       string
	from, to int
}

type Model struct {
	ctx   context.Context
	store *liststore.Store
	items model.List
	keys  keyMap

	list list.Model
	ti   textinput.Model // shared by add and edit

	mode     mode
	editID   string
	drag     dragState
	inputErr string
	err      error

	width, height int
}

func New(ctx context.Context, store *liststore.Store, items model.List) Model {
	t := ui.Current()
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.browseHelp
	l.AdditionalFullHelpKeys = keys.browseHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:   ctx,
		store: store,
		items: items.Clone(),
		keys:  keys,
		list:  l,
		ti:    ti,
	}
	m.refresh()
	return m
}

// Items returns the list as last persisted.
func (m Model) Items() model.List { return m.items.Clone() }

// Run starts the program and returns the final list.
func Run(ctx context.Context, store *liststore.Store, items model.List) (model.List, error) {
	p := tea.NewProgram(New(ctx, store, items), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return items, err
	}
	fm, ok := finalModel.(Model)
	if !ok {
		return items, nil
	}
	return fm.Items(), nil
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeDrag:
			return m.updateDrag(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	if m.mode == modeAdd || m.mode == modeEdit {
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := m.list.Index()
	sel, hasSel := m.selected()

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.openInput(modeAdd, "", "What needs doing?")
		cmd := m.ti.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		if !hasSel {
			return m, nil
		}
		m.openInput(modeEdit, sel.Content, "Edit to-do...")
		m.editID = sel.ID
		cmd := m.ti.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Remove):
		if !hasSel {
			return m, nil
		}
		items, err := m.store.Remove(m.ctx, m.items, sel.ID)
		return m.apply(items, err, i)

	case key.Matches(msg, m.keys.Grab):
		if !hasSel {
			return m, nil
		}
		m.mode = modeDrag
		m.drag = dragState{id: sel.ID, from: i, to: i}
		m.err = nil
		cmd := m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.ShiftUp):
		if !hasSel {
			return m, nil
		}
		items, err := m.store.Shift(m.ctx, m.items, i, -1)
		return m.apply(items, err, i-1)

	case key.Matches(msg, m.keys.ShiftDown):
		if !hasSel {
			return m, nil
		}
		items, err := m.store.Shift(m.ctx, m.items, i, 1)
		return m.apply(items, err, i+1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.drag.to > 0 {
			m.drag.to--
		}
		cmd := m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Down):
		if m.drag.to < len(m.items)-1 {
			m.drag.to++
		}
		cmd := m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Drop):
		from, to := m.drag.from, m.drag.to
		m.mode = modeBrowse
		m.drag = dragState{}
		items, err := m.store.Reorder(m.ctx, m.items, from, to)
		if err != nil {
			to = from
		}
		return m.apply(items, err, to)

	case key.Matches(msg, m.keys.Cancel):
		// No destination: nothing moves.
		from := m.drag.from
		m.mode = modeBrowse
		m.drag = dragState{}
		cmd := m.refresh()
		m.list.Select(from)
		return m, cmd

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.ti.Value()
		if strings.TrimSpace(text) == "" {
			m.inputErr = "Content cannot be empty"
			return m, nil
		}
		if m.mode == modeAdd {
			items, err := m.store.Add(m.ctx, m.items, text)
			m.closeInput()
			return m.apply(items, err, len(items)-1)
		}
		id := m.editID
		items, err := m.store.Edit(m.ctx, m.items, id, text)
		m.closeInput()
		sel := items.Index(id)
		if sel < 0 {
			sel = m.list.Index()
		}
		return m.apply(items, err, sel)

	case "esc":
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.inputErr = ""
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()

	switch m.mode {
	case modeAdd, modeEdit:
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := t.Title.Render("Add To-Do")
		help := "enter add · esc cancel"
		if m.mode == modeEdit {
			title = t.Title.Render("Edit To-Do")
			help = "enter save changes · esc close"
		}
		if m.inputErr != "" {
			title += " — " + t.Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View()+"\n"+t.Muted.Render(help))
	case modeDrag:
		t := ui.Current()
		content += "\n" + t.Dragging.Render(fmt.Sprintf("moving %d → %d", m.drag.from+1, m.drag.to+1)) +
			t.Muted.Render("  ↑/↓ move · enter drop · esc cancel")
	}
	if m.err != nil {
		content += "\n" + ui.Current().Error.Render("✖ "+m.err.Error())
	}
	return ui.Panel([]string{content})
}

// apply installs the list a store call returned and moves the cursor to sel.
func (m Model) apply(items model.List, err error, sel int) (tea.Model, tea.Cmd) {
	m.err = err
	if err == nil {
		m.items = items
	}
	cmd := m.refresh()
	if sel > len(m.items)-1 {
		sel = len(m.items) - 1
	}
	if sel < 0 {
		sel = 0
	}
	m.list.Select(sel)
	return m, cmd
}

// refresh re-renders the list. While dragging it shows the drop preview.
func (m *Model) refresh() tea.Cmd {
	shown, dragID := m.items, ""
	if m.mode == modeDrag {
		shown, _ = todolist.Reorder(m.items, m.drag.from, m.drag.to)
		dragID = m.drag.id
	}
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d", t.Title.Render("To-Do List"), t.Accent.Render("Total"), len(m.items))
	cmd := m.list.SetItems(toListItems(shown, dragID))
	if m.mode == modeDrag {
		m.list.Select(m.drag.to)
	}
	return cmd
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := m.height - 4
	if m.mode == modeAdd || m.mode == modeEdit {
		h -= 5
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
	m.ti.Width = max(m.width-12, 10)
}

func (m *Model) openInput(md mode, value, placeholder string) {
	m.mode = md
	m.inputErr = ""
	m.err = nil
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = placeholder
	m.resize()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) selected() (model.Item, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.items) {
		return model.Item{}, false
	}
	return m.items[i], true
}
