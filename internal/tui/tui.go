// Package tui is the interactive mode: a Bubble Tea program that keeps
// one rendered row per task and an aggregate footer in sync with the
// list, re-rendering only what each change touches.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/ui"
)

const (
	boxUnchecked = "☐"
	boxChecked   = "☑"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	list *task.List
	sync *viewSync
	keys keyMap
	help help.Model

	cursor int // index into visible rows

	// Inline add/edit share one text input.
	mode     mode
	ti       textinput.Model
	editRow  *row
	inputErr string

	width, height int
}

// New builds the model over an already fetched list. The filter plays
// the role of the route fragment: it decides initial visibility and
// can be switched from inside the program.
func New(l *task.List, f task.Filter) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task title..."
	ti.CharLimit = 200

	return Model{
		list: l,
		sync: newViewSync(l, f),
		keys: defaultKeyMap(),
		help: help.New(),
		ti:   ti,
	}
}

// Run starts the program in the alternate screen.
func Run(l *task.List, f task.Filter) error {
	p := tea.NewProgram(New(l, f), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if _, err := m.list.Create(title, false); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.leaveInput()
			m.cursor = len(m.sync.visibleRows()) - 1
			m.clampCursor()
			return m, nil
		case "esc":
			m.leaveInput()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			m.confirmEdit()
			return m, nil
		case "esc":
			// Explicit cancel: keep the old title.
			if m.editRow != nil && m.editRow.state == rowEditing {
				m.editRow.state = rowNormal
			}
			m.leaveInput()
			return m, nil
		case "ctrl+c":
			// Losing focus without an explicit cancel confirms.
			m.confirmEdit()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// confirmEdit commits the pending edit: a non-empty title is saved, an
// empty one destroys the task instead.
func (m *Model) confirmEdit() {
	r := m.editRow
	if r == nil || r.state != rowEditing {
		m.leaveInput()
		return
	}
	title := strings.TrimSpace(m.ti.Value())
	if title == "" {
		m.list.Destroy(r.item)
	} else {
		r.state = rowNormal
		m.list.Rename(r.item, title)
	}
	m.leaveInput()
	m.clampCursor()
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.editRow = nil
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(k, m.keys.Down):
		if m.cursor < len(m.sync.visibleRows())-1 {
			m.cursor++
		}

	case key.Matches(k, m.keys.Toggle):
		if r := m.rowUnderCursor(); r != nil {
			m.list.Toggle(r.item)
			m.clampCursor()
		}

	case key.Matches(k, m.keys.Delete):
		if r := m.rowUnderCursor(); r != nil {
			m.list.Destroy(r.item)
			m.clampCursor()
		}

	case key.Matches(k, m.keys.Add):
		m.mode = modeAdd
		m.ti.Placeholder = "New task title..."
		m.ti.SetValue("")
		m.ti.Focus()

	case key.Matches(k, m.keys.Edit):
		if r := m.rowUnderCursor(); r != nil {
			m.mode = modeEdit
			m.editRow = r
			r.state = rowEditing
			m.ti.Placeholder = "Edit task title..."
			m.ti.SetValue(r.item.Title)
			m.ti.CursorEnd()
			m.ti.Focus()
		}

	case key.Matches(k, m.keys.ToggleAll):
		m.list.ToggleAll(len(m.list.Remaining()) > 0)
		m.clampCursor()

	case key.Matches(k, m.keys.Clear):
		m.list.ClearCompleted()
		m.clampCursor()

	case key.Matches(k, m.keys.All):
		m.setFilter(task.FilterAll)
	case key.Matches(k, m.keys.Active):
		m.setFilter(task.FilterActive)
	case key.Matches(k, m.keys.Completed):
		m.setFilter(task.FilterCompleted)
	}
	return m, nil
}

func (m *Model) setFilter(f task.Filter) {
	m.sync.setFilter(f)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := len(m.sync.visibleRows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) rowUnderCursor() *row {
	rows := m.sync.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

func (m Model) View() string {
	var b strings.Builder

	done := len(m.list.Completed())
	left := len(m.list.Remaining())
	b.WriteString(fmt.Sprintf("%s   %s %d  %s %d  %s %d\n\n",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), left,
		ui.AccentStyle.Render("Total"), m.list.Len(),
	))

	rows := m.sync.visibleRows()
	if len(rows) == 0 {
		b.WriteString(ui.MutedStyle.Render("  nothing here — press a to add") + "\n")
	}
	for i, r := range rows {
		prefix := "  "
		if i == m.cursor {
			prefix = ui.SelectedStyle.Render("> ")
		}
		line := r.line
		if r.state == rowEditing {
			line = ui.AccentStyle.Render("… editing")
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.list.Len() > 0 {
		b.WriteString("\n" + m.footer() + "\n")
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		title := "Add new task"
		if m.mode == modeEdit {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += " — " + ui.ErrorStyle.Render(m.inputErr)
		}
		b.WriteString(ui.PanelStyle.Render(title+"\n"+m.ti.View()) + "\n")
	}

	if m.sync.err != "" {
		b.WriteString(ui.ErrorStyle.Render("! "+m.sync.err) + "\n")
	}
	b.WriteString(m.help.View(m.keys))

	out := b.String()
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width - 2).Render(out)
	}
	return out
}

// footer renders the aggregate summary: the all-done affordance, the
// remaining count and the filter tabs.
func (m Model) footer() string {
	allBox := boxUnchecked
	if len(m.list.Remaining()) == 0 {
		allBox = boxChecked
	}

	tab := func(label string, f task.Filter) string {
		if m.sync.filter == f {
			return ui.ActiveTabStyle.Render(label)
		}
		return ui.TabStyle.Render(label)
	}

	left := len(m.list.Remaining())
	unit := "tasks"
	if left == 1 {
		unit = "task"
	}
	return fmt.Sprintf("%s all  %d %s left   %s %s %s",
		allBox, left, unit,
		tab("All", task.FilterAll),
		tab("Active", task.FilterActive),
		tab("Completed", task.FilterCompleted),
	)
}
