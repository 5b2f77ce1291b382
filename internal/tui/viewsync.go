package tui

import (
	"fmt"

	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/ui"
)

type rowState int

const (
	rowNormal rowState = iota
	rowEditing
	rowRemoved // terminal
)

// row is the presentation unit for exactly one item: its cached
// rendered line, its visibility under the current filter, and its
// edit state.
type row struct {
	item    *task.Item
	state   rowState
	visible bool
	line    string
}

// viewSync keeps one row per list member in list order. It listens to
// list notifications and re-renders only what each event affects
// instead of rebuilding the whole view.
type viewSync struct {
	list   *task.List
	filter task.Filter
	rows   []*row
	byID   map[string]*row
	err    string // last persistence failure, shown in the status line
}

func newViewSync(l *task.List, f task.Filter) *viewSync {
	s := &viewSync{list: l, filter: f}
	l.Watch(s.handle)
	l.OnError(func(err error) { s.err = err.Error() })
	s.rebuild()
	return s
}

func (s *viewSync) handle(ev task.Event) {
	switch ev.Kind {
	case task.EventAdd:
		// New items always carry the highest order, so the new row
		// goes after every existing one.
		r := &row{item: ev.Item}
		s.render(r)
		s.rows = append(s.rows, r)
		s.byID[r.item.ID] = r
	case task.EventReset:
		s.rebuild()
	case task.EventChange:
		if r := s.byID[ev.Item.ID]; r != nil {
			s.render(r)
		}
	case task.EventDestroy:
		r := s.byID[ev.Item.ID]
		if r == nil {
			return // already removed
		}
		r.state = rowRemoved
		delete(s.byID, ev.Item.ID)
		for i, m := range s.rows {
			if m == r {
				s.rows = append(s.rows[:i], s.rows[i+1:]...)
				break
			}
		}
	}
}

// rebuild discards every row and recreates one per member in order.
func (s *viewSync) rebuild() {
	s.rows = s.rows[:0]
	s.byID = make(map[string]*row)
	s.list.Each(func(it *task.Item) {
		r := &row{item: it}
		s.render(r)
		s.rows = append(s.rows, r)
		s.byID[it.ID] = r
	})
}

// setFilter recomputes visibility for every row. Item events only
// recompute the affected row.
func (s *viewSync) setFilter(f task.Filter) {
	s.filter = f
	for _, r := range s.rows {
		s.render(r)
	}
}

// render recomputes the row's cached line and visibility.
func (s *viewSync) render(r *row) {
	r.visible = s.filter.Visible(r.item)
	box := ui.MutedStyle.Render(boxUnchecked)
	title := r.item.Title
	if r.item.Completed {
		box = ui.SuccessStyle.Render(boxChecked)
		title = ui.DoneStyle.Render(title)
	}
	r.line = fmt.Sprintf("%s %s", box, title)
}

// visibleRows returns the rows shown under the current filter, in
// list order.
func (s *viewSync) visibleRows() []*row {
	var out []*row
	for _, r := range s.rows {
		if r.visible {
			out = append(out, r)
		}
	}
	return out
}
