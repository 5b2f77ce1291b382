package tui

import (
	"strings"
	"testing"

	"github.com/idilsaglam/doit/internal/store/storetest"
	"github.com/idilsaglam/doit/internal/task"
)

func newTestSync(t *testing.T, f task.Filter, titles ...string) (*task.List, *viewSync) {
	t.Helper()
	l := task.NewList(storetest.NewMem())
	for _, title := range titles {
		if _, err := l.Create(title, false); err != nil {
			t.Fatalf("Create(%q): %v", title, err)
		}
	}
	return l, newViewSync(l, f)
}

func rowTitles(rows []*row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.item.Title
	}
	return out
}

func TestSync_AddAppendsOneRow(t *testing.T) {
	l, s := newTestSync(t, task.FilterAll, "a", "b")
	if len(s.rows) != 2 {
		t.Fatalf("initial rows = %d, want 2", len(s.rows))
	}

	it, err := l.Create("c", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(s.rows) != 3 {
		t.Fatalf("rows after add = %d, want 3", len(s.rows))
	}
	if last := s.rows[len(s.rows)-1]; last.item != it {
		t.Error("new row is not the last presentation unit")
	}
}

func TestSync_ResetRebuildsInListOrder(t *testing.T) {
	l, s := newTestSync(t, task.FilterAll, "a", "b")
	old := s.rows[0]

	if err := l.Fetch(); err != nil { // empty store: membership goes away
		t.Fatalf("Fetch: %v", err)
	}
	if len(s.rows) != 0 {
		t.Errorf("rows after reset = %d, want 0", len(s.rows))
	}
	if s.byID[old.item.ID] == old {
		t.Error("reset kept an old presentation unit")
	}
}

func TestSync_ChangeRerendersOnlyThatRow(t *testing.T) {
	l, s := newTestSync(t, task.FilterAll, "a", "b")
	changedLine := s.rows[0].line
	otherLine := s.rows[1].line

	l.Toggle(l.At(0))

	if !strings.Contains(s.rows[0].line, "a") {
		t.Errorf("changed row line = %q, want it re-rendered with its title", s.rows[0].line)
	}
	if s.rows[0].line == changedLine {
		t.Error("changed row did not re-render")
	}
	if s.rows[1].line != otherLine {
		t.Error("unchanged row was re-rendered")
	}
}

func TestSync_DestroyRemovesRowIdempotently(t *testing.T) {
	l, s := newTestSync(t, task.FilterAll, "a", "b")
	it := l.At(0)

	l.Destroy(it)
	if len(s.rows) != 1 {
		t.Fatalf("rows after destroy = %d, want 1", len(s.rows))
	}

	// A destroy notification for an item whose unit is already gone
	// must not crash or change anything.
	s.handle(task.Event{Kind: task.EventDestroy, Item: it})
	if len(s.rows) != 1 {
		t.Errorf("rows after duplicate destroy = %d, want 1", len(s.rows))
	}
}

func TestSync_VisibilityFollowsFilter(t *testing.T) {
	l, s := newTestSync(t, task.FilterAll, "A", "B")
	l.Toggle(l.At(0)) // A completed, B not

	tests := []struct {
		filter task.Filter
		want   []string
	}{
		{task.FilterActive, []string{"B"}},
		{task.FilterCompleted, []string{"A"}},
		{task.FilterAll, []string{"A", "B"}},
	}
	for _, tc := range tests {
		s.setFilter(tc.filter)
		got := rowTitles(s.visibleRows())
		if len(got) != len(tc.want) {
			t.Errorf("filter %q: visible = %v, want %v", tc.filter, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("filter %q: visible = %v, want %v", tc.filter, got, tc.want)
				break
			}
		}
	}
}

func TestSync_ItemChangeRecomputesItsVisibility(t *testing.T) {
	l, s := newTestSync(t, task.FilterActive, "a")
	if len(s.visibleRows()) != 1 {
		t.Fatal("active item should be visible under the active filter")
	}
	l.Toggle(l.At(0))
	if len(s.visibleRows()) != 0 {
		t.Error("completed item still visible under the active filter")
	}
}

func TestSync_StoreErrorLandsInStatus(t *testing.T) {
	l := task.NewList(storetest.Broken{})
	if err := l.Fetch(); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	s := newViewSync(l, task.FilterAll)
	if _, err := l.Create("a", false); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.err == "" {
		t.Error("persistence failure did not reach the status line")
	}
}
