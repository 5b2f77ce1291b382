package task

import (
	"fmt"
	"os"
	"sort"

	"github.com/idilsaglam/doit/internal/store"
)

// EventKind classifies a change notification from a List.
type EventKind int

const (
	// EventAdd carries a freshly created item.
	EventAdd EventKind = iota
	// EventReset means the whole membership was replaced (Item is nil).
	EventReset
	// EventChange carries an item whose fields changed.
	EventChange
	// EventDestroy carries an item that was removed from the list.
	EventDestroy
)

// Event is delivered synchronously to every registered observer after
// a mutation has been applied in memory.
type Event struct {
	Kind EventKind
	Item *Item
}

// List is the owning, ordered collection of Items. Items are kept
// sorted by Order ascending. Mutations persist to the backing store as
// a side effect and notify observers; a store failure is reported but
// never rolls back the in-memory change.
type List struct {
	st        store.Store
	items     []*Item
	observers []func(Event)
	onError   func(error)
}

// NewList returns an empty list backed by st. Call Fetch to load
// previously persisted items.
func NewList(st store.Store) *List {
	return &List{
		st: st,
		onError: func(err error) {
			fmt.Fprintln(os.Stderr, "store:", err)
		},
	}
}

// Watch registers fn to receive every subsequent change notification.
// Observers cannot be removed; register for the lifetime of the list.
func (l *List) Watch(fn func(Event)) {
	l.observers = append(l.observers, fn)
}

// OnError replaces the persistence-failure handler (default: stderr).
func (l *List) OnError(fn func(error)) {
	l.onError = fn
}

func (l *List) notify(ev Event) {
	for _, fn := range l.observers {
		fn(ev)
	}
}

func (l *List) reportErr(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.items) }

// Items returns the members in Order sequence. The slice is a copy;
// the items are not.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item with the given id, or nil.
func (l *List) Get(id string) *Item {
	for _, it := range l.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// At returns the item at position i in Order sequence, or nil if i is
// out of range.
func (l *List) At(i int) *Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Each applies fn to every member in Order sequence.
func (l *List) Each(fn func(*Item)) {
	for _, it := range l.items {
		fn(it)
	}
}

// Completed returns the members with Completed set, as a snapshot.
func (l *List) Completed() []*Item {
	var out []*Item
	for _, it := range l.items {
		if it.Completed {
			out = append(out, it)
		}
	}
	return out
}

// Remaining returns the members with Completed unset, as a snapshot.
func (l *List) Remaining() []*Item {
	var out []*Item
	for _, it := range l.items {
		if !it.Completed {
			out = append(out, it)
		}
	}
	return out
}

// NextOrder returns 1 for an empty list, else the highest Order plus
// one. Items stay sorted, so the highest Order is the last member's.
func (l *List) NextOrder() int {
	if len(l.items) == 0 {
		return 1
	}
	return l.items[len(l.items)-1].Order + 1
}

// Create constructs a new item with a fresh id and the next order
// value, inserts it in sorted position, persists it, and notifies
// observers with EventAdd.
func (l *List) Create(title string, completed bool) (*Item, error) {
	id, err := l.freshID()
	if err != nil {
		return nil, err
	}
	it := &Item{
		ID:        id,
		Title:     title,
		Completed: completed,
		Order:     l.NextOrder(),
	}
	i := sort.Search(len(l.items), func(i int) bool {
		return l.items[i].Order > it.Order
	})
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = it
	l.persist(it)
	l.notify(Event{Kind: EventAdd, Item: it})
	return it, nil
}

func (l *List) freshID() (string, error) {
	for {
		id, err := newID()
		if err != nil {
			return "", err
		}
		if l.Get(id) == nil {
			return id, nil
		}
	}
}

// Fetch replaces the membership with the records in the store and
// notifies observers with a single EventReset. Records are sorted by
// Order with a stable sort, so records that share an Order value (a
// store corrupted by hand-editing) keep their arrival sequence.
func (l *List) Fetch() error {
	recs, err := l.st.FetchAll()
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	items := make([]*Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, &Item{
			ID:        r.ID,
			Title:     r.Title,
			Completed: r.Completed,
			Order:     r.Order,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	l.items = items
	l.notify(Event{Kind: EventReset})
	return nil
}

// Rename sets the item's title, persists, and notifies EventChange.
func (l *List) Rename(it *Item, title string) {
	it.Title = title
	l.persist(it)
	l.notify(Event{Kind: EventChange, Item: it})
}

// SetCompleted sets the item's completion flag, persists, and
// notifies EventChange.
func (l *List) SetCompleted(it *Item, completed bool) {
	it.Completed = completed
	l.persist(it)
	l.notify(Event{Kind: EventChange, Item: it})
}

// Toggle flips the item's completion flag.
func (l *List) Toggle(it *Item) {
	l.SetCompleted(it, !it.Completed)
}

// ToggleAll sets every item's completion flag to completed through
// individual SetCompleted calls, one notification per item.
func (l *List) ToggleAll(completed bool) {
	for _, it := range l.Items() {
		l.SetCompleted(it, completed)
	}
}

// Destroy removes the item from the list, deletes it from the store,
// and notifies EventDestroy. Destroying an item that is no longer a
// member is a no-op.
func (l *List) Destroy(it *Item) {
	i := -1
	for j, m := range l.items {
		if m.ID == it.ID {
			i = j
			break
		}
	}
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if err := l.st.Delete(it.ID); err != nil {
		l.reportErr(fmt.Errorf("delete %s: %w", it.ID, err))
	}
	l.notify(Event{Kind: EventDestroy, Item: it})
}

// ClearCompleted destroys every currently completed item. The set is
// snapshotted before the first destroy.
func (l *List) ClearCompleted() {
	for _, it := range l.Completed() {
		l.Destroy(it)
	}
}

func (l *List) persist(it *Item) {
	r := store.Record{
		ID:        it.ID,
		Title:     it.Title,
		Completed: it.Completed,
		Order:     it.Order,
	}
	if err := l.st.Put(r); err != nil {
		l.reportErr(fmt.Errorf("save %s: %w", it.ID, err))
	}
}
