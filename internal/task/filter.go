package task

// Filter restricts which items are visible: all, active (not yet
// completed), or completed.
type Filter string

const (
	FilterAll       Filter = ""
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a routing string to a Filter. Anything that is not
// "active" or "completed" (including "all") means no filtering.
func ParseFilter(s string) Filter {
	switch s {
	case string(FilterActive):
		return FilterActive
	case string(FilterCompleted):
		return FilterCompleted
	}
	return FilterAll
}

// Visible reports whether the item should be shown under this filter.
func (f Filter) Visible(it *Item) bool {
	switch f {
	case FilterActive:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	}
	return true
}
