package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/ui"
)

func runAdd(flags *rootFlags, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return usageError("add: empty title")
	}
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	if _, err := a.list.Create(title, false); err != nil {
		return err
	}
	ui.OK("added")
	return nil
}

func runLs(flags *rootFlags, f task.Filter, group bool) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()

	done := len(a.list.Completed())
	pending := len(a.list.Remaining())
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Tasks"),
		ui.C(ui.Current().Success, ui.Current().SymDone), done,
		ui.C(ui.Current().Pending, ui.Current().SymPending), pending,
		ui.C(ui.Current().Accent, "Total"), a.list.Len(),
	)

	lines := []string{header, ui.C(ui.Current().Muted, ui.ProgressBar(done, done+pending, 28)), ""}
	if group {
		lines = append(lines, groupLines(a.list, f)...)
	} else {
		lines = append(lines, flatLines(a.list, f)...)
	}
	lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: `doit` with no arguments opens the interactive list"))
	ui.Panel(lines)
	return nil
}

func runToggle(flags *rootFlags, userIndex int) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	it, err := a.itemAt(userIndex)
	if err != nil {
		return err
	}
	a.list.Toggle(it)
	ui.OK("toggled")
	return nil
}

func runEdit(flags *rootFlags, userIndex int, title string) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	it, err := a.itemAt(userIndex)
	if err != nil {
		return err
	}
	// An empty replacement title means the task goes away, same as
	// confirming an empty edit in the TUI.
	if title = strings.TrimSpace(title); title == "" {
		a.list.Destroy(it)
		ui.OK("removed")
		return nil
	}
	a.list.Rename(it, title)
	ui.OK("renamed")
	return nil
}

func runRm(flags *rootFlags, userIndex int) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	it, err := a.itemAt(userIndex)
	if err != nil {
		return err
	}
	a.list.Destroy(it)
	ui.OK("removed")
	return nil
}

func runClear(flags *rootFlags) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	n := len(a.list.Completed())
	a.list.ClearCompleted()
	ui.OK(fmt.Sprintf("cleared %d", n))
	return nil
}

func runAll(flags *rootFlags, completed bool) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	a.list.ToggleAll(completed)
	if completed {
		ui.OK("all done")
	} else {
		ui.OK("all pending")
	}
	return nil
}

// -------------- rendering helpers --------------

func flatLines(l *task.List, f task.Filter) []string {
	t := ui.Current()
	var out []string
	i := 0
	l.Each(func(it *task.Item) {
		i++
		if !f.Visible(it) {
			return
		}
		idx := fmt.Sprintf("%2d.", i)
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		title := it.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C("\033[2m", idx), ui.C(color, box), title))
	})
	if len(out) == 0 {
		return []string{ui.C(t.Muted, "no tasks")}
	}
	return out
}

func groupLines(l *task.List, f task.Filter) []string {
	t := ui.Current()
	section := func(label string, g task.Filter) []string {
		lines := []string{ui.C(t.Accent, label)}
		body := flatLines(l, g)
		lines = append(lines, body...)
		return lines
	}
	var lines []string
	if f != task.FilterCompleted {
		lines = append(lines, section("Pending", task.FilterActive)...)
	}
	if f != task.FilterActive {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section("Done", task.FilterCompleted)...)
	}
	return lines
}
