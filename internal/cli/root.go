// Package cli wires the cobra command tree: the quick subcommands and
// the interactive TUI, all over the same list and store.
package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/tui"
	"github.com/idilsaglam/doit/internal/ui"
)

type rootFlags struct {
	store   string
	theme   string
	noColor bool
}

// NewRootCmd builds the command tree. Running the root with no
// subcommand starts the interactive mode.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	var filter string

	root := &cobra.Command{
		Use:           "doit",
		Short:         "A tiny task list",
		Long:          "doit keeps a local task list: add, toggle, edit, filter and clear tasks from the command line or an interactive TUI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(&flags, filter)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.store, "store", "", "Store backend: bolt or json")
	pf.StringVar(&flags.theme, "theme", "", "Theme: classic, neon or mono")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	var lsFilter string
	var lsGroup bool
	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(&flags, task.ParseFilter(lsFilter), lsGroup)
		},
	}
	lsCmd.Flags().StringVar(&lsFilter, "filter", "", "Show all, active or completed tasks")
	lsCmd.Flags().BoolVar(&lsGroup, "group", false, "Group output by pending/done")

	addCmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new task (title can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(&flags, strings.Join(args, " "))
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for the task at a 1-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return runToggle(&flags, n)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <index> <title...>",
		Short: "Replace a task's title; an empty title deletes the task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return runEdit(&flags, n, strings.Join(args[1:], " "))
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the task at a 1-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return runRm(&flags, n)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(&flags)
		},
	}

	var allUndone bool
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Mark every task done (or undone with --undone)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(&flags, !allUndone)
		},
	}
	allCmd.Flags().BoolVar(&allUndone, "undone", false, "Mark every task not done instead")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(&flags, filter)
		},
	}
	tuiCmd.Flags().StringVar(&filter, "filter", "", "Initial filter: all, active or completed")

	root.AddCommand(lsCmd, addCmd, doneCmd, editCmd, rmCmd, clearCmd, allCmd, tuiCmd)
	return root
}

// Run executes the command tree and returns the process exit code
// (0 ok, 1 error, 2 usage).
func Run() int {
	if err := NewRootCmd().Execute(); err != nil {
		ui.Fail(err.Error())
		var ee *exitErr
		if errors.As(err, &ee) {
			return ee.code
		}
		return 1
	}
	return 0
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageError("not a number: %s", s)
	}
	return n, nil
}

func runTUI(flags *rootFlags, filter string) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()
	f := task.ParseFilter(filter)
	if filter == "" {
		f = task.ParseFilter(a.cfg.DefaultFilter)
	}
	return tui.Run(a.list, f)
}
