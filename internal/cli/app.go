package cli

import (
	"fmt"
	"path/filepath"

	"github.com/idilsaglam/doit/internal/config"
	"github.com/idilsaglam/doit/internal/store"
	"github.com/idilsaglam/doit/internal/store/boltstore"
	"github.com/idilsaglam/doit/internal/store/jsonstore"
	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/ui"
)

// app bundles the opened store and the fetched list for one command
// invocation. Close it when the command is done.
type app struct {
	cfg  config.Config
	list *task.List
	st   store.Store
}

// openApp resolves config and flags, applies the theme, opens the
// selected store backend and fetches the list.
func openApp(flags *rootFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	theme := flags.theme
	if theme == "" {
		theme = cfg.Theme
	}
	ui.SetTheme(theme)
	ui.SetColorForcing(false, flags.noColor)

	dir, err := store.EnsureDataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	backend := flags.store
	if backend == "" {
		backend = cfg.Store
	}
	var st store.Store
	switch backend {
	case "", "bolt":
		st, err = boltstore.Open(filepath.Join(dir, boltstore.DefaultFileName), cfg.Namespace)
		if err != nil {
			return nil, err
		}
	case "json":
		st = jsonstore.Open(filepath.Join(dir, jsonstore.DefaultFileName))
	default:
		return nil, usageError("unknown store backend: %s", backend)
	}

	l := task.NewList(st)
	if err := l.Fetch(); err != nil {
		st.Close()
		return nil, err
	}
	return &app{cfg: cfg, list: l, st: st}, nil
}

func (a *app) Close() error { return a.st.Close() }

// itemAt resolves a 1-based index as printed by `doit ls`.
func (a *app) itemAt(userIndex int) (*task.Item, error) {
	it := a.list.At(userIndex - 1)
	if it == nil {
		return nil, usageError("index out of range: have %d, got %d", a.list.Len(), userIndex)
	}
	return it, nil
}

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func usageError(format string, args ...any) error {
	return &exitErr{code: 2, msg: fmt.Sprintf(format, args...)}
}
