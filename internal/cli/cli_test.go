package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/idilsaglam/doit/internal/store"
	"github.com/idilsaglam/doit/internal/store/boltstore"
	"github.com/idilsaglam/doit/internal/store/storetest"
	"github.com/idilsaglam/doit/internal/task"
	"github.com/idilsaglam/doit/internal/ui"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func fetchRecords(t *testing.T, dir string) []store.Record {
	t.Helper()
	s, err := boltstore.Open(filepath.Join(dir, boltstore.DefaultFileName), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	recs, err := s.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	return recs
}

func TestAddDoneRm_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOIT_DATA_DIR", dir)

	if err := execute(t, "add", "Buy", "milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := execute(t, "add", "Ship", "it"); err != nil {
		t.Fatalf("add: %v", err)
	}

	recs := fetchRecords(t, dir)
	if len(recs) != 2 {
		t.Fatalf("store has %d records, want 2", len(recs))
	}

	if err := execute(t, "done", "1"); err != nil {
		t.Fatalf("done: %v", err)
	}
	recs = fetchRecords(t, dir)
	var completed int
	for _, r := range recs {
		if r.Completed {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("completed records = %d, want 1", completed)
	}

	if err := execute(t, "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	recs = fetchRecords(t, dir)
	if len(recs) != 1 || recs[0].Title != "Ship it" {
		t.Errorf("after clear: %+v, want only %q", recs, "Ship it")
	}

	if err := execute(t, "rm", "1"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if recs = fetchRecords(t, dir); len(recs) != 0 {
		t.Errorf("after rm: %+v, want empty store", recs)
	}
}

func TestAll_MarksEverythingDone(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOIT_DATA_DIR", dir)

	for _, title := range []string{"a", "b"} {
		if err := execute(t, "add", title); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := execute(t, "all"); err != nil {
		t.Fatalf("all: %v", err)
	}
	for _, r := range fetchRecords(t, dir) {
		if !r.Completed {
			t.Errorf("record %s not completed after `all`", r.ID)
		}
	}
}

func TestJSONStoreBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOIT_DATA_DIR", dir)

	if err := execute(t, "--store", "json", "add", "portable"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := execute(t, "--store", "json", "done", "1"); err != nil {
		t.Fatalf("done: %v", err)
	}
}

func TestConfiguredDataDir_MovesTheStore(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DOIT_DATA_DIR", "")

	cfgDir := filepath.Join(home, ".doit")
	if err := os.MkdirAll(cfgDir, 0o700); err != nil {
		t.Fatal(err)
	}
	body := "data_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "add", "elsewhere"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dataDir, boltstore.DefaultFileName)); err != nil {
		t.Errorf("store not created under configured data_dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfgDir, boltstore.DefaultFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("store unexpectedly created under the default dir: err = %v", err)
	}

	recs := fetchRecords(t, dataDir)
	if len(recs) != 1 || recs[0].Title != "elsewhere" {
		t.Errorf("configured dir holds %+v, want the added task", recs)
	}
}

func TestIndexOutOfRange_IsUsageError(t *testing.T) {
	t.Setenv("DOIT_DATA_DIR", t.TempDir())

	err := execute(t, "done", "7")
	var ee *exitErr
	if !errors.As(err, &ee) || ee.code != 2 {
		t.Errorf("out-of-range index: err = %v, want usage error with code 2", err)
	}

	err = execute(t, "rm", "seven")
	if !errors.As(err, &ee) || ee.code != 2 {
		t.Errorf("non-numeric index: err = %v, want usage error with code 2", err)
	}
}

func TestFlatLines_RespectsFilter(t *testing.T) {
	ui.SetTheme("mono")
	ui.SetColorForcing(false, true)

	l := task.NewList(storetest.NewMem())
	a, err := l.Create("done task", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := l.Create("pending task", false); err != nil {
		t.Fatalf("Create: %v", err)
	}
	l.SetCompleted(a, true)

	lines := flatLines(l, task.FilterActive)
	if len(lines) != 1 {
		t.Fatalf("active filter: %d lines, want 1: %v", len(lines), lines)
	}
	lines = flatLines(l, task.FilterCompleted)
	if len(lines) != 1 {
		t.Fatalf("completed filter: %d lines, want 1: %v", len(lines), lines)
	}
	lines = flatLines(l, task.FilterAll)
	if len(lines) != 2 {
		t.Fatalf("no filter: %d lines, want 2: %v", len(lines), lines)
	}
}

func TestFlatLines_TruncatesOnRuneBoundary(t *testing.T) {
	ui.SetTheme("mono")
	ui.SetColorForcing(false, true)

	l := task.NewList(storetest.NewMem())
	long := strings.Repeat("☃", 100)
	if _, err := l.Create(long, false); err != nil {
		t.Fatalf("Create: %v", err)
	}

	lines := flatLines(l, task.FilterAll)
	if len(lines) != 1 {
		t.Fatalf("%d lines, want 1", len(lines))
	}
	if !utf8.ValidString(lines[0]) {
		t.Errorf("truncated line is not valid UTF-8: %q", lines[0])
	}
	if !strings.Contains(lines[0], strings.Repeat("☃", 77)+"...") {
		t.Errorf("line %q, want 77 runes plus ellipsis", lines[0])
	}
	if strings.Contains(lines[0], long) {
		t.Error("long title was not truncated")
	}
}
