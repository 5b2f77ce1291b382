package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZero(t *testing.T) {
	t.Setenv("DOIT_DATA_DIR", t.TempDir())
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != (Config{}) {
		t.Errorf("Load = %+v, want zero config", c)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOIT_DATA_DIR", dir)
	body := "theme: neon\nstore: json\ndefault_filter: active\nnamespace: work\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Theme: "neon", Store: "json", DefaultFilter: "active", Namespace: "work"}
	if c != want {
		t.Errorf("Load = %+v, want %+v", c, want)
	}
}

func TestLoad_BadYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOIT_DATA_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load on bad yaml: want error, got nil")
	}
}
