package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "demo"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Preview.Host != DefaultHost || cfg.Preview.Port != DefaultPort {
		t.Errorf("preview = %+v", cfg.Preview)
	}
	if cfg.RecordDir != DefaultRecordDir {
		t.Errorf("recordDir = %q", cfg.RecordDir)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)
	if _, err := Load(dir); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadBadPort(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"preview": {"port": 99999}}`)
	if _, err := Load(dir); !errors.Is(err, ErrInvalidPort) {
		t.Errorf("err = %v, want ErrInvalidPort", err)
	}
}

func TestPreviewAddress(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"preview": {"host": "0.0.0.0", "port": 8080}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.PreviewAddress(); got != "0.0.0.0:8080" {
		t.Errorf("address = %q", got)
	}
	if got := cfg.PreviewURL(); got != "http://0.0.0.0:8080" {
		t.Errorf("url = %q", got)
	}
}

func TestPackPathsResolveAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"packs": ["packs/house.yaml"]}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(dir, "packs", "house.yaml")
	paths := cfg.PackPaths()
	if len(paths) != 1 || paths[0] != want {
		t.Errorf("paths = %v, want [%s]", paths, want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "saved"
	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "saved" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestFindProjectRootMissing(t *testing.T) {
	if _, err := FindProjectRoot(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
