package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_DIR", dir)

	cfg, err := LoadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Glyphs != "unicode" || cfg.Expand != "path" || cfg.RecentLimit != 10 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.LogDir != filepath.Join(dir, "logs") {
		t.Fatalf("expected log dir under config dir; got %s", cfg.LogDir)
	}
	if filepath.Base(cfg.ListsDir) != "_todo_lists" || !filepath.IsAbs(cfg.ListsDir) {
		t.Fatalf("expected ~ expanded in lists dir; got %s", cfg.ListsDir)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_DIR", dir)
	lists := filepath.Join(dir, "lists")
	body := "lists_dir = \"" + filepath.ToSlash(lists) + "\"\nexpand = \"all\"\nrecent_limit = 3\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TODO_GLYPHS", "ascii")

	cfg, err := LoadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ListsDir != filepath.FromSlash(filepath.ToSlash(lists)) || cfg.Expand != "all" || cfg.RecentLimit != 3 {
		t.Fatalf("file values not applied: %#v", cfg)
	}
	if cfg.Glyphs != "ascii" {
		t.Fatalf("expected env override for glyphs; got %q", cfg.Glyphs)
	}

	if err := cfg.EnsureListsDir(); err != nil {
		t.Fatalf("EnsureListsDir: %v", err)
	}
	if st, err := os.Stat(lists); err != nil || !st.IsDir() {
		t.Fatalf("expected lists dir created; got %v", err)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_DIR", dir)
	t.Setenv("TODO_EXPAND", "sideways")

	if _, err := LoadConfig(viper.New(), ""); err == nil {
		t.Fatalf("expected error for invalid expand")
	}
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	t.Setenv("TODO_CONFIG_DIR", t.TempDir())

	if _, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}
