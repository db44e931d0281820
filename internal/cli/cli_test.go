package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"provision":  false,
		"resolve":    false,
		"graph":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galleon.toml")
	content := "mode = \"fat\"\ntemplates = \"modules\"\nversions = \"v.properties\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := &provisionOpts{
		configPath:     path,
		mode:           "thin",
		requireChannel: true,
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Mode != "thin" {
		t.Errorf("Mode = %q, want flag override thin", cfg.Mode)
	}
	if cfg.Templates != "modules" {
		t.Errorf("Templates = %q, want config value", cfg.Templates)
	}
	if !cfg.RequireChannel {
		t.Error("RequireChannel not overridden")
	}
}

func TestLoadConfigInvalidAfterOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galleon.toml")
	if err := os.WriteFile(path, []byte("templates = \"modules\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := loadConfig(&provisionOpts{configPath: path, mode: "fat"})
	if err == nil {
		t.Fatal("loadConfig succeeded, want missing versions error")
	}
}
