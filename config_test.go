package vaod

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StarRoot != DefaultStarRoot {
		t.Errorf("star root = %q", cfg.StarRoot)
	}
	if cfg.NODDBucket != DefaultNODDBucket {
		t.Errorf("bucket = %q", cfg.NODDBucket)
	}
	if cfg.Plot.AODMax != 1 || cfg.Plot.DPI != 300 || cfg.Plot.Format != "png" {
		t.Errorf("plot defaults = %+v", cfg.Plot)
	}
}

// A settings file overrides only the fields it names.
func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "nodd_bucket: my-mirror\nplot:\n  dpi: 600\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NODDBucket != "my-mirror" {
		t.Errorf("bucket = %q, want my-mirror", cfg.NODDBucket)
	}
	if cfg.Plot.DPI != 600 {
		t.Errorf("dpi = %d, want 600", cfg.Plot.DPI)
	}
	if cfg.StarRoot != DefaultStarRoot {
		t.Error("unnamed star_root must keep its default")
	}
	if cfg.Plot.Format != "png" {
		t.Error("unnamed plot format must keep its default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing settings file")
	}
}

// Plot seeds outside the prompt ranges are rejected at load time, so a
// blank prompt answer can never accept an invalid value.
func TestLoadConfigRejectsBadPlotDefaults(t *testing.T) {
	bodies := []string{
		"plot:\n  dpi: 50\n",
		"plot:\n  aod_max: 9\n",
		"plot:\n  format: gif\n",
	}
	for _, body := range bodies {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for %q", body)
		}
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
