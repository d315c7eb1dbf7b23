package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Views != 12 {
		t.Errorf("expected 12 views, got %d", cfg.Render.Views)
	}
	if cfg.Render.Size != 768 {
		t.Errorf("expected size 768, got %d", cfg.Render.Size)
	}
	if cfg.Render.Supersample != 2 {
		t.Errorf("expected supersample 2, got %d", cfg.Render.Supersample)
	}
	if cfg.Render.OutDir != "renders" {
		t.Errorf("expected out dir 'renders', got %s", cfg.Render.OutDir)
	}
	if !cfg.Render.Annotate {
		t.Error("expected annotate to be true by default")
	}
	if cfg.Render.Background != "ffffff" {
		t.Errorf("expected white background, got %s", cfg.Render.Background)
	}
	if cfg.Render.MaxTriangles != 0 {
		t.Errorf("expected decimation disabled, got %d", cfg.Render.MaxTriangles)
	}

	if cfg.Watch.Enabled {
		t.Error("expected watch to be disabled by default")
	}
	if cfg.Watch.MaxRetries != 5 {
		t.Errorf("expected 5 watch retries, got %d", cfg.Watch.MaxRetries)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  views: 8
  size: 512
  supersample: 1
  out_dir: "out"
  annotate: false
  background: "000000"
  object_color: "468966"
  max_triangles: 100000

watch:
  enabled: true
  max_retries: 3

logging:
  level: "debug"
  log_file: "render.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Views != 8 {
		t.Errorf("expected 8 views, got %d", cfg.Render.Views)
	}
	if cfg.Render.Size != 512 {
		t.Errorf("expected size 512, got %d", cfg.Render.Size)
	}
	if cfg.Render.Annotate {
		t.Error("expected annotate to be false")
	}
	if cfg.Render.Background != "000000" {
		t.Errorf("expected background 000000, got %s", cfg.Render.Background)
	}
	if cfg.Render.MaxTriangles != 100000 {
		t.Errorf("expected max_triangles 100000, got %d", cfg.Render.MaxTriangles)
	}

	if !cfg.Watch.Enabled {
		t.Error("expected watch to be enabled")
	}
	if cfg.Watch.MaxRetries != 3 {
		t.Errorf("expected 3 watch retries, got %d", cfg.Watch.MaxRetries)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "render.log" {
		t.Errorf("expected log file 'render.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// A file that sets only one section keeps defaults for the rest.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("render:\n  views: 4\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Views != 4 {
		t.Errorf("expected 4 views, got %d", cfg.Render.Views)
	}
	if cfg.Render.Size != 768 {
		t.Errorf("expected default size 768, got %d", cfg.Render.Size)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
  views: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Views = 6
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Render.Views != 6 {
		t.Errorf("round-tripped views = %d, want 6", loaded.Render.Views)
	}
}
