package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/gantt/internal/config"
	"github.com/amonks/gantt/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "gantt")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, config.ProjectFile), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.TimelineWidth() != config.DefaultTimelineWidth {
		t.Errorf("TimelineWidth() = %d, expected default %d", cfg.TimelineWidth(), config.DefaultTimelineWidth)
	}
	if !cfg.ShowCritical() {
		t.Error("expected ShowCritical to default to true")
	}
	if cfg.ServeAddr() != config.DefaultServeAddr {
		t.Errorf("ServeAddr() = %q, expected %q", cfg.ServeAddr(), config.DefaultServeAddr)
	}
	if cfg.Store.Dir != "" {
		t.Errorf("expected empty store dir, got %q", cfg.Store.Dir)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
[timeline]
width = 80
show-critical = false

[serve]
addr = " :9000 "

[store]
dir = "plans"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.TimelineWidth() != 80 {
		t.Errorf("TimelineWidth() = %d, expected 80", cfg.TimelineWidth())
	}
	if cfg.ShowCritical() {
		t.Error("expected ShowCritical false")
	}
	if cfg.ServeAddr() != ":9000" {
		t.Errorf("ServeAddr() = %q, expected %q", cfg.ServeAddr(), ":9000")
	}
	if cfg.Store.Dir != filepath.Join(tmpDir, "plans") {
		t.Errorf("Store.Dir = %q, expected %q", cfg.Store.Dir, filepath.Join(tmpDir, "plans"))
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `this is not valid toml [`)

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[timeline]
width = 100
show-critical = false

[serve]
addr = "0.0.0.0:7000"

[store]
dir = "/srv/plans"
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.TimelineWidth() != 100 {
		t.Errorf("TimelineWidth() = %d, expected 100", cfg.TimelineWidth())
	}
	if cfg.ShowCritical() {
		t.Error("expected global show-critical = false to apply")
	}
	if cfg.ServeAddr() != "0.0.0.0:7000" {
		t.Errorf("ServeAddr() = %q, expected %q", cfg.ServeAddr(), "0.0.0.0:7000")
	}
	if cfg.Store.Dir != "/srv/plans" {
		t.Errorf("Store.Dir = %q, expected %q", cfg.Store.Dir, "/srv/plans")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[timeline]
width = 100
show-critical = false

[serve]
addr = "global:1"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[timeline]
show-critical = true

[serve]
addr = "project:2"
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.TimelineWidth() != 100 {
		t.Errorf("TimelineWidth() = %d, expected global 100", cfg.TimelineWidth())
	}
	if !cfg.ShowCritical() {
		t.Error("expected project show-critical to override global")
	}
	if cfg.ServeAddr() != "project:2" {
		t.Errorf("ServeAddr() = %q, expected %q", cfg.ServeAddr(), "project:2")
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[timeline]
width = 100

[serve]
addr = "global:1"

[store]
dir = "/srv/plans"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[timeline]
width = 0

[serve]
addr = ""

[store]
dir = ""
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Timeline.Width != 0 {
		t.Errorf("Timeline.Width = %d, expected 0", cfg.Timeline.Width)
	}
	if cfg.Serve.Addr != "" {
		t.Errorf("Serve.Addr = %q, expected empty string", cfg.Serve.Addr)
	}
	if cfg.Store.Dir != "" {
		t.Errorf("Store.Dir = %q, expected empty string", cfg.Store.Dir)
	}
}
