package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "config.yml", "name: fooconf\nenv_var: FOOCONF\nsystem_path: /opt/etc/fooconf\nno_color: true\nexclude:\n  - '**/tmp/**'\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.GetName() != "fooconf" {
		t.Fatalf("expected name=fooconf, got %q", cfg.GetName())
	}
	if cfg.GetEnvVar() != "FOOCONF" {
		t.Fatalf("expected env_var=FOOCONF, got %q", cfg.GetEnvVar())
	}
	if cfg.GetSystemPath() != "/opt/etc/fooconf" {
		t.Fatalf("expected system_path, got %q", cfg.GetSystemPath())
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("expected no_color=true")
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "**/tmp/**" {
		t.Fatalf("unexpected exclude: %#v", cfg.Exclude)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "config.yml", "name: [unclosed\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetters_Unset(t *testing.T) {
	var cfg FileConfig
	if cfg.GetName() != "" || cfg.GetEnvVar() != "" || cfg.GetSystemPath() != "" {
		t.Fatalf("expected empty getters for zero config")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "ackrc")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, cfgDir, "config.yml", "format: json\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Format == nil || *cfg.Format != "json" {
		t.Fatalf("expected format=json from global config, got %#v", cfg.Format)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := LoadGlobal(); err != ErrNoGlobalConfig {
		t.Fatalf("expected ErrNoGlobalConfig, got %v", err)
	}
}

func TestSave_RoundTripAndNoOverwrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yml")
	name := "ackrc"
	if err := Save(p, FileConfig{Name: &name}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.GetName() != "ackrc" {
		t.Fatalf("expected saved name, got %q", cfg.GetName())
	}
	if err := Save(p, FileConfig{}); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
}
