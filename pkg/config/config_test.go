package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, expected empty", cfg.Source)
	}
	if cfg.Sheet != "CRONOGRAMA" {
		t.Errorf("Sheet = %q, expected CRONOGRAMA", cfg.Sheet)
	}
	if cfg.IgnorePast {
		t.Error("IgnorePast = true, expected false")
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, expected :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected info", cfg.LogLevel)
	}
}

func TestLoadValidFilePopulatesAllFields(t *testing.T) {
	// Given
	content := `source: https://raw.githubusercontent.com/org/repo/main/cronograma.xlsx
sheet: PLANO
ignore_past: true
addr: ":9090"
log_level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "https://raw.githubusercontent.com/org/repo/main/cronograma.xlsx" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Sheet != "PLANO" {
		t.Errorf("Sheet = %q, expected PLANO", cfg.Sheet)
	}
	if !cfg.IgnorePast {
		t.Error("IgnorePast = false, expected true")
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, expected :9090", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", cfg.LogLevel)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sheet: SETOR A\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet != "SETOR A" {
		t.Errorf("Sheet = %q, expected SETOR A", cfg.Sheet)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, expected the default", cfg.Addr)
	}
}

func TestLoadInvalidFileReturnsError(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sheet: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// When
	_, err := Load(path)

	// Then
	if err == nil {
		t.Fatal("expected an error for invalid yaml")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	// When
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// Then
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	// Given
	t.Setenv("INVENTARIO_SHEET", "TURNO NOITE")
	t.Setenv("INVENTARIO_IGNORE_PAST", "true")
	t.Setenv("INVENTARIO_ADDR", ":7070")

	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet != "TURNO NOITE" {
		t.Errorf("Sheet = %q, expected the environment value", cfg.Sheet)
	}
	if !cfg.IgnorePast {
		t.Error("IgnorePast = false, expected the environment value")
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, expected :7070", cfg.Addr)
	}
}
