package config

import (
	"os"
	"path/filepath"
	"testing"

	"tco-calculator/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Calculator.DefaultTimeframe != 5 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tco.json")

	cfg := Default()
	cfg.Output.DefaultFormat = "markdown"
	cfg.Calculator.DefaultTimeframe = 3
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output.DefaultFormat != "markdown" || loaded.Calculator.DefaultTimeframe != 3 {
		t.Errorf("unexpected loaded config %+v", loaded)
	}
	if loaded.Logging.Level != "info" {
		t.Errorf("expected logging defaults to survive, got %+v", loaded.Logging)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tco.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TCO_ADDR":          "127.0.0.1:9090",
		"TCO_OUTPUT_FORMAT": "json",
		"TCO_NO_COLOR":      "true",
		"TCO_TIMEFRAME":     "7",
		"TCO_LOG_LEVEL":     "debug",
		"TCO_METRICS":       "false",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Output.DefaultFormat != "json" || !cfg.Output.NoColor {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Calculator.DefaultTimeframe != 7 {
		t.Errorf("unexpected timeframe %d", cfg.Calculator.DefaultTimeframe)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level %q", cfg.Logging.Level)
	}
	if cfg.Server.MetricsEnabled {
		t.Error("expected metrics to be disabled")
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"TCO_TIMEFRAME":   "five",
		"TCO_NO_COLOR":    "maybe",
		"TCO_SERVER_MODE": "turbo",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return value, true
				}
				return "", false
			}
			if err := Default().ApplyEnv(lookup); !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Calculator.DefaultTimeframe = 11
	if err := cfg.Validate(); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected out of range timeframe to fail, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TCO_TEST_DOTENV_ADDR=:7070\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("TCO_TEST_DOTENV_ADDR") })

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("TCO_TEST_DOTENV_ADDR"); got != ":7070" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
