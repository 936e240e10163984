package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"JIM_CARRIER_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JIM_CARRIER_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	if err := LoadDotEnv(missing, ""); err != nil {
		t.Fatalf("expected missing dotenv to be skipped, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JIM_CARRIER_TEST_DOTENV_A=from-file\nJIM_CARRIER_TEST_DOTENV_B=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("JIM_CARRIER_TEST_DOTENV_A", "from-env")
	// Registered so t.Setenv restores the variable once the test ends.
	t.Setenv("JIM_CARRIER_TEST_DOTENV_B", "")
	if err := os.Unsetenv("JIM_CARRIER_TEST_DOTENV_B"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("JIM_CARRIER_TEST_DOTENV_A"); got != "from-env" {
		t.Fatalf("JIM_CARRIER_TEST_DOTENV_A = %q, want from-env", got)
	}
	if got := os.Getenv("JIM_CARRIER_TEST_DOTENV_B"); got != "from-file" {
		t.Fatalf("JIM_CARRIER_TEST_DOTENV_B = %q, want from-file", got)
	}
}
