package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("STORAGE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.Storage != "memory" {
		t.Errorf("expected default storage memory, got %s", cfg.Storage)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORAGE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://localhost/simrs")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("STORAGE")
		os.Unsetenv("DATABASE_URL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := &Config{Storage: "postgres"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for postgres storage without DATABASE_URL")
	}
}

func TestValidate_UnknownStorage(t *testing.T) {
	cfg := &Config{Storage: "sqlite"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown storage backend")
	}
}

func TestValidate_ProductionSessionSecret(t *testing.T) {
	cfg := &Config{Env: "production", Storage: "memory", SessionSecret: defaultSessionSecret}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default session secret in production")
	}

	cfg.SessionSecret = "something-else"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
