package config_test

import (
	"os"
	"testing"

	"github.com/protrack-dev/protrack/backend/internal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/protrack")
	t.Setenv("INITIAL_ADMIN_PASSWORD", "ChangeMe1234")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.InitialAdmin.Username != "admin" {
		t.Fatalf("InitialAdmin.Username = %q, want admin", cfg.InitialAdmin.Username)
	}
	if cfg.JWT.Expiration != 86400 {
		t.Fatalf("JWT.Expiration = %d, want 86400", cfg.JWT.Expiration)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/protrack")
	t.Setenv("INITIAL_ADMIN_PASSWORD", "x")
	t.Setenv("JWT_SECRET", "x")
	os.Unsetenv("DATABASE_DSN")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatal("expected error for missing DATABASE_DSN")
	}
}
