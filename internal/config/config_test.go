package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("port: \"9090\"\ndatabase_url: postgres://file\njwt_secret: filesecret\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("env must override file: got port %q, want 7070", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://file" {
		t.Errorf("got database_url %q, want file value", cfg.DatabaseURL)
	}
	if cfg.Timezone != "Asia/Seoul" {
		t.Errorf("got timezone %q, want default Asia/Seoul", cfg.Timezone)
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", "envsecret")
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DatabaseURL != "postgres://env" {
		t.Errorf("got database_url %q, want env value", cfg.DatabaseURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("got port %q, want default 8080", cfg.Port)
	}
}

func TestLoad_UndoTTLEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", "envsecret")
	t.Setenv("UNDO_TTL_MINUTES", "45")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.UndoTTLMinutes != 45 {
		t.Errorf("got undo ttl %d, want 45", cfg.UndoTTLMinutes)
	}

	t.Setenv("UNDO_TTL_MINUTES", "not-a-number")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.UndoTTLMinutes != 30 {
		t.Errorf("bad value must keep default: got %d, want 30", cfg.UndoTTLMinutes)
	}
}

func TestLoad_RequiredFields(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Fatal("want error for missing database_url")
	}

	t.Setenv("DATABASE_URL", "postgres://env")
	if _, err := Load(""); err == nil {
		t.Fatal("want error for missing jwt_secret")
	}
}
