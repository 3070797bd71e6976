package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8330" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8330")
	}
	if cfg.VerifyWorkers != 4 {
		t.Errorf("VerifyWorkers = %d, want 4", cfg.VerifyWorkers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BLASEFEED_ADDR", "127.0.0.1:9000")
	t.Setenv("BLASEFEED_LOG_LEVEL", "debug")
	t.Setenv("BLASEFEED_VERIFY_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9000")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.VerifyWorkers != 2 {
		t.Errorf("VerifyWorkers = %d, want 2", cfg.VerifyWorkers)
	}
}

func TestLoad_RejectsZeroWorkers(t *testing.T) {
	t.Setenv("BLASEFEED_VERIFY_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want rejection of zero workers")
	}
}
