package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("driver = %q", cfg.StoreDriver)
	}
	if cfg.StoreKeyPrefix != "quickcut-" {
		t.Errorf("prefix = %q", cfg.StoreKeyPrefix)
	}
	if cfg.SessionTimeout != 30*time.Minute {
		t.Errorf("session timeout = %v", cfg.SessionTimeout)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("addr = %q", cfg.Addr())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("SESSION_TIMEOUT", "45m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_SAMPLE_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreDriver != "sqlite" {
		t.Errorf("driver = %q", cfg.StoreDriver)
	}
	if cfg.SessionTimeout != 45*time.Minute {
		t.Errorf("session timeout = %v", cfg.SessionTimeout)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("redis db = %d", cfg.RedisDB)
	}
	if !cfg.SeedSampleData {
		t.Errorf("expected seed flag")
	}
}
