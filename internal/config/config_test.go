package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "regenmon.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Locale != "es" {
		t.Errorf("expected default locale es, got %q", cfg.Locale)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REGENMON_DB", "/tmp/pets.db")
	t.Setenv("REGENMON_LOCALE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/pets.db" || cfg.Locale != "en" {
		t.Errorf("env values not picked up: %+v", cfg)
	}
}

func TestLoadTuningDefaultsOnly(t *testing.T) {
	tuning, err := LoadTuning("")
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if tuning.FeedCost != 10 || tuning.DailyEarningsCap != 50 {
		t.Errorf("expected shipped defaults, got %+v", tuning)
	}
}

func TestLoadTuningOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	overlay := "feed_cost: 25\nrescue_reward: 100\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if tuning.FeedCost != 25 || tuning.RescueReward != 100 {
		t.Errorf("overlay not applied: %+v", tuning)
	}
	// Untouched knobs keep their defaults.
	if tuning.DailyEarningsCap != 50 || tuning.EarnProbPoor != 0.8 {
		t.Errorf("defaults lost under overlay: %+v", tuning)
	}
}

func TestLoadTuningRejectsBadOverlay(t *testing.T) {
	// An inverted earn range would hand RandIntn a non-positive span.
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	overlay := "earn_min: 9\nearn_max: 3\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	if _, err := LoadTuning(path); err == nil {
		t.Error("inverted earn range must be rejected")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning("/nonexistent/tuning.yaml"); err == nil {
		t.Error("missing tuning file must error")
	}
}
