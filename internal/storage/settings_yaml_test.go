package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoadSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.yaml")

	saved := preferences.Settings{
		AllowDuration:    7 * time.Second,
		ProhibitDuration: 4 * time.Second,
		AutoCycle:        false,
		StopOnError:      true,
		KeepHistory:      false,
	}
	if err := saveSettingsFile(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestLoadSettingsIgnoresOutOfRangeDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "allow_seconds: 0\nprohibit_seconds: -3\nauto_cycle: true\nkeep_history: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	settings, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.AllowDuration != defaults.AllowDuration {
		t.Errorf("zero allow_seconds should keep default, got %v", settings.AllowDuration)
	}
	if settings.ProhibitDuration != defaults.ProhibitDuration {
		t.Errorf("negative prohibit_seconds should keep default, got %v", settings.ProhibitDuration)
	}
}

func TestLoadSettingsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	settings, err := loadSettingsFile(path)
	if err == nil {
		t.Error("expected a parse error for malformed yaml")
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("parse failure should fall back to defaults, got %+v", settings)
	}
}
