package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
[scan]
scoring = "kraken"
minscore = 35.5
extension = ".krk"
jobs = 4
`)
	settings, found, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !found {
		t.Fatal("LoadSettings() found = false for an existing file")
	}
	if settings.Scan.Scoring != "kraken" {
		t.Errorf("Scoring = %q, want %q", settings.Scan.Scoring, "kraken")
	}
	if settings.Scan.MinScore == nil || *settings.Scan.MinScore != 35.5 {
		t.Errorf("MinScore = %v, want 35.5", settings.Scan.MinScore)
	}
	if settings.Scan.Extension != ".krk" {
		t.Errorf("Extension = %q, want %q", settings.Scan.Extension, ".krk")
	}
	if settings.Scan.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", settings.Scan.Jobs)
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "[scan]\nscoring = \"length\"\n")
	settings, _, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.Scan.Scoring != "length" {
		t.Errorf("Scoring = %q, want %q", settings.Scan.Scoring, "length")
	}
	if settings.Scan.Extension != DefaultSettings().Scan.Extension {
		t.Errorf("Extension = %q, want default %q", settings.Scan.Extension, DefaultSettings().Scan.Extension)
	}
	if settings.Scan.MinScore != nil {
		t.Errorf("MinScore = %v, want nil", settings.Scan.MinScore)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, found, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFile))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if found {
		t.Error("LoadSettings() found = true for a missing file")
	}
	if settings.Scan.Scoring != DefaultSettings().Scan.Scoring {
		t.Errorf("Scoring = %q, want default", settings.Scan.Scoring)
	}
}

func TestLoadSettings_UnknownKey(t *testing.T) {
	path := writeSettings(t, "[scan]\nscorring = \"shel\"\n")
	if _, _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() accepted an unknown key")
	}
}

func TestLoadSettings_BadTOML(t *testing.T) {
	path := writeSettings(t, "[scan\n")
	if _, _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() accepted malformed TOML")
	}
}
