// Package project loads per-project taxscore settings.
package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"taxscore/internal/discover"
)

// SettingsFile is the conventional settings file name, looked up in the
// working directory.
const SettingsFile = "taxscore.toml"

// ScanSettings mirrors the [scan] section of taxscore.toml. Every field
// is optional; CLI flags override whatever is set here.
type ScanSettings struct {
	Scoring   string   `toml:"scoring"`
	MinScore  *float64 `toml:"minscore"`
	Extension string   `toml:"extension"`
	Jobs      int      `toml:"jobs"`
}

// Settings is the full settings file.
type Settings struct {
	Scan ScanSettings `toml:"scan"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Scan: ScanSettings{
			Scoring:   "shel",
			Extension: discover.DefaultExtension,
		},
	}
}

// LoadSettings parses a settings file. A missing file is not an error:
// defaults are returned with found == false. Unknown keys are rejected so
// a typo in the file does not silently fall back to defaults.
func LoadSettings(path string) (settings Settings, found bool, err error) {
	settings = DefaultSettings()
	meta, err := toml.DecodeFile(path, &settings)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), false, nil
		}
		return DefaultSettings(), false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return DefaultSettings(), false, fmt.Errorf("%s: unknown setting %q", path, undecoded[0].String())
	}
	return settings, true, nil
}
