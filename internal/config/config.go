package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/studiowebux/buoycli/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

const (
	// DefaultObservationsURL is the NDBC latest-observations plaintext feed
	DefaultObservationsURL = "https://www.ndbc.noaa.gov/data/latest_obs/latest_obs.txt"
	// DefaultStationsURL is the NDBC active-stations XML feed
	DefaultStationsURL = "https://www.ndbc.noaa.gov/activestations.xml"
	// DefaultTimeoutSeconds bounds each feed request
	DefaultTimeoutSeconds = 30
)

var (
	// ConfigDir is the global configuration directory (~/.buoycli)
	ConfigDir string

	// DatabasePath is the SQLite database file for the snapshot store
	DatabasePath string

	// LogFile is the debug event log written when --debug is set
	LogFile string

	// SettingsFile is the optional YAML settings file
	SettingsFile string
)

// Initialize sets up the configuration directory and global paths
// It creates ~/.buoycli/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".buoycli")
	DatabasePath = filepath.Join(ConfigDir, "buoycli.db")
	LogFile = filepath.Join(ConfigDir, "debug.log")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Settings holds the optional user configuration. Every field has a
// compiled-in default; a bare run never needs a settings file.
type Settings struct {
	ObservationsURL string `yaml:"observations_url,omitempty"`
	StationsURL     string `yaml:"stations_url,omitempty"`
	TimeoutSeconds  int    `yaml:"timeout_seconds,omitempty"`

	// MessageTimeoutSeconds auto-clears status bar messages after this
	// many seconds. 0 keeps messages until the next action.
	MessageTimeoutSeconds int `yaml:"message_timeout_seconds,omitempty"`

	Columns map[string][]types.Column `yaml:"columns,omitempty"`
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	return Settings{
		ObservationsURL: DefaultObservationsURL,
		StationsURL:     DefaultStationsURL,
		TimeoutSeconds:  DefaultTimeoutSeconds,
	}
}

// Timeout returns the request timeout as a duration.
func (s Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// MessageTimeout returns the status message auto-clear delay.
// Zero means messages stay until replaced.
func (s Settings) MessageTimeout() time.Duration {
	if s.MessageTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.MessageTimeoutSeconds) * time.Second
}

// Load reads the settings file if one exists and overlays it on the
// defaults. A missing file is not an error; a malformed one is.
func Load() (Settings, error) {
	settings := DefaultSettings()

	path := GetSettingsFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if file.ObservationsURL != "" {
		settings.ObservationsURL = file.ObservationsURL
	}
	if file.StationsURL != "" {
		settings.StationsURL = file.StationsURL
	}
	if file.TimeoutSeconds > 0 {
		settings.TimeoutSeconds = file.TimeoutSeconds
	}
	if file.MessageTimeoutSeconds > 0 {
		settings.MessageTimeoutSeconds = file.MessageTimeoutSeconds
	}
	settings.Columns = file.Columns

	return settings, nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if _, err := os.Stat(".buoycli.yaml"); err == nil {
		return ".buoycli.yaml"
	}
	return SettingsFile
}
