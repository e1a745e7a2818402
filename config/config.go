// Package config exposes build metadata and runtime configuration for the
// notepanel server. Most knobs come from environment variables; the web
// settings (listen address, session parameters) may additionally be read
// from an optional TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// Settings holds the web server options that may be overridden from a TOML
// configuration file. Zero values are replaced by defaults in LoadSettings.
type Settings struct {
	Listen         string `toml:"listen"`
	Port           int    `toml:"port"`
	SessionSecret  string `toml:"sessionSecret"`
	SessionMaxAge  int    `toml:"sessionMaxAge"`  // seconds, default session lifetime
	RememberMaxAge int    `toml:"rememberMaxAge"` // seconds, lifetime with "remember me"
}

const (
	defaultPort           = 8080
	defaultSessionMaxAge  = 2 * 60 * 60       // 2 hours
	defaultRememberMaxAge = 30 * 24 * 60 * 60 // 30 days
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("NP_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("NP_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("NP_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/notepanel"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("NP_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetSettingsPath() string {
	settingsPath := os.Getenv("NP_CONFIG")
	if settingsPath == "" {
		settingsPath = "notepanel.toml"
	}
	return settingsPath
}

// LoadSettings reads the TOML settings file if it exists and fills in
// defaults for anything left unset. A missing file is not an error.
func LoadSettings() (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(GetSettingsPath())
	if err == nil {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse %s: %w", GetSettingsPath(), err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if settings.Port == 0 {
		settings.Port = defaultPort
	}
	if settings.Port < 0 || settings.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", settings.Port)
	}
	if settings.SessionMaxAge == 0 {
		settings.SessionMaxAge = defaultSessionMaxAge
	}
	if settings.RememberMaxAge == 0 {
		settings.RememberMaxAge = defaultRememberMaxAge
	}
	if settings.SessionSecret == "" {
		settings.SessionSecret = os.Getenv("NP_SESSION_SECRET")
	}
	return settings, nil
}
