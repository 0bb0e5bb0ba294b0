package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings holds the runtime options of the assistant.
// Priority: command-line flags > ENV > YAML file > defaults.
type Settings struct {
	DataFile    string `yaml:"data_file"    env:"ADDRESSBOOK_FILE"`
	Language    string `yaml:"language"     env:"ADDRESSBOOK_LANG"         env-default:"en"`
	HorizonDays int    `yaml:"horizon_days" env:"ADDRESSBOOK_HORIZON_DAYS" env-default:"7"`
	Debug       bool   `yaml:"debug"        env:"ADDRESSBOOK_DEBUG"        env-default:"false"`
}

// LoadSettings reads the settings and validates them.
func LoadSettings() (*Settings, error) {
	s, err := ReadSettings()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadSettings reads the YAML file named by ADDRESSBOOK_CONFIG when set,
// then the environment, without validating the values. Callers that apply
// overrides call Validate once they are done. An empty DataFile is resolved
// to the user config directory.
func ReadSettings() (*Settings, error) {
	var s Settings

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrReadSettings, path, err)
		}
	} else if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrReadSettings, err)
	}

	if s.DataFile == "" {
		path, err := DefaultDataFile()
		if err != nil {
			return nil, err
		}
		s.DataFile = path
	}
	return &s, nil
}

// Validate checks values that cleanenv cannot express as tags.
func (s *Settings) Validate() error {
	if s.DataFile == "" {
		return errors.New(ErrDataPathEmpty)
	}
	if s.HorizonDays < 0 || s.HorizonDays > MaxHorizonDays {
		return fmt.Errorf("%s: %d", ErrHorizonRange, s.HorizonDays)
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, s.Language)
	}
	return nil
}

// DefaultDataFile returns <user config dir>/<AppID>/contacts.json.
func DefaultDataFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppID, DataFileName), nil
}
