package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "REPORTS"

type Settings struct {
	DBPath        string `mapstructure:"db_path"`
	DirectoryPath string `mapstructure:"directory_path"`
	Currency      string `mapstructure:"currency"`
	LogLevel      string `mapstructure:"log_level"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("db_path", "reports.db")
	v.SetDefault("directory_path", "")
	v.SetDefault("currency", "")
	v.SetDefault("log_level", "info")
}

// LoadSettings reads settings from path, when given, and from REPORTS_*
// environment variables. Environment values win over the file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if strings.TrimSpace(s.DBPath) == "" {
		return errors.New("db_path cannot be empty")
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (s *Settings) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}
