// Package config loads the competency-app-sheets configuration from a YAML
// file and COMPETENCY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     API     `mapstructure:"api"`
	Catalog Catalog `mapstructure:"catalog"`
	Users   Users   `mapstructure:"users"`
	Sheets  Sheets  `mapstructure:"sheets"`
	Labels  Labels  `mapstructure:"labels"`
	Logging Logging `mapstructure:"logging"`
}

// API is the survey API endpoint and key.
type API struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Catalog struct {
	ID string `mapstructure:"id"`
}

// Users configures the user directory. Emails listed in Exclude (e.g. test
// accounts) are removed from the directory as it is fetched.
type Users struct {
	Exclude []string `mapstructure:"exclude"`
}

// Sheets holds the Google Sheets credentials and the names of the worksheets
// written and read by the generate command.
type Sheets struct {
	Credentials string `mapstructure:"credentials"`
	Workdir     string `mapstructure:"workdir"`
	URL         string `mapstructure:"url"`
	Data        string `mapstructure:"data"`
	NotAnswered string `mapstructure:"not-answered"`
	Blocklist   string `mapstructure:"blocklist"`
}

// Labels are the section titles written above the knowledge and motivation
// columns of the data sheet.
type Labels struct {
	Knowledge  string `mapstructure:"knowledge"`
	Motivation string `mapstructure:"motivation"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	ErrMissingAPIURL    = errors.New("api.url is required")
	ErrMissingCatalogID = errors.New("catalog.id is required")
	ErrInvalidLogFormat = errors.New("logging.format must be 'console' or 'json'")
)

// Load reads the configuration file at path. A missing file is not an error
// if path is the default configuration file, in which case the defaults and
// environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("COMPETENCY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultConfig
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %v (%w)", path, err)
		}
	} else if !os.IsNotExist(err) || path != DefaultConfig {
		return nil, fmt.Errorf("failed to read config file %v (%w)", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config (%w)", err)
	}

	return &config, nil
}

// Validate checks the settings required to fetch from the survey API.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.URL) == "" {
		return ErrMissingAPIURL
	}

	if strings.TrimSpace(c.Catalog.ID) == "" {
		return ErrMissingCatalogID
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("catalog.id", "")

	v.SetDefault("users.exclude", []string{"user@user.user"})

	v.SetDefault("sheets.credentials", DefaultCredentials)
	v.SetDefault("sheets.workdir", DefaultWorkdir)
	v.SetDefault("sheets.url", "")
	v.SetDefault("sheets.data", "data")
	v.SetDefault("sheets.not-answered", "not answered")
	v.SetDefault("sheets.blocklist", "user blocklist!A3:A")

	v.SetDefault("labels.knowledge", "Kompetanse")
	v.SetDefault("labels.motivation", "Motivasjon")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
