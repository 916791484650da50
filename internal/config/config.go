package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"duelist/internal/parser"
	"duelist/internal/utils"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	_ "embed"
)

var customConfigPath string // Custom config path set via --config flag

//go:embed config.sample.yaml
var sampleConfig []byte

const (
	CONFIG_DIR_PATH  = utils.AppName
	CONFIG_FILE_PATH = "config.yaml"
	CONFIG_DIR_PERM  = 0755
	CONFIG_FILE_PERM = 0644

	DefaultDateFormat = "2006-01-02 15:04"
	DefaultDBFile     = "items.db"
)

// Config represents the application configuration.
type Config struct {
	DBPath      string `yaml:"db_path"`
	Timezone    string `yaml:"timezone"`
	DefaultTime string `yaml:"default_time" validate:"required"`
	DefaultList string `yaml:"default_list" validate:"oneof=all today late done"`
	UI          string `yaml:"ui" validate:"oneof=cli tui"`
	DateFormat  string `yaml:"date_format,omitempty"`
	Color       *bool  `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DefaultTime == "" {
		c.DefaultTime = parser.DefaultTime
	}
	if c.DefaultList == "" {
		c.DefaultList = "all"
	}
	if c.UI == "" {
		c.UI = "cli"
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
}

// Validate checks struct tags and the fields validator cannot express.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return utils.ErrInvalidConfig("timezone", err.Error())
	}

	if _, _, ok := parser.BreakTime(c.DefaultTime); !ok {
		return utils.ErrInvalidConfig("default_time", fmt.Sprintf("%q is not a time like 11:59pm", c.DefaultTime))
	}

	return nil
}

// Location returns the region dates are resolved in.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ColorEnabled defaults to true when unset.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c *Config) GetDateFormat() string {
	if c.DateFormat == "" {
		return DefaultDateFormat
	}
	return c.DateFormat
}

// GetDatabasePath returns the expanded database path.
// Priority: db_path > $XDG_DATA_HOME/duelist/items.db > ~/.local/share/duelist/items.db
func (c *Config) GetDatabasePath() (string, error) {
	if c.DBPath != "" {
		return utils.ExpandPath(c.DBPath)
	}
	return utils.DataPath(DefaultDBFile)
}

// SetCustomConfigPath sets a custom config path to use instead of the default user config directory.
// If path is ".", it uses "./duelist/config.yaml" (current directory).
// If path is a directory, it looks for "config.yaml" inside it.
// If path is a file, it uses that file directly.
func SetCustomConfigPath(path string) {
	switch {
	case path == "":
		customConfigPath = ""
	case path == ".":
		customConfigPath = filepath.Join(".", CONFIG_DIR_PATH, CONFIG_FILE_PATH)
	default:
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			customConfigPath = filepath.Join(path, CONFIG_FILE_PATH)
		} else {
			customConfigPath = path
		}
	}
}

// GetConfigPath returns the custom path or $XDG_CONFIG_HOME/duelist/config.yaml
func GetConfigPath() (string, error) {
	if customConfigPath != "" {
		return customConfigPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, CONFIG_DIR_PATH, CONFIG_FILE_PATH), nil
}

// LoadOrCreate reads path, falling back to the embedded sample when the file
// does not exist. prompt decides whether the sample is also written to disk.
func LoadOrCreate(path string, prompt func(question string) bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		utils.Debugf("No config exists at %s", path)
		data = sampleConfig
		if prompt != nil && prompt("No config found. Write a default config to "+path+"?") {
			if err := WriteConfigFile(path, sampleConfig); err != nil {
				return nil, err
			}
			utils.Infof("Config written to %s", path)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data, path)
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, utils.ErrConfigFileNotFound(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML config data; unknown keys are rejected.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", source, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", source, err)
	}
	return &cfg, nil
}

// WriteConfigFile writes data to path, creating the directory.
func WriteConfigFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), CONFIG_DIR_PERM); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, CONFIG_FILE_PERM); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
