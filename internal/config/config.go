package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultEndpoint is the public Hacker News search API
const DefaultEndpoint = "https://hn.algolia.com/api/v1"

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	Endpoint     string     `toml:"endpoint"`
	DefaultQuery string     `toml:"default_query"` // used when no search term was ever committed
	PageSize     int        `toml:"page_size"`
	StorePath    string     `toml:"store_path"` // empty means <config dir>/storygrip.db
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutoFocusSearch bool `toml:"auto_focus_search"`
	ShowPoints      bool `toml:"show_points"`
	ShowComments    bool `toml:"show_comments"`
	AutosaveOnExit  bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// Dir returns the directory holding the config file and the default store
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "storygrip")
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	dir := Dir()
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Missing file is not an error, the defaults apply
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize fills in missing values and clamps out-of-range ones
func normalize(cfg *Config) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.DefaultQuery == "" {
		cfg.DefaultQuery = "golang"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.PageSize > 100 {
		cfg.PageSize = 100 // API limit
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		Endpoint:     DefaultEndpoint,
		DefaultQuery: "golang",
		PageSize:     20,
		UISettings: UISettings{
			AutoFocusSearch: false,
			ShowPoints:      true,
			ShowComments:    true,
			AutosaveOnExit:  true,
		},
	}
}
