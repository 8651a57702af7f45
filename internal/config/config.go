package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fnziad/ZeroTex/internal/logging"
	"github.com/fnziad/ZeroTex/internal/paginate"
)

// Config holds the application configuration
type Config struct {
	Template      string        `mapstructure:"template"`
	Measurer      string        `mapstructure:"measurer"` // estimate, chrome
	ChromePath    string        `mapstructure:"chrome_path"`
	ChromeTimeout time.Duration `mapstructure:"chrome_timeout"`
	// Page geometry
	Paper        string  `mapstructure:"paper"` // A4, Letter
	MarginTopMM  float64 `mapstructure:"margin_top_mm"`
	MarginSideMM float64 `mapstructure:"margin_side_mm"`
	FontSizePt   float64 `mapstructure:"font_size_pt"`
	LineHeight   float64 `mapstructure:"line_height"`

	DatabasePath string `mapstructure:"database_path"`
	LogLevel     string `mapstructure:"log_level"`
}

const (
	MeasurerEstimate = "estimate"
	MeasurerChrome   = "chrome"
)

var AppConfig *Config

// Initialize loads or creates ~/.zerotex/config.yaml
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeIn(filepath.Join(homeDir, ".zerotex"))
}

// InitializeIn loads or creates config.yaml inside configDir.
func InitializeIn(configDir string) error {
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("ZEROTEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func setDefaults() {
	viper.SetDefault("template", "classic")
	viper.SetDefault("measurer", MeasurerEstimate)
	viper.SetDefault("chrome_path", "")
	viper.SetDefault("chrome_timeout", "30s")
	viper.SetDefault("paper", "A4")
	viper.SetDefault("margin_top_mm", 12.0)
	viper.SetDefault("margin_side_mm", 18.0)
	viper.SetDefault("font_size_pt", 10.0)
	viper.SetDefault("line_height", 1.2)
	viper.SetDefault("database_path", "")
	viper.SetDefault("log_level", "warn")
}

// Validate rejects values the renderers cannot work with.
func (c *Config) Validate() error {
	switch c.Measurer {
	case MeasurerEstimate, MeasurerChrome:
	default:
		return fmt.Errorf("invalid measurer %q: want %s or %s", c.Measurer, MeasurerEstimate, MeasurerChrome)
	}
	if c.MarginTopMM < 0 || c.MarginSideMM < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	if c.FontSizePt <= 0 || c.LineHeight <= 0 {
		return fmt.Errorf("font_size_pt and line_height must be positive")
	}
	if _, err := paginate.PaperByName(c.Paper); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# ZeroTex Configuration
# Default template: classic, modern, academic, creative, executive, technical
template: classic

# Page measurement for the paged preview: estimate or chrome
measurer: estimate
chrome_path: ""
chrome_timeout: 30s

# Page geometry
paper: A4
margin_top_mm: 12
margin_side_mm: 18
font_size_pt: 10
line_height: 1.2

# Leave empty for ~/.zerotex/zerotex.db
database_path: ""

# debug, info, warn, error
log_level: warn
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	if !Known(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	old := viper.Get(key)
	viper.Set(key, value)

	cfg := &Config{}
	err := viper.Unmarshal(cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		viper.Set(key, old)
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}

	if err := viper.WriteConfig(); err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// Keys lists every configuration key in file order.
func Keys() []string {
	return []string{
		"template", "measurer", "chrome_path", "chrome_timeout",
		"paper", "margin_top_mm", "margin_side_mm", "font_size_pt", "line_height",
		"database_path", "log_level",
	}
}

// Known reports whether key is a configuration key.
func Known(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// GetConfigPath returns the path to the config file in use
func GetConfigPath() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".zerotex", "config.yaml")
}
