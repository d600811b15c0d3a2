// Package config handles loading and hot-reloading configuration for
// the outline extraction pipeline.
//
// Configuration is resolved from defaults, an optional config file
// (YAML or JSON) and OUTLINER_-prefixed environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/hierarchy"
)

// Config holds the pipeline settings.
type Config struct {
	// InputDir and OutputDir are the batch processing directories.
	InputDir  string `mapstructure:"input_dir"`
	OutputDir string `mapstructure:"output_dir"`

	// MaxWorkers caps the number of documents processed concurrently.
	MaxWorkers int `mapstructure:"max_workers"`

	// PDFDPI is the page rendering resolution. The classifier height
	// thresholds are calibrated for 200 DPI.
	PDFDPI float64 `mapstructure:"pdf_dpi"`

	// ConfidenceThreshold is the minimum detector score for a region
	// to be considered at all.
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`

	// Language is the OCR language string (e.g. "eng", "eng+fra").
	Language string `mapstructure:"language"`

	// TitleHeightThreshold feeds the hierarchy engine; see
	// hierarchy.Config.
	TitleHeightThreshold float64 `mapstructure:"title_height_threshold"`

	// HeadingPatterns optionally overrides the lexical rule table.
	// Patterns are full regular expressions including anchors and
	// flags. An empty family keeps the defaults.
	HeadingPatterns PatternOverrides `mapstructure:"heading_patterns"`
}

// PatternOverrides is the raw regex rule table from the config file.
type PatternOverrides struct {
	H1 []string `mapstructure:"h1"`
	H2 []string `mapstructure:"h2"`
	H3 []string `mapstructure:"h3"`
}

func (p PatternOverrides) empty() bool {
	return len(p.H1)+len(p.H2)+len(p.H3) == 0
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	return &Config{
		InputDir:             "input",
		OutputDir:            "output",
		MaxWorkers:           workers,
		PDFDPI:               200,
		ConfidenceThreshold:  0.5,
		Language:             "eng",
		TitleHeightThreshold: 20,
	}
}

// EngineConfig converts the loaded settings into the hierarchy engine's
// configuration, compiling any pattern overrides.
func (c *Config) EngineConfig() (hierarchy.Config, error) {
	cfg := hierarchy.Config{
		TitleHeightThreshold: c.TitleHeightThreshold,
		Patterns:             hierarchy.DefaultPatterns(),
	}

	if !c.HeadingPatterns.empty() {
		table, err := hierarchy.CompilePatterns(c.HeadingPatterns.H1, c.HeadingPatterns.H2, c.HeadingPatterns.H3)
		if err != nil {
			return hierarchy.Config{}, fmt.Errorf("invalid heading pattern: %w", err)
		}
		cfg.Patterns = table
	}

	return cfg, nil
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a config manager and loads the initial
// configuration. cfgFile may be empty, in which case "config.yaml" or
// "config.json" is searched for in the working directory and
// ~/.outliner.
func NewManager(cfgFile string) (*Manager, error) {
	m := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Config), 0),
	}

	if err := m.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cfg

	return m, nil
}

// initViper sets up viper with defaults and the config file.
func (m *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	m.v.SetDefault("input_dir", defaults.InputDir)
	m.v.SetDefault("output_dir", defaults.OutputDir)
	m.v.SetDefault("max_workers", defaults.MaxWorkers)
	m.v.SetDefault("pdf_dpi", defaults.PDFDPI)
	m.v.SetDefault("confidence_threshold", defaults.ConfidenceThreshold)
	m.v.SetDefault("language", defaults.Language)
	m.v.SetDefault("title_height_threshold", defaults.TitleHeightThreshold)

	// Environment variables with OUTLINER_ prefix
	m.v.SetEnvPrefix("OUTLINER")
	m.v.AutomaticEnv()

	if cfgFile != "" {
		m.v.SetConfigFile(cfgFile)
	} else {
		m.v.SetConfigName("config")
		m.v.AddConfigPath(".")
		m.v.AddConfigPath("$HOME/.outliner")
	}

	// The config file is optional
	if err := m.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (m *Manager) load() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback for config changes.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Watch enables hot-reloading of the configuration file. Registered
// OnChange callbacks are invoked with the new configuration after each
// successful reload; a reload that fails to parse keeps the previous
// configuration.
func (m *Manager) Watch() {
	m.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := m.load()
		if err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.v.WatchConfig()
}
