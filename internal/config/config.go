// Package config provides configuration management for tiledock with Viper
// integration: XDG-compliant file discovery, environment overrides, defaults,
// and live reload over fsnotify.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config is the complete configuration for tiledock.
type Config struct {
	Simplify   SimplifyConfig   `mapstructure:"simplify" toml:"simplify" json:"simplify"`
	Floating   FloatingConfig   `mapstructure:"floating" toml:"floating" json:"floating"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Validation ValidationConfig `mapstructure:"validation" toml:"validation" json:"validation"`
}

// SimplifyConfig holds the tree pruning policy toggles.
type SimplifyConfig struct {
	PruneEmptyTabs             bool `mapstructure:"prune_empty_tabs" toml:"prune_empty_tabs" json:"prune_empty_tabs"`
	PruneEmptyContainers       bool `mapstructure:"prune_empty_containers" toml:"prune_empty_containers" json:"prune_empty_containers"`
	PruneSingleChildTabs       bool `mapstructure:"prune_single_child_tabs" toml:"prune_single_child_tabs" json:"prune_single_child_tabs"`
	PruneSingleChildContainers bool `mapstructure:"prune_single_child_containers" toml:"prune_single_child_containers" json:"prune_single_child_containers"`
	AllPanesMustHaveTabs       bool `mapstructure:"all_panes_must_have_tabs" toml:"all_panes_must_have_tabs" json:"all_panes_must_have_tabs"`
}

// Options converts the config section into the tiling package's policy type.
func (c SimplifyConfig) Options() tiling.SimplifyOptions {
	return tiling.SimplifyOptions{
		PruneEmptyTabs:             c.PruneEmptyTabs,
		PruneEmptyContainers:       c.PruneEmptyContainers,
		PruneSingleChildTabs:       c.PruneSingleChildTabs,
		PruneSingleChildContainers: c.PruneSingleChildContainers,
		AllPanesMustHaveTabs:       c.AllPanesMustHaveTabs,
	}
}

// FloatingConfig holds floating-window geometry defaults.
type FloatingConfig struct {
	DefaultX      int `mapstructure:"default_x" toml:"default_x" json:"default_x"`
	DefaultY      int `mapstructure:"default_y" toml:"default_y" json:"default_y"`
	DefaultWidth  int `mapstructure:"default_width" toml:"default_width" json:"default_width"`
	DefaultHeight int `mapstructure:"default_height" toml:"default_height" json:"default_height"`
	CascadeOffset int `mapstructure:"cascade_offset" toml:"cascade_offset" json:"cascade_offset"`
}

// DefaultRect returns the configured default floating geometry.
func (c FloatingConfig) DefaultRect() entity.Rect {
	return entity.Rect{X: c.DefaultX, Y: c.DefaultY, W: c.DefaultWidth, H: c.DefaultHeight}
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// ValidationConfig controls the diagnostic invariant pass.
type ValidationConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("TILEDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"simplify.prune_empty_tabs":              "SIMPLIFY_PRUNE_EMPTY_TABS",
		"simplify.prune_empty_containers":        "SIMPLIFY_PRUNE_EMPTY_CONTAINERS",
		"simplify.prune_single_child_tabs":       "SIMPLIFY_PRUNE_SINGLE_CHILD_TABS",
		"simplify.prune_single_child_containers": "SIMPLIFY_PRUNE_SINGLE_CHILD_CONTAINERS",
		"simplify.all_panes_must_have_tabs":      "SIMPLIFY_ALL_PANES_MUST_HAVE_TABS",
		"floating.cascade_offset":                "FLOATING_CASCADE_OFFSET",
		"logging.level":                          "LOG_LEVEL",
		"logging.format":                         "LOG_FORMAT",
		"validation.enabled":                     "VALIDATION_ENABLED",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "TILEDOCK_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing config file is not an error; a default one is written in its
// place.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return m.unmarshal()
}

// unmarshal decodes viper state into the config struct. Must be called with
// the write lock held.
func (m *Manager) unmarshal() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads
// automatically, notifying registered callbacks.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		err := m.viper.ReadInConfig()
		if err == nil {
			err = m.unmarshal()
		}
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}
		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after a successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("simplify.prune_empty_tabs", defaults.Simplify.PruneEmptyTabs)
	m.viper.SetDefault("simplify.prune_empty_containers", defaults.Simplify.PruneEmptyContainers)
	m.viper.SetDefault("simplify.prune_single_child_tabs", defaults.Simplify.PruneSingleChildTabs)
	m.viper.SetDefault("simplify.prune_single_child_containers", defaults.Simplify.PruneSingleChildContainers)
	m.viper.SetDefault("simplify.all_panes_must_have_tabs", defaults.Simplify.AllPanesMustHaveTabs)

	m.viper.SetDefault("floating.default_x", defaults.Floating.DefaultX)
	m.viper.SetDefault("floating.default_y", defaults.Floating.DefaultY)
	m.viper.SetDefault("floating.default_width", defaults.Floating.DefaultWidth)
	m.viper.SetDefault("floating.default_height", defaults.Floating.DefaultHeight)
	m.viper.SetDefault("floating.cascade_offset", defaults.Floating.CascadeOffset)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("validation.enabled", defaults.Validation.Enabled)
}

// createDefaultConfig writes the default configuration and its JSON schema
// to the config directory.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(); err != nil {
		return err
	}
	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// ConfigFileUsed returns the path of the configuration file in use, or the
// default location when none was read.
func (m *Manager) ConfigFileUsed() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration, or defaults when uninitialized.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
