package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/plotfont/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for plotfont.
type Config struct {
	Fonts    FontsConfig    `mapstructure:"fonts" yaml:"fonts" json:"fonts"`
	Style    StyleConfig    `mapstructure:"style" yaml:"style" json:"style"`
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry" json:"registry"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// FontsConfig holds the preferred font list. Order encodes priority: the
// first family found on the host wins.
type FontsConfig struct {
	Preferred []string `mapstructure:"preferred" yaml:"preferred" json:"preferred"`
}

// StyleConfig holds the point sizes applied to plot elements when a
// preferred font is selected.
type StyleConfig struct {
	TitleSize       float64 `mapstructure:"title_size" yaml:"title_size" json:"title_size"`
	LabelSize       float64 `mapstructure:"label_size" yaml:"label_size" json:"label_size"`
	TickLabelSize   float64 `mapstructure:"tick_label_size" yaml:"tick_label_size" json:"tick_label_size"`
	FigureTitleSize float64 `mapstructure:"figure_title_size" yaml:"figure_title_size" json:"figure_title_size"`
}

// RegistryConfig controls how installed fonts are discovered.
type RegistryConfig struct {
	// UseFontconfig enables the fc-list fast path where available.
	UseFontconfig bool `mapstructure:"use_fontconfig" yaml:"use_fontconfig" json:"use_fontconfig"`
	// ExtraDirs are scanned in addition to the platform font directories.
	ExtraDirs []string `mapstructure:"extra_dirs" yaml:"extra_dirs" json:"extra_dirs"`
	// Watch invalidates the in-process registry cache when font
	// directories change.
	Watch bool `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// DatabaseConfig holds the font scan cache settings.
type DatabaseConfig struct {
	Path    string `mapstructure:"path" yaml:"path" json:"path"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
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

	// TOML config file, name without extension
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment variable support (e.g. PLOTFONT_LOGGING_LEVEL)
	v.SetEnvPrefix("PLOTFONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings for the short env var names used by the library API
	if err := v.BindEnv("logging.level", "PLOTFONT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PLOTFONT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PLOTFONT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PLOTFONT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// reload reloads the configuration. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// SavePreferred persists a new preferred font list to the config file and
// updates the in-memory config.
func (m *Manager) SavePreferred(families []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	configFile, err := GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to determine config file: %w", err)
	}

	m.viper.Set("fonts.preferred", families)
	if err := m.viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if m.config != nil {
		m.config.Fonts.Preferred = append([]string(nil), families...)
	}
	return nil
}

// ensureDatabasePath fills in the default cache location when the config
// leaves it empty.
func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}
