// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/wlcinput/input"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Backend  BackendConfig  `mapstructure:"backend"`
	IPC      IPCConfig      `mapstructure:"ipc"`
	Keyboard KeyboardConfig `mapstructure:"keyboard"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// BackendConfig selects the windowing subsystem
type BackendConfig struct {
	Name    string `mapstructure:"name"`    // auto, wlc, xwayland or sim
	Display string `mapstructure:"display"` // X display for xwayland, empty means $DISPLAY
}

// IPCConfig contains settings of the query daemon
type IPCConfig struct {
	SocketPath     string `mapstructure:"socket_path"`     // Empty means $XDG_RUNTIME_DIR/wlcinput.sock
	MetricsAddress string `mapstructure:"metrics_address"` // host:port for /metrics, empty disables
	TimeoutMs      int    `mapstructure:"timeout_ms"`
}

// KeyboardConfig contains translation defaults for the CLI
type KeyboardConfig struct {
	DefaultModifiers string `mapstructure:"default_modifiers"` // e.g. "shift" or "ctrl+alt"
}

// WatchConfig contains settings of the watch TUI
type WatchConfig struct {
	IntervalMs int `mapstructure:"interval_ms"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides LOG_LEVEL env var when set
}

// Backend names accepted in backend.name
const (
	BackendAuto     = "auto"
	BackendWlc      = "wlc"
	BackendXWayland = "xwayland"
	BackendSim      = "sim"
)

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Backend: BackendConfig{
			Name:    BackendAuto,
			Display: "",
		},
		IPC: IPCConfig{
			SocketPath:     "",
			MetricsAddress: "",
			TimeoutMs:      2000,
		},
		Keyboard: KeyboardConfig{
			DefaultModifiers: "",
		},
		Watch: WatchConfig{
			IntervalMs: 50,
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("wlcinput")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		for _, dir := range configDirs() {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	// WLCINPUT_BACKEND_NAME=sim and friends
	viper.SetEnvPrefix("WLCINPUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("backend.name", DefaultConfig.Backend.Name)
	viper.SetDefault("backend.display", DefaultConfig.Backend.Display)

	viper.SetDefault("ipc.socket_path", DefaultConfig.IPC.SocketPath)
	viper.SetDefault("ipc.metrics_address", DefaultConfig.IPC.MetricsAddress)
	viper.SetDefault("ipc.timeout_ms", DefaultConfig.IPC.TimeoutMs)

	viper.SetDefault("keyboard.default_modifiers", DefaultConfig.Keyboard.DefaultModifiers)
	viper.SetDefault("watch.interval_ms", DefaultConfig.Watch.IntervalMs)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults. An explicit path that does not
		// exist yet is not an error either; config init creates it.
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) ||
			(configPathOverride != "" && errors.Is(err, fs.ErrNotExist))
		if !missing {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// Validate checks values viper cannot type check
func (c *Config) Validate() error {
	switch c.Backend.Name {
	case BackendAuto, BackendWlc, BackendXWayland, BackendSim:
	default:
		return fmt.Errorf("invalid backend.name %q: want one of auto, wlc, xwayland, sim", c.Backend.Name)
	}

	if _, err := input.ParseModifiers(c.Keyboard.DefaultModifiers); err != nil {
		return fmt.Errorf("invalid keyboard.default_modifiers: %w", err)
	}

	if c.Watch.IntervalMs <= 0 {
		return fmt.Errorf("invalid watch.interval_ms %d: must be positive", c.Watch.IntervalMs)
	}

	if c.IPC.TimeoutMs <= 0 {
		return fmt.Errorf("invalid ipc.timeout_ms %d: must be positive", c.IPC.TimeoutMs)
	}

	return nil
}

// DefaultModifiers returns keyboard.default_modifiers parsed. Validate has
// already rejected bad values, so errors fall back to no modifiers.
func (c *Config) DefaultModifiers() input.Modifiers {
	mods, err := input.ParseModifiers(c.Keyboard.DefaultModifiers)
	if err != nil {
		return 0
	}
	return mods
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		def := DefaultConfig
		return &def
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// SetBackend records a backend choice in the live config and viper
func SetBackend(name string) error {
	c := Get()
	previous := c.Backend.Name
	c.Backend.Name = name
	if err := c.Validate(); err != nil {
		c.Backend.Name = previous
		return err
	}
	viper.Set("backend.name", name)
	cfg = c
	return nil
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	dirs := configDirs()
	if len(dirs) == 0 {
		return "wlcinput.toml"
	}
	return filepath.Join(dirs[0], "wlcinput.toml")
}

// configDirs lists config directories in order of precedence
func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "wlcinput"))
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "wlcinput"))
	}
	return dirs
}
