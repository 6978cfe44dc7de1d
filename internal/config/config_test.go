package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/wlcinput/input"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfg = nil
	configPathOverride = ""
	t.Cleanup(func() {
		viper.Reset()
		cfg = nil
		configPathOverride = ""
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		resetConfig(t)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")
		chdir(t, t.TempDir())

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, BackendAuto, c.Backend.Name)
		assert.Equal(t, 50, c.Watch.IntervalMs)
		assert.Equal(t, 2000, c.IPC.TimeoutMs)
		assert.Equal(t, input.Modifiers(0), c.DefaultModifiers())
	})

	t.Run("reads an explicit file", func(t *testing.T) {
		resetConfig(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		content := `
[backend]
name = "sim"

[keyboard]
default_modifiers = "ctrl+shift"

[watch]
interval_ms = 100
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		SetConfigPath(path)

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, BackendSim, c.Backend.Name)
		assert.Equal(t, 100, c.Watch.IntervalMs)
		assert.Equal(t, input.ModCtrl|input.ModShift, c.DefaultModifiers())
		assert.Equal(t, path, GetConfigPath())
	})

	t.Run("explicit path that does not exist yet uses defaults", func(t *testing.T) {
		resetConfig(t)
		path := filepath.Join(t.TempDir(), "nope", "wlcinput.toml")
		SetConfigPath(path)

		require.NoError(t, Init())
		assert.Equal(t, BackendAuto, Get().Backend.Name)
		assert.Equal(t, path, GetConfigPath())

		require.NoError(t, Save())
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		resetConfig(t)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")
		chdir(t, t.TempDir())
		t.Setenv("WLCINPUT_BACKEND_NAME", "xwayland")

		require.NoError(t, Init())
		assert.Equal(t, BackendXWayland, Get().Backend.Name)
	})

	t.Run("rejects invalid TOML", func(t *testing.T) {
		resetConfig(t)
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[backend\nname = 1"), 0644))
		SetConfigPath(path)

		assert.Error(t, Init())
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		resetConfig(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[backend]\nname = \"x11\"\n"), 0644))
		SetConfigPath(path)

		err := Init()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend.name")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sim backend", func(c *Config) { c.Backend.Name = BackendSim }, false},
		{"unknown backend", func(c *Config) { c.Backend.Name = "mir" }, true},
		{"bad modifiers", func(c *Config) { c.Keyboard.DefaultModifiers = "ctrl+hyper" }, true},
		{"zero interval", func(c *Config) { c.Watch.IntervalMs = 0 }, true},
		{"negative timeout", func(c *Config) { c.IPC.TimeoutMs = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetBackend(t *testing.T) {
	resetConfig(t)
	c := DefaultConfig
	Set(&c)

	require.NoError(t, SetBackend(BackendSim))
	assert.Equal(t, BackendSim, Get().Backend.Name)
	assert.Equal(t, BackendSim, viper.GetString("backend.name"))

	require.Error(t, SetBackend("nope"))
	assert.Equal(t, BackendSim, Get().Backend.Name)
}

func TestSaveWritesToml(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "nested", "wlcinput.toml")
	SetConfigPath(path)
	viper.Set("backend.name", BackendSim)

	require.NoError(t, Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sim")
}

func TestGetConfigPathPrefersXDG(t *testing.T) {
	resetConfig(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/home/someone")

	assert.Equal(t, "/tmp/xdg/wlcinput/wlcinput.toml", GetConfigPath())
}
