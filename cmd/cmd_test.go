package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/wlcinput/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of the tree back to its default
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	config.Set(nil)
	config.SetConfigPath("")
	resetFlags(rootCmd)
	t.Cleanup(func() {
		viper.Reset()
		config.Set(nil)
		config.SetConfigPath("")
	})
}

// executeCommand runs the root command against a config file in a temp
// dir and returns what it printed
func executeCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	resetState(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wlcinput.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return path
}

func TestPointerCommands(t *testing.T) {
	path := tempConfig(t, "")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "get", args: []string{"pointer", "get"}, want: "0, 0\n"},
		{name: "set", args: []string{"pointer", "set", "640", "480"}, want: "640, 480\n"},
		{name: "set negative", args: []string{"pointer", "set", "--", "-20", "1440"}, want: "-20, 1440\n"},
		{name: "set bad coordinate", args: []string{"pointer", "set", "1", "up"}, wantErr: "invalid y coordinate"},
		{name: "set out of range", args: []string{"pointer", "set", "99999999999", "0"}, wantErr: "invalid x coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, path, append([]string{"--backend", "sim"}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKeyboardCommands(t *testing.T) {
	path := tempConfig(t, "")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "keys idle", args: []string{"keys"}, want: "no keys held\n"},
		{name: "keysym by name", args: []string{"keysym", "a"}, want: "a\t0x0061\n"},
		{name: "keysym shifted", args: []string{"keysym", "KEY_A", "--mods", "shift"}, want: "A\t0x0041\n"},
		{name: "keysym by code", args: []string{"keysym", "30", "--leds", "caps"}, want: "A\t0x0041\n"},
		{name: "keysym keypad", args: []string{"keysym", "kp7"}, want: "KP_Home\t0xff95\n"},
		{name: "keysym keypad numlock", args: []string{"keysym", "kp7", "--leds", "num"}, want: "KP_7\t0xffb7\n"},
		{name: "keysym function key", args: []string{"keysym", "f5"}, want: "F5\t0xffc2\n"},
		{name: "keysym page up", args: []string{"keysym", "pageup"}, want: "Prior\t0xff55\n"},
		{name: "utf32 keypad enter", args: []string{"utf32", "kpenter"}, want: "U+000D\n"},
		{name: "keysym unknown code", args: []string{"keysym", "0xfff0"}, want: "NoSymbol\t0x0000\n"},
		{name: "utf32 shifted digit", args: []string{"utf32", "4", "-m", "shift"}, want: "U+0024\t'$'\n"},
		{name: "utf32 modifier key", args: []string{"utf32", "leftshift", "-m", "shift"}, want: "U+0000\n"},
		{name: "unknown key name", args: []string{"keysym", "hyper"}, wantErr: "unknown key"},
		{name: "bad modifiers", args: []string{"keysym", "a", "--mods", "hyper"}, wantErr: "unknown modifier"},
		{name: "bad leds", args: []string{"utf32", "a", "--leds", "compose"}, wantErr: "unknown led"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, path, append([]string{"-b", "sim"}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConfiguredDefaultModifiers(t *testing.T) {
	path := tempConfig(t, `
[backend]
name = "sim"

[keyboard]
default_modifiers = "shift"
`)

	out, err := executeCommand(t, path, "keysym", "b")
	require.NoError(t, err)
	assert.Equal(t, "B\t0x0042\n", out)

	// An explicit --mods replaces the default
	out, err = executeCommand(t, path, "keysym", "b", "--mods", "none")
	require.NoError(t, err)
	assert.Equal(t, "b\t0x0062\n", out)
}

func TestUnknownBackendFlag(t *testing.T) {
	_, err := executeCommand(t, tempConfig(t, ""), "--backend", "x11", "pointer", "get")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backend.name")
}

func TestInvalidConfigFile(t *testing.T) {
	path := tempConfig(t, "[backend\nname = \"sim\"\n")
	_, err := executeCommand(t, path, "version")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wlcinput.toml")

	_, err := executeCommand(t, path, "--backend", "sim", "config", "init")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "sim")

	t.Run("does not overwrite without force", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

		_, err := executeCommand(t, path, "config", "init", "--yes")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(content))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		_, err := executeCommand(t, path, "config", "init", "--yes", "--force")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, "# mine\n", string(content))
		assert.Contains(t, string(content), "timeout_ms")
	})
}

func TestConfigShow(t *testing.T) {
	path := tempConfig(t, `
[backend]
name = "xwayland"
display = ":1"

[watch]
interval_ms = 100
`)

	out, err := executeCommand(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	lines := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			lines[fields[0]] = fields[1]
		}
	}
	assert.Equal(t, "xwayland", lines["backend.name"])
	assert.Equal(t, ":1", lines["backend.display"])
	assert.Equal(t, "100", lines["watch.interval_ms"])
	assert.Equal(t, "2000", lines["ipc.timeout_ms"])
	assert.Equal(t, "none", lines["keyboard.default_modifiers"])
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, tempConfig(t, ""), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wlcinput "+Version)
	assert.Contains(t, out, "libwlc: false")
}

func TestWatchOnce(t *testing.T) {
	out, err := executeCommand(t, tempConfig(t, ""), "-b", "sim", "watch", "once")
	require.NoError(t, err)
	assert.Contains(t, out, "0, 0")
	assert.Contains(t, out, "no keys held")
}

func TestKeyNames(t *testing.T) {
	out, err := executeCommand(t, tempConfig(t, ""), "key-names")
	require.NoError(t, err)
	assert.Contains(t, out, "leftshift")
	assert.Contains(t, out, "kp7")
	assert.Contains(t, out, "f12")
	assert.Contains(t, out, "scrolllock")

	for _, name := range knownKeyNames() {
		code, err := parseKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, keyLabel(code))
	}
}
