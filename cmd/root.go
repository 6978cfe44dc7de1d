package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/backend"
	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	backendName string
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "wlcinput",
		Short: "wlcinput - pointer and keyboard queries for wlc compositors",
		Long: `wlcinput reads and moves the pointer and translates keyboard keys through
the windowing subsystem of a running compositor. It talks to libwlc when built
with the wlc tag, falls back to XWayland, and ships a simulated backend for
scripting and tests.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/wlcinput/wlcinput.toml)")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", "", "backend: auto, wlc, xwayland or sim")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads the config and applies the global flags on top of it
func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		config.SetConfigPath(configFile)
	}
	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	if cfg.Logging.LogLevel != "" {
		if err := logger.SetLevel(cfg.Logging.LogLevel); err != nil {
			return fmt.Errorf("invalid logging.log_level: %w", err)
		}
	}
	if verbose {
		if err := logger.SetLevel("debug"); err != nil {
			return err
		}
	}

	if backendName != "" {
		if err := config.SetBackend(backendName); err != nil {
			return err
		}
	}

	logger.Debugf("Using config %s, backend %s", config.GetConfigPath(), config.Get().Backend.Name)
	return nil
}

// openServices opens the configured backend for a single command
func openServices(shared bool) (*backend.Services, error) {
	svc, err := backend.NewServices(config.Get().Backend, shared)
	if err != nil {
		return nil, fmt.Errorf("failed to open input backend: %w", err)
	}
	logger.Debugf("Opened %s backend", svc.Backend.Name())
	return svc, nil
}

func closeServices(svc *backend.Services) {
	if err := svc.Close(); err != nil {
		logger.Warnf("Failed to close backend: %v", err)
	}
}

// addModifierFlags registers --mods and --leds on a translating command
func addModifierFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mods", "m", "", `modifiers, e.g. "ctrl+shift" (default keyboard.default_modifiers)`)
	cmd.Flags().StringP("leds", "l", "", `lit lock leds, e.g. "num+caps"`)
}

// keyModifiers reads --mods and --leds, falling back to the configured
// default modifiers when --mods is not given
func keyModifiers(cmd *cobra.Command) (input.KeyModifiers, error) {
	mods := config.Get().DefaultModifiers()
	if cmd.Flags().Changed("mods") {
		value, _ := cmd.Flags().GetString("mods")
		parsed, err := input.ParseModifiers(value)
		if err != nil {
			return input.KeyModifiers{}, err
		}
		mods = parsed
	}

	value, _ := cmd.Flags().GetString("leds")
	leds, err := input.ParseLeds(value)
	if err != nil {
		return input.KeyModifiers{}, err
	}

	return input.NewKeyModifiers(mods, leds), nil
}

// parseCoordinate parses one pointer coordinate argument
func parseCoordinate(name, arg string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s coordinate %q: %w", name, arg, err)
	}
	return int32(v), nil
}

// parsePoint parses "X Y" arguments
func parsePoint(args []string) (input.Point, error) {
	x, err := parseCoordinate("x", args[0])
	if err != nil {
		return input.Point{}, err
	}
	y, err := parseCoordinate("y", args[1])
	if err != nil {
		return input.Point{}, err
	}
	return input.Point{X: x, Y: y}, nil
}
