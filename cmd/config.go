package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/bnema/wlcinput/internal/wlc"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wlcinput configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		rows := [][2]string{
			{"config file", config.GetConfigPath()},
			{"backend.name", cfg.Backend.Name},
			{"backend.display", cfg.Backend.Display},
			{"ipc.socket_path", cfg.IPC.SocketPath},
			{"ipc.metrics_address", cfg.IPC.MetricsAddress},
			{"ipc.timeout_ms", fmt.Sprint(cfg.IPC.TimeoutMs)},
			{"keyboard.default_modifiers", cfg.DefaultModifiers().String()},
			{"watch.interval_ms", fmt.Sprint(cfg.Watch.IntervalMs)},
			{"logging.log_level", cfg.Logging.LogLevel},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

// backendOptions lists the backends offered by config init
func backendOptions() []huh.Option[string] {
	wlcLabel := "wlc - libwlc compositor"
	if !wlc.Available {
		wlcLabel += " (not built in)"
	}
	return []huh.Option[string]{
		huh.NewOption("auto - first backend that opens", config.BackendAuto),
		huh.NewOption(wlcLabel, config.BackendWlc),
		huh.NewOption("xwayland - X server of the session", config.BackendXWayland),
		huh.NewOption("sim - simulated, for scripts and tests", config.BackendSim),
	}
}

// selectBackend asks which backend to store, starting from current
func selectBackend(current string) (string, error) {
	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select input backend").
				Description("Which windowing subsystem wlcinput should talk to").
				Options(backendOptions()...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("backend selection cancelled")
		}
		return "", fmt.Errorf("backend selection failed: %w", err)
	}
	return selected, nil
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file",
	Long: `Write the current configuration to the config file. Without --backend or
--yes an interactive prompt picks the backend.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigPath()
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configPath); err == nil && !force {
			logger.Infof("Configuration file already exists at: %s", configPath)
			logger.Info("Use --force to overwrite")
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if backendName == "" && !yes {
			name, err := selectBackend(config.Get().Backend.Name)
			if err != nil {
				return err
			}
			if err := config.SetBackend(name); err != nil {
				return err
			}
		}

		if err := config.Save(); err != nil {
			return err
		}

		logger.Infof("Configuration initialized at: %s", configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing configuration")
	configInitCmd.Flags().BoolP("yes", "y", false, "do not prompt, keep the current backend")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
