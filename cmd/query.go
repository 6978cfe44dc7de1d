package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/ipc"
	"github.com/bnema/wlcinput/internal/ui"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Ask a running 'wlcinput serve' daemon",
}

// newQueryClient builds a client from --socket, --timeout and the config
func newQueryClient(cmd *cobra.Command) (*ipc.Client, error) {
	cfg := config.Get()

	socketPath := cfg.IPC.SocketPath
	if cmd.Flags().Changed("socket") {
		socketPath, _ = cmd.Flags().GetString("socket")
	}
	timeout := time.Duration(cfg.IPC.TimeoutMs) * time.Millisecond
	if cmd.Flags().Changed("timeout") {
		timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	return ipc.NewClient(socketPath, timeout)
}

var queryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the daemon is running and which backend it uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}

		backend, err := client.Status()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "running with the "+backend+" backend"))
		return nil
	},
}

var queryPointerCmd = &cobra.Command{
	Use:   "pointer [X Y]",
	Short: "Print the daemon's pointer position, or move it to X Y",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("expected both X and Y")
		}

		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}

		if len(args) == 2 {
			target, err := parsePoint(args)
			if err != nil {
				return err
			}
			pos, err := client.SetPointerPosition(target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPoint(pos))
			return nil
		}

		pos, err := client.PointerPosition()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPoint(pos))
		return nil
	},
}

var queryKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keys held on the daemon's keyboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}

		keys, err := client.CurrentKeys()
		if err != nil {
			return err
		}
		if keys.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no keys held")
			return nil
		}
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", k, keyLabel(k))
		}
		return nil
	},
}

var queryKeysymCmd = &cobra.Command{
	Use:   "keysym KEY",
	Short: "Translate a key to its keysym on the daemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, mods, err := translationArgs(cmd, args)
		if err != nil {
			return err
		}
		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}

		code, name, err := client.Keysym(key, mods)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t0x%04x\n", name, code)
		return nil
	},
}

var queryUTF32Cmd = &cobra.Command{
	Use:   "utf32 KEY",
	Short: "Translate a key to the character it types on the daemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, mods, err := translationArgs(cmd, args)
		if err != nil {
			return err
		}
		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}

		cp, err := client.UTF32(key, mods)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatCodePoint(cp))
		return nil
	},
}

func init() {
	queryCmd.PersistentFlags().String("socket", "", "daemon socket path (default ipc.socket_path)")
	queryCmd.PersistentFlags().Duration("timeout", 2*time.Second, "request timeout (default ipc.timeout_ms)")

	addModifierFlags(queryKeysymCmd)
	addModifierFlags(queryUTF32Cmd)

	queryCmd.AddCommand(queryStatusCmd)
	queryCmd.AddCommand(queryPointerCmd)
	queryCmd.AddCommand(queryKeysCmd)
	queryCmd.AddCommand(queryKeysymCmd)
	queryCmd.AddCommand(queryUTF32Cmd)
	rootCmd.AddCommand(queryCmd)
}
