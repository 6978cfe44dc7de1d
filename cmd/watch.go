package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/bnema/wlcinput/internal/ui"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the pointer and held keys live",
	Long: `Open a terminal view that polls the pointer position and the held keys
and shows what each key translates to. Modifiers derived from held modifier
keys are added to --mods.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	mods, err := keyModifiers(cmd)
	if err != nil {
		return err
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	if !cmd.Flags().Changed("interval") {
		interval = time.Duration(config.Get().Watch.IntervalMs) * time.Millisecond
	}

	// The model polls from the UI goroutine while signals arrive elsewhere
	svc, err := openServices(true)
	if err != nil {
		return err
	}
	defer closeServices(svc)

	// Log lines would tear the full screen view
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.NewWatchModel(svc.Pointer, svc.Keyboard, mods, interval)
	runner := ui.NewProgramRunner(ui.DefaultProgramConfig())
	return runner.Run(ctx, model)
}

// watchOnce samples once and prints the result, for non interactive use
func watchOnce(cmd *cobra.Command, pointer *input.Pointer, keyboard *input.Keyboard, mods input.KeyModifiers) {
	model := ui.NewWatchModel(pointer, keyboard, mods, time.Second)
	model.Sample()
	fmt.Fprintln(cmd.OutOrStdout(), model.View())
}

var watchOnceCmd = &cobra.Command{
	Use:   "once",
	Short: "Print one sample of the watch view and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mods, err := keyModifiers(cmd)
		if err != nil {
			return err
		}

		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		watchOnce(cmd, svc.Pointer, svc.Keyboard, mods)
		return nil
	},
}

func init() {
	addModifierFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 50*time.Millisecond, "poll interval (default watch.interval_ms)")
	addModifierFlags(watchOnceCmd)

	watchCmd.AddCommand(watchOnceCmd)
	rootCmd.AddCommand(watchCmd)
}
