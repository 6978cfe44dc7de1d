package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/ipc"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer pointer and keyboard queries over a unix socket",
	Long: `Run a daemon that owns the input backend and answers queries from
'wlcinput query' and other clients over a unix socket. Requests from
concurrent clients are serialized before they reach the backend.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cmd)
	},
}

// runServe blocks until ctx is done or the metrics server fails
func runServe(ctx context.Context, cmd *cobra.Command) error {
	cfg := config.Get()

	socketPath := cfg.IPC.SocketPath
	if cmd.Flags().Changed("socket") {
		socketPath, _ = cmd.Flags().GetString("socket")
	}
	metricsAddr := cfg.IPC.MetricsAddress
	if cmd.Flags().Changed("metrics-address") {
		metricsAddr, _ = cmd.Flags().GetString("metrics-address")
	}

	svc, err := openServices(true)
	if err != nil {
		return err
	}
	defer closeServices(svc)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := ipc.NewMetrics(registry)

	handler := ipc.NewInputHandler(svc.Pointer, svc.Keyboard, svc.Backend.Name())
	server, err := ipc.NewSocketServer(socketPath, handler, metrics)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start IPC server: %w", err)
	}
	defer server.Stop()

	logger.Infof("Serving %s backend on %s", svc.Backend.Name(), server.SocketPath())

	errCh := make(chan error, 1)
	if metricsAddr != "" {
		go func() {
			errCh <- ipc.ServeMetrics(ctx, metricsAddr, registry)
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		return nil
	case err := <-errCh:
		return err
	}
}

func init() {
	serveCmd.Flags().String("socket", "", "socket path (default ipc.socket_path or $XDG_RUNTIME_DIR/wlcinput.sock)")
	serveCmd.Flags().String("metrics-address", "", "serve prometheus metrics on host:port (default ipc.metrics_address)")
	rootCmd.AddCommand(serveCmd)
}
