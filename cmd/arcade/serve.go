package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/metrics"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagNoWatch     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Metrics:
  - With --metrics-addr (or ARCADE_METRICS_ADDR), Prometheus metrics
    are served at http://<addr>/metrics

Examples:
  arcade serve                           # Listen on $ARCADE_SSH_ADDR or :23234
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --metrics-addr :9100      # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default $ARCADE_SSH_ADDR or :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Address for the Prometheus endpoint (default $ARCADE_METRICS_ADDR, empty disables)")
	serveCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload game configs when YAML files change")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = firstNonEmpty(flagSSHAddr, env.SSHAddr)
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	cfg.WatchConfig = !flagNoWatch
	cfg.Logger = logger.WithPrefix("arcade-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := firstNonEmpty(flagMetricsAddr, env.MetricsAddr); addr != "" {
		go func() {
			logger.Info("serving metrics", "address", addr)
			if err := metrics.Serve(ctx, addr); err != nil {
				logger.Error("metrics server", "error", err)
			}
		}()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting arcade SSH server on %s\n", cfg.Address)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
