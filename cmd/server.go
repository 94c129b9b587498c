package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/inovacc/routeguide/internal/config"
	"github.com/inovacc/routeguide/internal/logger"
	"github.com/inovacc/routeguide/internal/metrics"
	"github.com/inovacc/routeguide/internal/process"
	"github.com/inovacc/routeguide/internal/server/grpc"
	"github.com/inovacc/routeguide/internal/store"
	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var (
	serverPort        int
	serverIdleTimeout time.Duration
	serverGracePeriod time.Duration
	serverFeatureDB   string
	serverMetricsAddr string
	stopTimeout       time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Manage the RouteGuide gRPC server. Use 'routeguide server start' to start it.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gRPC server",
	Long: `Start the RouteGuide gRPC server.

The feature database is loaded once at startup; a malformed or missing
database aborts the start. The server shuts down when interrupted with
Ctrl+C or SIGTERM, or after the configured idle timeout (if any). In-flight
calls get the configured grace period to finish before being cut off.`,
	RunE: runServerStart,
}

var serverStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running gRPC server",
	Long:  `Stop the RouteGuide server by signaling the running process.`,
	RunE:  runServerStop,
}

var serverStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	RunE:  runServerStatus,
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)
	serverCmd.AddCommand(serverStatusCmd)

	serverStartCmd.Flags().IntVarP(&serverPort, "port", "p", 8980, "Port to listen on")
	serverStartCmd.Flags().DurationVar(&serverIdleTimeout, "idle-timeout", 0, "Shutdown after being idle for this duration (0 to disable)")
	serverStartCmd.Flags().DurationVar(&serverGracePeriod, "grace-period", 30*time.Second, "How long in-flight calls may finish after a shutdown signal")
	serverStartCmd.Flags().StringVar(&serverFeatureDB, "feature-db", "", "Path to the JSON feature database")
	serverStartCmd.Flags().StringVar(&serverMetricsAddr, "metrics-addr", "", "Address to serve prometheus metrics on (empty to disable)")

	serverStopCmd.Flags().DurationVar(&stopTimeout, "timeout", 30*time.Second, "Timeout waiting for the server to stop")
}

func runServerStart(cmd *cobra.Command, args []string) error {
	_ = args
	log := logger.L()

	// Another instance already running - silent abort, same as restarting.
	if grpc.IsServerRunning() != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags set explicitly on the command line win over file and env.
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeout = serverIdleTimeout
	}
	if cmd.Flags().Changed("grace-period") {
		cfg.Server.GracePeriod = serverGracePeriod
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Server.MetricsAddr = serverMetricsAddr
	}
	if cmd.Flags().Changed("feature-db") {
		cfg.Features.Database = serverFeatureDB
	}

	features, err := store.Load(cfg.Features.Database)
	if err != nil {
		return fmt.Errorf("failed to load feature database: %w", err)
	}

	log.Info("feature database loaded", "path", cfg.Features.Database, "entries", features.Len())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if err := grpc.WriteServerInfo(cfg.Server.Port); err != nil {
		log.Warn("failed to write server info file", "error", err)
	}

	srv := grpc.NewServer(features, log, cfg.Server.IdleTimeout)

	if srv.IdleTracker.IsEnabled() {
		go srv.IdleTracker.Start()
		log.Info("idle shutdown enabled", "timeout", cfg.Server.IdleTimeout)
	}

	var metricsSrv *http.Server
	if cfg.Server.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsSrv = &http.Server{Addr: cfg.Server.MetricsAddr, Handler: mux}

		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("metrics listener failed", "error", err)
			}
		}()

		log.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
	}

	go func() {
		log.Info("routeguide gRPC server listening", "addr", addr)

		if err := srv.GRPCServer.Serve(lis); err != nil {
			log.Error("failed to serve", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("received shutdown signal")
	case <-srv.IdleTracker.ShutdownChan():
		log.Info("server idle, shutting down", "idle_timeout", cfg.Server.IdleTimeout)
	}

	srv.IdleTracker.Stop()

	log.Info("shutting down server", "grace_period", cfg.Server.GracePeriod)

	srv.HealthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	stopChan := make(chan struct{})

	go func() {
		srv.GRPCServer.GracefulStop()
		close(stopChan)
	}()

	select {
	case <-stopChan:
		log.Info("server stopped gracefully")
	case <-time.After(cfg.Server.GracePeriod):
		log.Warn("grace period elapsed, forcing stop")
		srv.GRPCServer.Stop()
	}

	if metricsSrv != nil {
		_ = metricsSrv.Close()
	}

	grpc.RemoveServerInfo()

	return nil
}

func runServerStop(_ *cobra.Command, _ []string) error {
	info := grpc.IsServerRunning()
	if info == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Server is not running")
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Stopping server (PID: %d)...\n", info.PID)

	if err := terminateProcess(info.PID); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := waitForProcessExit(info.PID, stopTimeout); err != nil {
		return fmt.Errorf("server did not stop within timeout: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Server stopped")

	return nil
}

func runServerStatus(_ *cobra.Command, _ []string) error {
	info := grpc.IsServerRunning()
	if info == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Server status: stopped")
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, "Server status: running")
	_, _ = fmt.Fprintf(os.Stdout, "  Address:  %s\n", info.Address)
	_, _ = fmt.Fprintf(os.Stdout, "  PID:      %d\n", info.PID)
	_, _ = fmt.Fprintf(os.Stdout, "  Instance: %s\n", info.InstanceID)
	_, _ = fmt.Fprintf(os.Stdout, "  Started:  %s\n", info.StartedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(os.Stdout, "  Uptime:   %s\n", time.Since(info.StartedAt).Round(time.Second))

	return nil
}

// terminateProcess sends a termination signal to the process with the given pid.
func terminateProcess(pid int) error {
	if runtime.GOOS == "windows" {
		return exec.Command("taskkill", "/PID", fmt.Sprintf("%d", pid), "/F").Run()
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	return proc.Signal(syscall.SIGTERM)
}

// waitForProcessExit polls the process table until pid is gone or the
// timeout elapses.
func waitForProcessExit(pid int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if !process.Take().Running(pid) {
			return nil
		}

		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("process %d still running after %v", pid, timeout)
}
