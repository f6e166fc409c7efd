package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/server"
)

func newServeCommand() *cobra.Command {
	var (
		dir  string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dir, addr)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "finstat directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides FINSTAT_ADDR and config)")

	return cmd
}

func runServe(dir, addr string) error {
	_ = godotenv.Load()

	cfg, store, err := openLedger(dir)
	if err != nil {
		return err
	}

	if addr == "" {
		addr = os.Getenv("FINSTAT_ADDR")
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	srv, err := server.New(addr, cfg, store)
	if err != nil {
		return err
	}

	// Graceful shutdown handling.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finstat dashboard", "addr", addr, "ledger", store.Path())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
	return nil
}
