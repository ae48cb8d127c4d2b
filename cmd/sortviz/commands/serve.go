package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/internal/server"
)

// Server timeouts. Write timeouts are deliberately absent: the websocket
// feed holds its connection open for the whole session.
const (
	serveReadHeaderTimeout = 5 * time.Second
	serveShutdownTimeout   = 5 * time.Second
)

// ServeCommand holds the flags for the serve command.
type ServeCommand struct {
	listen     string
	interval   time.Duration
	configPath string
}

// NewServeCommand creates the serve command: expose the playback engine
// over the websocket frame feed, with metrics and health endpoints.
func NewServeCommand() *cobra.Command {
	serveCmd := &ServeCommand{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the playback engine over a websocket frame feed",
		Long: `Start the frame feed server. Clients connect to /ws, load an algorithm
and input, and steer playback with JSON commands; every cursor change
pushes a display frame back. /metrics exposes the Prometheus scrape
endpoint and /healthz reports liveness.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveCmd.Execute(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&serveCmd.listen, "listen", "", "listen address (default from config)")
	cmd.Flags().DurationVar(&serveCmd.interval, "interval", 0, "initial playback tick interval (default from config)")
	cmd.Flags().StringVar(&serveCmd.configPath, "config", "", "config file path")

	return cmd
}

// Execute runs the frame feed server until the context is cancelled or an
// interrupt arrives.
func (c *ServeCommand) Execute(ctx context.Context, out io.Writer) error {
	cfg, cfgErr := config.Load(c.configPath)
	if cfgErr != nil {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	listen := c.listen
	if listen == "" {
		listen = cfg.Serve.Listen
	}

	interval := c.interval
	if interval <= 0 {
		interval = cfg.Playback.Interval
	}

	feed, feedErr := server.New(server.Config{
		Interval: interval,
		Logger:   slog.Default(),
	})
	if feedErr != nil {
		return fmt.Errorf("init frame feed: %w", feedErr)
	}

	httpServer := &http.Server{
		Addr:              listen,
		Handler:           feed.Handler(),
		ReadHeaderTimeout: serveReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	fmt.Fprintf(out, "Frame feed listening on %s\n", listen)
	slog.Info("frame feed started", "listen", listen, "interval", interval)

	select {
	case serveErr := <-errCh:
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", serveErr)
		}

		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down frame feed")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()

	shutdownErr := httpServer.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	return nil
}
