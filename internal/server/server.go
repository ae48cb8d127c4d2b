// Package server exposes the playback engine to external renderers over a
// websocket frame feed: every cursor change pushes a fully resolved display
// frame, and clients steer playback with small JSON commands. The same mux
// mounts the Prometheus scrape endpoint.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sortviz/sortviz/internal/observability"
)

// meterName identifies the sortviz meter on the shared provider.
const meterName = "sortviz"

// feedBufferSize is the websocket read/write buffer size.
const feedBufferSize = 4096

// Config holds the frame feed server settings.
type Config struct {
	// Interval is the initial playback tick interval for new sessions.
	Interval time.Duration
	// Logger receives session lifecycle logs; nil falls back to the default.
	Logger *slog.Logger
}

// Server is the frame feed endpoint set.
type Server struct {
	config   Config
	upgrader websocket.Upgrader
	metrics  *observability.EngineMetrics
	scrape   http.Handler
}

// New creates a Server with its metric instruments wired to a fresh
// Prometheus registry.
func New(config Config) (*Server, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	scrape, provider, promErr := observability.PrometheusHandler()
	if promErr != nil {
		return nil, fmt.Errorf("init metrics exporter: %w", promErr)
	}

	metrics, metricErr := observability.NewEngineMetrics(provider.Meter(meterName))
	if metricErr != nil {
		return nil, fmt.Errorf("init metric instruments: %w", metricErr)
	}

	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  feedBufferSize,
			WriteBufferSize: feedBufferSize,
		},
		metrics: metrics,
		scrape:  scrape,
	}, nil
}

// Handler returns the HTTP mux with the feed, scrape, and health endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", s.handleFeed)
	mux.Handle("/metrics", s.scrape)
	mux.HandleFunc("/healthz", handleHealth)

	return mux
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, upgradeErr := s.upgrader.Upgrade(w, r, nil)
	if upgradeErr != nil {
		s.config.Logger.Warn("websocket upgrade failed", "error", upgradeErr)

		return
	}

	defer conn.Close()

	s.config.Logger.Info("feed connected", "remote", conn.RemoteAddr().String())

	sess := newSession(conn, s.config.Interval, s.config.Logger, s.metrics)
	sess.run(r.Context())
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
