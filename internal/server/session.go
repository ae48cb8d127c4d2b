package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sortviz/sortviz/internal/observability"
	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/playback"
	"github.com/sortviz/sortviz/pkg/step"
)

// session owns one connection's engine and driver. The engine's single-owner
// rule holds per session: only this session's command loop and its driver
// touch the cursor, and frame writes are serialized by writeMu.
type session struct {
	conn    *websocket.Conn
	engine  *playback.Engine
	driver  *playback.Driver
	logger  *slog.Logger
	metrics *observability.EngineMetrics

	writeMu   sync.Mutex
	algorithm generate.Algorithm
}

func newSession(conn *websocket.Conn, interval time.Duration, logger *slog.Logger, metrics *observability.EngineMetrics) *session {
	engine := playback.NewEngine()

	s := &session{
		conn:      conn,
		engine:    engine,
		driver:    playback.NewDriver(engine, interval),
		logger:    logger,
		algorithm: generate.DefaultAlgorithm,
		metrics:   metrics,
	}

	s.driver.AfterAdvance = s.onTick

	return s
}

// run reads commands until the connection drops. The driver is always
// stopped on the way out, so no tick can fire into a closed connection.
func (s *session) run(ctx context.Context) {
	defer s.driver.Stop()

	if s.metrics != nil {
		release := s.metrics.TrackSession(ctx)
		defer release()
	}

	for {
		var cmd commandMessage

		readErr := s.conn.ReadJSON(&cmd)
		if readErr != nil {
			if websocket.IsUnexpectedCloseError(readErr, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("feed connection closed", "error", readErr)
			}

			return
		}

		s.handle(ctx, &cmd)
	}
}

func (s *session) handle(ctx context.Context, cmd *commandMessage) {
	switch cmd.Type {
	case commandLoad:
		s.load(ctx, cmd)
	case commandPlay:
		s.engine.Play()
		s.driver.Start(ctx)
	case commandPause:
		s.engine.Pause()
		s.driver.Stop()
	case commandNext:
		s.engine.Pause()
		s.driver.Stop()
		s.engine.Advance()
	case commandPrev:
		s.driver.Stop()
		s.engine.Retreat()
	case commandSeek:
		s.driver.Stop()
		s.engine.Seek(cmd.Index)
	case commandSpeed:
		s.driver.SetInterval(time.Duration(cmd.IntervalMS) * time.Millisecond)
	case commandReset:
		s.driver.Stop()
		s.engine.Reset()
	default:
		s.sendError("unknown command: " + cmd.Type)

		return
	}

	s.sendFrame()
}

func (s *session) load(ctx context.Context, cmd *commandMessage) {
	s.driver.Stop()

	s.algorithm = generate.Parse(cmd.Algorithm)

	start := time.Now()
	steps := generate.Generate(s.algorithm, cmd.Values)

	if s.metrics != nil {
		s.metrics.RecordGeneration(ctx, string(s.algorithm), len(steps), time.Since(start))
	}

	s.engine.Load(steps)
	s.logger.Info("trace loaded",
		"algorithm", s.algorithm,
		"input_size", len(cmd.Values),
		"steps", len(steps),
	)
}

// onTick runs on the driver goroutine after each live advance.
func (s *session) onTick() {
	if s.metrics != nil {
		s.metrics.RecordPlaybackTick(context.Background(), string(s.algorithm))
	}

	s.sendFrame()
}

func (s *session) sendFrame() {
	current := s.engine.CurrentStep()

	frame := frameMessage{
		Type:      messageFrame,
		Algorithm: string(s.algorithm),
		Mode:      string(s.engine.Mode()),
		Cursor:    s.engine.Cursor(),
		StepCount: s.engine.StepCount(),
		Progress:  s.engine.Progress(),
		Display:   s.engine.DisplayArray(),
		Stats:     s.engine.CumulativeStats(),
		Totals:    s.engine.Totals(),
	}

	if current != nil {
		frame.Highlights = current.Highlights
		frame.Description = current.Description
	}

	if frame.Display == nil {
		frame.Display = []step.Element{}
	}

	if frame.Highlights == nil {
		frame.Highlights = []int{}
	}

	s.write(frame)
}

func (s *session) sendError(reason string) {
	s.write(errorMessage{Type: messageError, Reason: reason})
}

func (s *session) write(message any) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	writeErr := s.conn.WriteJSON(message)
	if writeErr != nil {
		s.logger.Debug("feed write failed", "error", writeErr)
	}
}
