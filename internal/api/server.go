package api

import (
	"context"
	"net/http"
	"time"

	"github.com/patrickwarner/northpole/internal/events"
	"github.com/patrickwarner/northpole/internal/middleware"
	"github.com/patrickwarner/northpole/internal/observability"
	"github.com/patrickwarner/northpole/internal/state"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("northpole")

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger  *zap.Logger
	State   *state.App
	Metrics observability.MetricsRegistry
	Events  events.Publisher
	GiftTTL time.Duration
	Now     func() time.Time
}

// NewServer constructs a Server. events may be nil, in which case state
// changes are not published.
func NewServer(logger *zap.Logger, app *state.App, metrics observability.MetricsRegistry, pub events.Publisher, giftTTL time.Duration) *Server {
	return &Server{
		Logger:  logger,
		State:   app,
		Metrics: metrics,
		Events:  pub,
		GiftTTL: giftTTL,
		Now:     time.Now,
	}
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// notifyUpdate publishes a state change. Failures are logged and otherwise
// ignored; the request has already succeeded.
func (s *Server) notifyUpdate(ctx context.Context, entity, action, snapshot string) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, entity, action, snapshot); err != nil {
		middleware.LoggerFromContext(ctx, s.Logger).Error("failed to publish update message",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err))
	}
}

// writeText writes body as plain text with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
