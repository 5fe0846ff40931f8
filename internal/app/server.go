package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/moodmate-backend/internal/config"
	"github.com/heartmarshall/moodmate-backend/internal/service/records"
	"github.com/heartmarshall/moodmate-backend/internal/service/wellness"
	"github.com/heartmarshall/moodmate-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodmate-backend/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// server is the wired HTTP handler plus what must be released on shutdown.
type server struct {
	handler http.Handler
	storage Storage
	limiter *middleware.RateLimiter
}

// newServer opens storage and wires services, handlers and middleware.
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*server, error) {
	storage, err := OpenStorage(ctx, cfg.Storage, clock)
	if err != nil {
		return nil, err
	}

	loc := cfg.Companion.Location()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ---------------------------------------------------------------------------
	// Services
	// ---------------------------------------------------------------------------

	recordStore := records.New(logger, storage, clock, loc)
	wellnessSvc := wellness.NewService(logger, recordStore, clock, wellness.NewMetrics(reg), wellness.Options{
		Location:      loc,
		ThinkingDelay: cfg.Companion.ThinkingDelay,
	})

	// ---------------------------------------------------------------------------
	// Routes
	// ---------------------------------------------------------------------------

	mux := http.NewServeMux()
	rest.NewWellnessHandler(wellnessSvc, logger).Register(mux)
	rest.NewHealthHandler(storage, cfg.Storage.Driver, BuildVersion()).Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	limiter := middleware.NewRateLimiter(cfg.RateLimit, clock, limiterCleanupInterval)
	httpMetrics := middleware.NewHTTPMetrics(reg)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
		httpMetrics.Instrument(),
	)(mux)

	return &server{handler: handler, storage: storage, limiter: limiter}, nil
}

func (s *server) Close() error {
	s.limiter.Stop()
	return s.storage.Close()
}
