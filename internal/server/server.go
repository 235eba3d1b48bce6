package server

import (
	"context"
	"net/http"

	"lol-stats/internal/api"
	"lol-stats/internal/domain"
	"lol-stats/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type PlayerResolver interface {
	ResolvePuuid(ctx context.Context, gameName, tagLine, region string) (string, error)
}

type StatsProvider interface {
	GetStats(ctx context.Context, id service.Identity) (*domain.PlayerStats, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type RateLimitReporter interface {
	GetRateLimitInfo() api.RateLimitInfo
}

type StatsServer struct {
	players PlayerResolver
	stats   StatsProvider
	db      Pinger
	limits  RateLimitReporter
	logger  zerolog.Logger
}

func NewStatsServer(players PlayerResolver, stats StatsProvider, db Pinger, limits RateLimitReporter, logger zerolog.Logger) *StatsServer {
	return &StatsServer{players: players, stats: stats, db: db, limits: limits, logger: logger}
}

// Routes mounts the HTTP API on r.
func (s *StatsServer) Routes(r chi.Router) {
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)
		api.Get("/player/{gameName}/{tagLine}/{region}/stats", s.GetPlayerStats)
	})
}

func (s *StatsServer) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}
