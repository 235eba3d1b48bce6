package fx

import (
	"database/sql"

	"lol-stats/internal/api"
	"lol-stats/internal/cache"
	"lol-stats/internal/config"
	"lol-stats/internal/database"
	"lol-stats/internal/db"
	"lol-stats/internal/logger"
	"lol-stats/internal/repository"
	"lol-stats/internal/server"
	"lol-stats/internal/service"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func ProvidePlayerService(riot *api.RiotClient, accounts cache.AccountCache, logger zerolog.Logger) *service.PlayerService {
	return service.NewPlayerService(riot, accounts, logger)
}

func ProvideStatsService(
	players *repository.PlayerRepository,
	matches *repository.MatchRepository,
	riot *api.RiotClient,
	clock clockwork.Clock,
	cfg *config.Config,
	logger zerolog.Logger,
) *service.StatsService {
	return service.NewStatsService(players, matches, riot, clock, cfg.CacheTTL, cfg.MatchFetchConcurrency, logger)
}

func ProvideStatsServer(
	players *service.PlayerService,
	stats *service.StatsService,
	playerRepo *repository.PlayerRepository,
	riot *api.RiotClient,
	logger zerolog.Logger,
) *server.StatsServer {
	return server.NewStatsServer(players, stats, playerRepo, riot, logger)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(ProvideClock),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	// api client + identity cache
	fx.Provide(api.NewRiotClient),
	fx.Provide(cache.New),
	// svc
	fx.Provide(ProvidePlayerService),
	fx.Provide(ProvideStatsService),
	// server
	fx.Provide(ProvideStatsServer),
)
