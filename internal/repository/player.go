package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lol-stats/internal/db"
	"lol-stats/internal/domain"

	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("not found")

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Get returns ErrNotFound when no row exists for puuid.
func (r *PlayerRepository) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByPuuid(ctx, puuid)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("puuid", puuid).Msg("player not found in store")
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Player{
		Puuid:           player.Puuid,
		GameName:        player.GameName,
		TagLine:         player.TagLine,
		Region:          player.Region,
		LastRefreshedAt: time.UnixMilli(player.LastRefreshedAt),
	}, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	r.logger.Debug().
		Str("puuid", player.Puuid).
		Time("last_refreshed_at", player.LastRefreshedAt).
		Msg("upserting player")

	return r.queries.UpsertPlayer(ctx, db.UpsertPlayerParams{
		Puuid:           player.Puuid,
		GameName:        player.GameName,
		TagLine:         player.TagLine,
		Region:          player.Region,
		LastRefreshedAt: player.LastRefreshedAt.UnixMilli(),
	})
}

func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
