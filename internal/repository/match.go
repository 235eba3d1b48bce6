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

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// GetRecent returns up to limit matches for puuid, most recent first.
func (r *MatchRepository) GetRecent(ctx context.Context, puuid string, limit int) ([]domain.Match, error) {
	rows, err := r.queries.GetRecentMatchesByPuuid(ctx, db.GetRecentMatchesByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, len(rows))
	for i, row := range rows {
		matches[i] = toDomainMatch(row)
	}
	return matches, nil
}

// Get returns ErrNotFound when the match has not been stored for puuid.
func (r *MatchRepository) Get(ctx context.Context, matchID, puuid string) (*domain.Match, error) {
	row, err := r.queries.GetMatch(ctx, db.GetMatchParams{
		MatchID: matchID,
		Puuid:   puuid,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	match := toDomainMatch(row)
	return &match, nil
}

// InsertIfAbsent reports whether a new row was written. An existing
// (match_id, puuid) row is left untouched.
func (r *MatchRepository) InsertIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	n, err := r.queries.InsertMatchIfAbsent(ctx, db.InsertMatchIfAbsentParams{
		MatchID:      match.MatchID,
		Puuid:        match.Puuid,
		GameMode:     match.GameMode,
		ChampionName: match.ChampionName,
		Kills:        int64(match.Kills),
		Deaths:       int64(match.Deaths),
		Assists:      int64(match.Assists),
		Win:          match.Win,
		GameCreation: match.GameCreation.UnixMilli(),
	})
	if err != nil {
		return false, err
	}

	if n == 0 {
		r.logger.Debug().
			Str("match_id", match.MatchID).
			Str("puuid", match.Puuid).
			Msg("match already stored, insert skipped")
	}
	return n > 0, nil
}

func toDomainMatch(row db.Match) domain.Match {
	return domain.Match{
		MatchID:      row.MatchID,
		Puuid:        row.Puuid,
		GameMode:     row.GameMode,
		ChampionName: row.ChampionName,
		Kills:        int(row.Kills),
		Deaths:       int(row.Deaths),
		Assists:      int(row.Assists),
		Win:          row.Win,
		GameCreation: time.UnixMilli(row.GameCreation),
	}
}
