package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"lol-stats/internal/api"
	"lol-stats/internal/constants"
	"lol-stats/internal/domain"
	"lol-stats/internal/repository"

	"github.com/jonboulle/clockwork"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	MessageNoMatches       = "No matches found for this player"
	MessageNoCachedMatches = "No matches found in DB for this player (cache)."
)

type PlayerStore interface {
	Get(ctx context.Context, puuid string) (*domain.Player, error)
	Upsert(ctx context.Context, player *domain.Player) error
}

type MatchStore interface {
	Get(ctx context.Context, matchID, puuid string) (*domain.Match, error)
	GetRecent(ctx context.Context, puuid string, limit int) ([]domain.Match, error)
	InsertIfAbsent(ctx context.Context, match *domain.Match) (bool, error)
}

type MatchSource interface {
	GetMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, region, matchID string) (*api.MatchResponse, error)
}

// Identity is a resolved player together with the riot id it was looked up by.
type Identity struct {
	Puuid    string
	GameName string
	TagLine  string
	Region   string
}

type StatsService struct {
	players     PlayerStore
	matches     MatchStore
	riot        MatchSource
	clock       clockwork.Clock
	ttl         time.Duration
	concurrency int
	logger      zerolog.Logger
}

func NewStatsService(players PlayerStore, matches MatchStore, riot MatchSource, clock clockwork.Clock, ttl time.Duration, concurrency int, logger zerolog.Logger) *StatsService {
	if ttl <= 0 {
		ttl = constants.PlayerRefreshTTL
	}
	if concurrency <= 0 {
		concurrency = constants.DefaultMatchFetchConcurrency
	}
	return &StatsService{
		players:     players,
		matches:     matches,
		riot:        riot,
		clock:       clock,
		ttl:         ttl,
		concurrency: concurrency,
		logger:      logger,
	}
}

type matchOutcome int

const (
	outcomeSkipped matchOutcome = iota
	outcomeCached
	outcomeFetched
)

// GetStats serves a player's stats from the store while the player row is
// fresh, and otherwise refreshes the recent matches from upstream first.
func (s *StatsService) GetStats(ctx context.Context, id Identity) (*domain.PlayerStats, error) {
	logger := s.logger.With().Str("pass_id", passID()).Str("puuid", id.Puuid).Logger()

	fresh, err := s.isFresh(ctx, id.Puuid)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read player")
		return nil, fmt.Errorf("failed to read player: %w: %w", domain.ErrStore, err)
	}

	if fresh {
		logger.Info().Msg("returning cached stats")
		return s.statsFromStore(ctx, id.Puuid, MessageNoCachedMatches)
	}

	logger.Info().Str("region", id.Region).Msg("refreshing player matches")

	player := &domain.Player{
		Puuid:           id.Puuid,
		GameName:        id.GameName,
		TagLine:         id.TagLine,
		Region:          id.Region,
		LastRefreshedAt: s.clock.Now(),
	}
	if err := s.players.Upsert(ctx, player); err != nil {
		logger.Warn().Err(err).Msg("failed to upsert player, continuing")
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	ids, err := s.riot.GetMatchIDs(apiCtx, id.Region, id.Puuid, constants.RecentMatchCount)
	cancel()
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch match ids")
		return nil, fmt.Errorf("failed to fetch match ids: %w: %w", domain.ErrUpstream, err)
	}

	if len(ids) == 0 {
		logger.Info().Msg("no matches found upstream")
		stats := Aggregate(nil)
		stats.Message = MessageNoMatches
		return &stats, nil
	}

	s.resolveMatches(ctx, logger, id, ids)

	return s.statsFromStore(ctx, id.Puuid, MessageNoMatches)
}

func (s *StatsService) isFresh(ctx context.Context, puuid string) (bool, error) {
	player, err := s.players.Get(ctx, puuid)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.clock.Since(player.LastRefreshedAt) < s.ttl, nil
}

func (s *StatsService) statsFromStore(ctx context.Context, puuid, emptyMessage string) (*domain.PlayerStats, error) {
	matches, err := s.matches.GetRecent(ctx, puuid, constants.RecentMatchCount)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to read matches")
		return nil, fmt.Errorf("failed to read matches: %w: %w", domain.ErrStore, err)
	}

	stats := Aggregate(matches)
	if len(stats.Matches) == 0 {
		stats.Message = emptyMessage
	}
	return &stats, nil
}

// resolveMatches makes sure every id is in the store. Each id settles on its
// own; a failure only drops that match.
func (s *StatsService) resolveMatches(ctx context.Context, logger zerolog.Logger, id Identity, ids []string) {
	var cached, fetched, skipped atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, matchID := range ids {
		matchID := matchID
		g.Go(func() error {
			switch s.resolveMatch(ctx, logger, id, matchID) {
			case outcomeCached:
				cached.Add(1)
			case outcomeFetched:
				fetched.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Info().
		Int("requested", len(ids)).
		Int32("cached", cached.Load()).
		Int32("fetched", fetched.Load()).
		Int32("skipped", skipped.Load()).
		Msg("match reconciliation complete")
}

func (s *StatsService) resolveMatch(ctx context.Context, logger zerolog.Logger, id Identity, matchID string) matchOutcome {
	logger = logger.With().Str("match_id", matchID).Logger()

	_, err := s.matches.Get(ctx, matchID, id.Puuid)
	if err == nil {
		return outcomeCached
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Warn().Err(err).Msg("failed to check stored match, skipping")
		return outcomeSkipped
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	detail, err := s.riot.GetMatch(apiCtx, id.Region, matchID)
	cancel()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to fetch match detail, skipping")
		return outcomeSkipped
	}

	p := detail.FindParticipant(id.Puuid)
	if p == nil {
		logger.Debug().Msg("player not among participants, skipping")
		return outcomeSkipped
	}

	match := &domain.Match{
		MatchID:      matchID,
		Puuid:        id.Puuid,
		GameMode:     detail.Info.GameMode,
		ChampionName: p.ChampionName,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		Win:          p.Win,
		GameCreation: time.UnixMilli(detail.Info.GameCreation),
	}

	if _, err := s.matches.InsertIfAbsent(ctx, match); err != nil {
		logger.Warn().Err(err).Msg("failed to store match, skipping")
		return outcomeSkipped
	}
	return outcomeFetched
}

func passID() string {
	id, err := gonanoid.New(10)
	if err != nil {
		return "unknown"
	}
	return id
}
