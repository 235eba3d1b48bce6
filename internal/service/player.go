package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lol-stats/internal/api"
	"lol-stats/internal/cache"
	"lol-stats/internal/constants"
	"lol-stats/internal/domain"

	"github.com/rs/zerolog"
)

type AccountSource interface {
	HasAPIKey() bool
	Cluster(region string) (string, error)
	GetAccount(ctx context.Context, region, gameName, tagLine string) (*api.AccountResponse, error)
}

type PlayerService struct {
	riot   AccountSource
	cache  cache.AccountCache
	logger zerolog.Logger
}

func NewPlayerService(riot AccountSource, accountCache cache.AccountCache, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: riot, cache: accountCache, logger: logger}
}

// ResolvePuuid turns a riot id into a puuid. An unknown riot id yields
// domain.ErrPlayerNotFound; any other upstream failure yields domain.ErrUpstream.
func (s *PlayerService) ResolvePuuid(ctx context.Context, gameName, tagLine, region string) (string, error) {
	if !s.riot.HasAPIKey() {
		return "", domain.ErrMissingAPIKey
	}

	cluster, err := s.riot.Cluster(region)
	if err != nil {
		return "", err
	}

	cacheCtx, cancel := context.WithTimeout(ctx, constants.CacheTimeout)
	puuid, ok := s.cache.GetPuuid(cacheCtx, cluster, gameName, tagLine)
	cancel()
	if ok {
		s.logger.Debug().Str("name", gameName).Str("tag", tagLine).Str("puuid", puuid).Msg("puuid served from account cache")
		return puuid, nil
	}

	s.logger.Info().Str("name", gameName).Str("tag", tagLine).Str("region", region).Msg("resolving puuid")

	acc, err := s.riot.GetAccount(ctx, region, gameName, tagLine)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			s.logger.Info().Str("name", gameName).Str("tag", tagLine).Msg("riot id not found")
			return "", fmt.Errorf("%w: %s#%s", domain.ErrPlayerNotFound, gameName, tagLine)
		}
		s.logger.Error().Err(err).Str("name", gameName).Str("tag", tagLine).Msg("failed to fetch account")
		return "", fmt.Errorf("failed to fetch account: %w: %w", domain.ErrUpstream, err)
	}

	if acc.Puuid == "" {
		return "", fmt.Errorf("%w: no puuid returned for %s#%s", domain.ErrPlayerNotFound, gameName, tagLine)
	}

	cacheCtx, cancel = context.WithTimeout(ctx, constants.CacheTimeout)
	s.cache.SetPuuid(cacheCtx, cluster, gameName, tagLine, acc.Puuid)
	cancel()

	return acc.Puuid, nil
}
