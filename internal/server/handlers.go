package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"lol-stats/internal/constants"
	"lol-stats/internal/domain"
	"lol-stats/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	errPlayerNotFound    = "Player not found. Check username, tagline, and region"
	errMissingAPIKey     = "Riot API key is not set"
	errDatabase          = "Database error"
	errFetchPuuid        = "Failed to fetch player puuid from Riot API"
	errFetchMatches      = "Failed to fetch player matches from Riot API"
	errUnexpected        = "An unexpected error occurred"
	errInvalidPathSyntax = "Invalid path parameter encoding"
)

func (s *StatsServer) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &s.logger
	}

	gameName, err1 := url.PathUnescape(chi.URLParam(r, "gameName"))
	tagLine, err2 := url.PathUnescape(chi.URLParam(r, "tagLine"))
	region, err3 := url.PathUnescape(chi.URLParam(r, "region"))
	if err := errors.Join(err1, err2, err3); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidPathSyntax)
		return
	}

	region, err := service.ValidateLookup(gameName, tagLine, region)
	if err != nil {
		logger.Info().Err(err).Str("name", gameName).Str("tag", tagLine).Msg("rejected lookup")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info().Str("name", gameName).Str("tag", tagLine).Str("region", region).Msg("player stats requested")

	puuid, err := s.players.ResolvePuuid(ctx, gameName, tagLine, region)
	if err != nil {
		s.writeServiceError(w, *logger, err, errFetchPuuid)
		return
	}

	stats, err := s.stats.GetStats(ctx, service.Identity{
		Puuid:    puuid,
		GameName: gameName,
		TagLine:  tagLine,
		Region:   region,
	})
	if err != nil {
		s.writeServiceError(w, *logger, err, errFetchMatches)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (s *StatsServer) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
	defer cancel()

	resp := healthResponse{
		Status:    "ok",
		Database:  "ok",
		RateLimit: s.limits.GetRateLimitInfo(),
	}

	status := http.StatusOK
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("database ping failed")
		resp.Status = "degraded"
		resp.Database = "error"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

// writeServiceError maps service errors onto HTTP statuses. upstreamMessage
// names the upstream call that failed.
func (s *StatsServer) writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error, upstreamMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownRegion):
		logger.Info().Err(err).Msg("bad request")
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, errPlayerNotFound)
	case errors.Is(err, domain.ErrMissingAPIKey):
		logger.Error().Msg("RIOT_API_KEY is not set")
		writeError(w, http.StatusInternalServerError, errMissingAPIKey)
	case errors.Is(err, domain.ErrStore):
		logger.Error().Err(err).Msg("store failure")
		writeError(w, http.StatusInternalServerError, errDatabase)
	case errors.Is(err, domain.ErrUpstream):
		logger.Error().Err(err).Msg("upstream failure")
		writeError(w, http.StatusInternalServerError, upstreamMessage)
	default:
		logger.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, errUnexpected)
	}
}
