package server

import (
	"encoding/json"
	"net/http"

	"lol-stats/internal/api"
	"lol-stats/internal/domain"
)

type matchResponse struct {
	MatchID      string `json:"match_id"`
	Puuid        string `json:"puuid"`
	GameMode     string `json:"gameMode"`
	ChampionName string `json:"championName"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
	GameCreation int64  `json:"gameCreation"`
}

type championWinRateResponse struct {
	ChampionName string `json:"championName"`
	GamesPlayed  int    `json:"gamesPlayed"`
	Wins         int    `json:"wins"`
}

type statsResponse struct {
	Matches          []matchResponse           `json:"matches"`
	OverallWins      int                       `json:"overallWins"`
	OverallLosses    int                       `json:"overallLosses"`
	ChampionWinRates []championWinRateResponse `json:"championWinRates"`
	Message          string                    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string            `json:"status"`
	Database  string            `json:"database"`
	RateLimit api.RateLimitInfo `json:"rateLimit"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toStatsResponse(stats *domain.PlayerStats) statsResponse {
	resp := statsResponse{
		Matches:          make([]matchResponse, 0, len(stats.Matches)),
		OverallWins:      stats.OverallWins,
		OverallLosses:    stats.OverallLosses,
		ChampionWinRates: make([]championWinRateResponse, 0, len(stats.ChampionWinRates)),
		Message:          stats.Message,
	}

	for _, m := range stats.Matches {
		resp.Matches = append(resp.Matches, matchResponse{
			MatchID:      m.MatchID,
			Puuid:        m.Puuid,
			GameMode:     m.GameMode,
			ChampionName: m.ChampionName,
			Kills:        m.Kills,
			Deaths:       m.Deaths,
			Assists:      m.Assists,
			Win:          m.Win,
			GameCreation: m.GameCreation.UnixMilli(),
		})
	}

	for _, c := range stats.ChampionWinRates {
		resp.ChampionWinRates = append(resp.ChampionWinRates, championWinRateResponse{
			ChampionName: c.ChampionName,
			GamesPlayed:  c.GamesPlayed,
			Wins:         c.Wins,
		})
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
