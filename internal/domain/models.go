package domain

import (
	"time"
)

type Player struct {
	Puuid           string
	GameName        string
	TagLine         string
	Region          string
	LastRefreshedAt time.Time
}

// Match is one player's participation in one match.
type Match struct {
	MatchID      string
	Puuid        string
	GameMode     string
	ChampionName string
	Kills        int
	Deaths       int
	Assists      int
	Win          bool
	GameCreation time.Time
}

type ChampionWinRate struct {
	ChampionName string
	GamesPlayed  int
	Wins         int
}

// PlayerStats is derived from stored matches on every request and never persisted.
type PlayerStats struct {
	Matches          []Match
	OverallWins      int
	OverallLosses    int
	ChampionWinRates []ChampionWinRate
	Message          string
}
