package service

import (
	"fmt"
	"testing"
	"time"

	"lol-stats/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatches(champion string, games, wins int) []domain.Match {
	out := make([]domain.Match, games)
	for i := range out {
		out[i] = domain.Match{
			MatchID:      fmt.Sprintf("%s_%d", champion, i),
			ChampionName: champion,
			Win:          i < wins,
		}
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.OverallWins)
	assert.Equal(t, 0, stats.OverallLosses)
	assert.NotNil(t, stats.Matches)
	assert.NotNil(t, stats.ChampionWinRates)
	assert.Empty(t, stats.ChampionWinRates)
}

func TestAggregate_TwentyMatchTie(t *testing.T) {
	matches := append(buildMatches("Ahri", 10, 6), buildMatches("Zed", 10, 6)...)

	stats := Aggregate(matches)

	assert.Equal(t, 12, stats.OverallWins)
	assert.Equal(t, 8, stats.OverallLosses)
	require.Len(t, stats.ChampionWinRates, 2)
	assert.Equal(t, domain.ChampionWinRate{ChampionName: "Ahri", GamesPlayed: 10, Wins: 6}, stats.ChampionWinRates[0])
	assert.Equal(t, domain.ChampionWinRate{ChampionName: "Zed", GamesPlayed: 10, Wins: 6}, stats.ChampionWinRates[1])
}

func TestAggregate_TieOnGamesBrokenByWins(t *testing.T) {
	matches := append(buildMatches("Lux", 5, 1), buildMatches("Jinx", 5, 4)...)
	matches = append(matches, buildMatches("Annie", 2, 2)...)

	stats := Aggregate(matches)

	require.Len(t, stats.ChampionWinRates, 2)
	assert.Equal(t, "Jinx", stats.ChampionWinRates[0].ChampionName)
	assert.Equal(t, "Lux", stats.ChampionWinRates[1].ChampionName)
}

func TestAggregate_GamesOutrankWins(t *testing.T) {
	matches := append(buildMatches("Teemo", 3, 0), buildMatches("Garen", 2, 2)...)
	matches = append(matches, buildMatches("Darius", 1, 1)...)

	stats := Aggregate(matches)

	require.Len(t, stats.ChampionWinRates, 2)
	assert.Equal(t, "Teemo", stats.ChampionWinRates[0].ChampionName)
	assert.Equal(t, "Garen", stats.ChampionWinRates[1].ChampionName)
}

func TestAggregate_AtMostTwoChampions(t *testing.T) {
	var matches []domain.Match
	for i := 0; i < 10; i++ {
		matches = append(matches, buildMatches(fmt.Sprintf("Champ%02d", i), 1, i%2)...)
	}

	stats := Aggregate(matches)

	assert.Len(t, stats.ChampionWinRates, 2)
	assert.Equal(t, 10, stats.OverallWins+stats.OverallLosses)
}

func TestAggregate_MissingChampionCountsTowardTotalsOnly(t *testing.T) {
	matches := []domain.Match{
		{MatchID: "1", ChampionName: "", Win: true},
		{MatchID: "2", ChampionName: "", Win: false},
		{MatchID: "3", ChampionName: "Sona", Win: true},
	}

	stats := Aggregate(matches)

	assert.Equal(t, 2, stats.OverallWins)
	assert.Equal(t, 1, stats.OverallLosses)
	require.Len(t, stats.ChampionWinRates, 1)
	assert.Equal(t, "Sona", stats.ChampionWinRates[0].ChampionName)
}

func TestAggregate_CapsWindowAtTwenty(t *testing.T) {
	base := time.UnixMilli(1_700_000_000_000)
	var matches []domain.Match
	for i := 0; i < 30; i++ {
		matches = append(matches, domain.Match{
			MatchID:      fmt.Sprintf("NA1_%d", i),
			ChampionName: "Ezreal",
			Win:          i >= 20,
			GameCreation: base.Add(-time.Duration(i) * time.Hour),
		})
	}

	stats := Aggregate(matches)

	assert.Len(t, stats.Matches, 20)
	assert.Equal(t, 0, stats.OverallWins)
	assert.Equal(t, 20, stats.OverallLosses)
	assert.Equal(t, 20, stats.ChampionWinRates[0].GamesPlayed)
}

func TestAggregate_Deterministic(t *testing.T) {
	matches := append(buildMatches("B", 3, 1), buildMatches("A", 3, 1)...)
	matches = append(matches, buildMatches("C", 3, 1)...)

	first := Aggregate(matches)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.ChampionWinRates, Aggregate(matches).ChampionWinRates)
	}
	assert.Equal(t, "A", first.ChampionWinRates[0].ChampionName)
	assert.Equal(t, "B", first.ChampionWinRates[1].ChampionName)
}
