package service

import (
	"sort"

	"lol-stats/internal/constants"
	"lol-stats/internal/domain"
)

// Aggregate computes win/loss totals and the top champions for matches, which
// must be ordered most recent first. Only the first RecentMatchCount matches
// are considered.
//
// Champions rank by games played, then wins, then name ascending. Matches
// without a champion name count toward the totals but not toward any champion.
func Aggregate(matches []domain.Match) domain.PlayerStats {
	if len(matches) > constants.RecentMatchCount {
		matches = matches[:constants.RecentMatchCount]
	}

	stats := domain.PlayerStats{
		Matches:          make([]domain.Match, len(matches)),
		ChampionWinRates: []domain.ChampionWinRate{},
	}
	copy(stats.Matches, matches)

	byChampion := make(map[string]*domain.ChampionWinRate)
	for _, m := range matches {
		if m.Win {
			stats.OverallWins++
		}

		if m.ChampionName == "" {
			continue
		}
		c, ok := byChampion[m.ChampionName]
		if !ok {
			c = &domain.ChampionWinRate{ChampionName: m.ChampionName}
			byChampion[m.ChampionName] = c
		}
		c.GamesPlayed++
		if m.Win {
			c.Wins++
		}
	}
	stats.OverallLosses = len(matches) - stats.OverallWins

	ranked := make([]domain.ChampionWinRate, 0, len(byChampion))
	for _, c := range byChampion {
		ranked = append(ranked, *c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].GamesPlayed != ranked[j].GamesPlayed {
			return ranked[i].GamesPlayed > ranked[j].GamesPlayed
		}
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].ChampionName < ranked[j].ChampionName
	})

	if len(ranked) > constants.ChampionTopN {
		ranked = ranked[:constants.ChampionTopN]
	}
	stats.ChampionWinRates = append(stats.ChampionWinRates, ranked...)

	return stats
}
