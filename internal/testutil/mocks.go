package testutil

import (
	"context"
	"testing"

	"lol-stats/internal/api"
	"lol-stats/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Store mocks.
// ============================================================================

type MockPlayerStore struct {
	mock.Mock
}

func (m *MockPlayerStore) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	args := m.Called(ctx, puuid)
	if p := args.Get(0); p != nil {
		return p.(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerStore) Upsert(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) Get(ctx context.Context, matchID, puuid string) (*domain.Match, error) {
	args := m.Called(ctx, matchID, puuid)
	if match := args.Get(0); match != nil {
		return match.(*domain.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchStore) GetRecent(ctx context.Context, puuid string, limit int) ([]domain.Match, error) {
	args := m.Called(ctx, puuid, limit)
	if matches := args.Get(0); matches != nil {
		return matches.([]domain.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchStore) InsertIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

// ============================================================================
// Upstream mocks.
// ============================================================================

type MockRiotClient struct {
	mock.Mock
}

func (m *MockRiotClient) HasAPIKey() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRiotClient) Cluster(region string) (string, error) {
	args := m.Called(region)
	return args.String(0), args.Error(1)
}

func (m *MockRiotClient) GetAccount(ctx context.Context, region, gameName, tagLine string) (*api.AccountResponse, error) {
	args := m.Called(ctx, region, gameName, tagLine)
	if acc := args.Get(0); acc != nil {
		return acc.(*api.AccountResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRiotClient) GetMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	args := m.Called(ctx, region, puuid, count)
	if ids := args.Get(0); ids != nil {
		return ids.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRiotClient) GetMatch(ctx context.Context, region, matchID string) (*api.MatchResponse, error) {
	args := m.Called(ctx, region, matchID)
	if match := args.Get(0); match != nil {
		return match.(*api.MatchResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// ============================================================================
// Cache mocks.
// ============================================================================

type MockAccountCache struct {
	mock.Mock
}

func (m *MockAccountCache) GetPuuid(ctx context.Context, cluster, gameName, tagLine string) (string, bool) {
	args := m.Called(ctx, cluster, gameName, tagLine)
	return args.String(0), args.Bool(1)
}

func (m *MockAccountCache) SetPuuid(ctx context.Context, cluster, gameName, tagLine, puuid string) {
	m.Called(ctx, cluster, gameName, tagLine, puuid)
}

func (m *MockAccountCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MatchDetail builds an upstream match payload with a single participant.
func MatchDetail(matchID, puuid, champion string, win bool, gameCreation int64) *api.MatchResponse {
	resp := &api.MatchResponse{}
	resp.Metadata.MatchID = matchID
	resp.Metadata.Participants = []string{puuid}
	resp.Info.GameCreation = gameCreation
	resp.Info.GameMode = "CLASSIC"
	resp.Info.Participants = []api.Participant{{
		Puuid:        puuid,
		ChampionName: champion,
		Kills:        5,
		Deaths:       3,
		Assists:      7,
		Win:          win,
	}}
	return resp
}
