package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lol-stats/internal/api"
	"lol-stats/internal/domain"
	"lol-stats/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlayerService() (*PlayerService, *testutil.MockRiotClient, *testutil.MockAccountCache) {
	riot := new(testutil.MockRiotClient)
	accounts := new(testutil.MockAccountCache)
	return NewPlayerService(riot, accounts, zerolog.Nop()), riot, accounts
}

func TestResolvePuuid_Success(t *testing.T) {
	s, riot, accounts := newPlayerService()

	riot.On("HasAPIKey").Return(true)
	riot.On("Cluster", "kr").Return("asia", nil)
	accounts.On("GetPuuid", mock.Anything, "asia", "Faker", "KR1").Return("", false)
	riot.On("GetAccount", mock.Anything, "kr", "Faker", "KR1").
		Return(&api.AccountResponse{Puuid: "puuid-faker", GameName: "Faker", TagLine: "KR1"}, nil)
	accounts.On("SetPuuid", mock.Anything, "asia", "Faker", "KR1", "puuid-faker").Return()

	puuid, err := s.ResolvePuuid(context.Background(), "Faker", "KR1", "kr")

	require.NoError(t, err)
	assert.Equal(t, "puuid-faker", puuid)
	testutil.VerifyAllMocks(t, riot, accounts)
}

func TestResolvePuuid_CacheHitSkipsUpstream(t *testing.T) {
	s, riot, accounts := newPlayerService()

	riot.On("HasAPIKey").Return(true)
	riot.On("Cluster", "na1").Return("americas", nil)
	accounts.On("GetPuuid", mock.Anything, "americas", "Doublelift", "NA1").Return("puuid-dl", true)

	puuid, err := s.ResolvePuuid(context.Background(), "Doublelift", "NA1", "na1")

	require.NoError(t, err)
	assert.Equal(t, "puuid-dl", puuid)
	riot.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	testutil.VerifyAllMocks(t, riot, accounts)
}

func TestResolvePuuid_NotFound(t *testing.T) {
	s, riot, accounts := newPlayerService()

	riot.On("HasAPIKey").Return(true)
	riot.On("Cluster", "na1").Return("americas", nil)
	accounts.On("GetPuuid", mock.Anything, "americas", "Nobody", "0000").Return("", false)
	riot.On("GetAccount", mock.Anything, "na1", "Nobody", "0000").Return(nil, &api.StatusError{Code: 404})

	_, err := s.ResolvePuuid(context.Background(), "Nobody", "0000", "na1")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	accounts.AssertNotCalled(t, "SetPuuid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolvePuuid_EmptyPuuidIsNotFound(t *testing.T) {
	s, riot, accounts := newPlayerService()

	riot.On("HasAPIKey").Return(true)
	riot.On("Cluster", "na1").Return("americas", nil)
	accounts.On("GetPuuid", mock.Anything, "americas", "Ghost", "NA1").Return("", false)
	riot.On("GetAccount", mock.Anything, "na1", "Ghost", "NA1").Return(&api.AccountResponse{}, nil)

	_, err := s.ResolvePuuid(context.Background(), "Ghost", "NA1", "na1")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestResolvePuuid_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "server error", err: &api.StatusError{Code: 500}},
		{name: "rate limited", err: &api.StatusError{Code: 429}},
		{name: "forbidden", err: &api.StatusError{Code: 403}},
		{name: "transport", err: errors.New("dial tcp: connection refused")},
		{name: "wrapped status", err: fmt.Errorf("request failed: %w", &api.StatusError{Code: 503})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, riot, accounts := newPlayerService()

			riot.On("HasAPIKey").Return(true)
			riot.On("Cluster", "euw1").Return("europe", nil)
			accounts.On("GetPuuid", mock.Anything, "europe", "Caps", "EUW").Return("", false)
			riot.On("GetAccount", mock.Anything, "euw1", "Caps", "EUW").Return(nil, tt.err)

			_, err := s.ResolvePuuid(context.Background(), "Caps", "EUW", "euw1")

			assert.ErrorIs(t, err, domain.ErrUpstream)
			assert.NotErrorIs(t, err, domain.ErrPlayerNotFound)
		})
	}
}

func TestResolvePuuid_MissingAPIKey(t *testing.T) {
	s, riot, accounts := newPlayerService()

	riot.On("HasAPIKey").Return(false)

	_, err := s.ResolvePuuid(context.Background(), "Faker", "KR1", "kr")

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	riot.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	accounts.AssertNotCalled(t, "GetPuuid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolvePuuid_UnknownRegionInStrictMode(t *testing.T) {
	s, riot, _ := newPlayerService()

	riot.On("HasAPIKey").Return(true)
	riot.On("Cluster", "xx9").Return("", fmt.Errorf("%w: xx9", domain.ErrUnknownRegion))

	_, err := s.ResolvePuuid(context.Background(), "Faker", "KR1", "xx9")

	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
	riot.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateLookup(t *testing.T) {
	tests := []struct {
		name       string
		gameName   string
		tagLine    string
		region     string
		wantRegion string
		wantErr    bool
	}{
		{name: "valid", gameName: "Hide on bush", tagLine: "KR1", region: "KR", wantRegion: "kr"},
		{name: "unicode name", gameName: "불꽃남자", tagLine: "0001", region: "kr", wantRegion: "kr"},
		{name: "dotted name", gameName: "Mr. Pants", tagLine: "NA1", region: "na1", wantRegion: "na1"},
		{name: "empty name", gameName: "", tagLine: "NA1", region: "na1", wantErr: true},
		{name: "name too long", gameName: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", tagLine: "NA1", region: "na1", wantErr: true},
		{name: "leading space", gameName: " Faker", tagLine: "KR1", region: "kr", wantErr: true},
		{name: "double space", gameName: "Hide  on bush", tagLine: "KR1", region: "kr", wantErr: true},
		{name: "name symbol", gameName: "Faker<script>", tagLine: "KR1", region: "kr", wantErr: true},
		{name: "empty tag", gameName: "Faker", tagLine: "", region: "kr", wantErr: true},
		{name: "tag with slash", gameName: "Faker", tagLine: "KR/1", region: "kr", wantErr: true},
		{name: "empty region", gameName: "Faker", tagLine: "KR1", region: "", wantErr: true},
		{name: "region symbol", gameName: "Faker", tagLine: "KR1", region: "k-r", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, err := ValidateLookup(tt.gameName, tt.tagLine, tt.region)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRegion, region)
		})
	}
}
