package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"lol-stats/internal/config"
	"lol-stats/internal/constants"
	"lol-stats/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

type RiotClient struct {
	apiKey        string
	baseURL       string
	strictRegions bool
	client        *fasthttp.Client
	limiter       *rate.Limiter
	logger        zerolog.Logger
	rateLimitMu   sync.RWMutex
	rateLimit     RateLimitInfo
}

// RateLimitInfo mirrors the last X-App-Rate-Limit / X-Method-Rate-Limit headers seen.
type RateLimitInfo struct {
	AppLimit    string `json:"appLimit"`
	AppCount    string `json:"appCount"`
	MethodLimit string `json:"methodLimit"`
	MethodCount string `json:"methodCount"`

	// seconds, only set on 429
	RetryAfter int `json:"retryAfter"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusError is returned for any non-200 upstream response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.Code)
}

func NewRiotClient(cfg *config.Config, logger zerolog.Logger) *RiotClient {
	burst := int(cfg.RiotRequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &RiotClient{
		apiKey:        cfg.RiotAPIKey,
		baseURL:       cfg.RiotBaseURL,
		strictRegions: cfg.StrictRegions,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RiotRequestsPerSecond), burst),
		logger:  logger,
		rateLimit: RateLimitInfo{
			UpdatedAt: time.Now(),
		},
	}
}

func (c *RiotClient) HasAPIKey() bool {
	return c.apiKey != ""
}

// Cluster resolves the routing host for region. Unknown regions fall back to
// DefaultCluster unless strict regions are enabled.
func (c *RiotClient) Cluster(region string) (string, error) {
	cluster, ok := ClusterFor(region)
	if ok {
		return cluster, nil
	}
	if c.strictRegions {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}
	c.logger.Warn().
		Str("region", region).
		Str("cluster", cluster).
		Msg("unknown region, falling back to default cluster")
	return cluster, nil
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.RetryAfter = 0
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) host(cluster string) string {
	if strings.Contains(c.baseURL, "%s") {
		return fmt.Sprintf(c.baseURL, cluster)
	}
	return strings.TrimRight(c.baseURL, "/")
}

func (c *RiotClient) GetAccount(ctx context.Context, region, gameName, tagLine string) (*AccountResponse, error) {
	cluster, err := c.Cluster(region)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.host(cluster), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountResponse](ctx, c, endpoint)
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	cluster, err := c.Cluster(region)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.host(cluster), url.PathEscape(puuid), count)
	ids, err := doRequest[[]string](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, region, matchID string) (*MatchResponse, error) {
	cluster, err := c.Cluster(region)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.host(cluster), url.PathEscape(matchID))
	return doRequest[MatchResponse](ctx, c, endpoint)
}

func doRequest[T any](ctx context.Context, client *RiotClient, endpoint string) (*T, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type AccountResponse struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int64         `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	Puuid        string `json:"puuid"`
	ChampionName string `json:"championName"`
	ChampionID   int    `json:"championId"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
}

// FindParticipant returns the participant entry for puuid, or nil.
func (m *MatchResponse) FindParticipant(puuid string) *Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].Puuid == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}
