package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"lol-stats/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey            string
	RiotBaseURL           string
	DBPath                string
	ServerPort            string
	LogLevel              string
	RedisAddr             string
	RedisPassword         string
	StrictRegions         bool
	MatchFetchConcurrency int
	RiotRequestsPerSecond float64
	CORSAllowedOrigins    []string
	CacheTTL              time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:            getEnv("RIOT_API_KEY", ""),
		RiotBaseURL:           getEnv("RIOT_API_BASE_URL", "https://%s.api.riotgames.com"),
		DBPath:                getEnv("DB_PATH", "lol_stats.db"),
		ServerPort:            getEnv("SERVER_PORT", "3001"),
		LogLevel:              getEnv("LOG_LEVEL", "debug"),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		StrictRegions:         getEnvBool("STRICT_REGIONS", false),
		MatchFetchConcurrency: getEnvInt("MATCH_FETCH_CONCURRENCY", constants.DefaultMatchFetchConcurrency),
		RiotRequestsPerSecond: getEnvFloat("RIOT_REQUESTS_PER_SECOND", constants.DefaultRiotRequestsPerSecond),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheTTL:              constants.PlayerRefreshTTL,
	}

	if cfg.MatchFetchConcurrency < 1 || cfg.MatchFetchConcurrency > constants.MaxMatchFetchConcurrency {
		logger.Warn().
			Int("value", cfg.MatchFetchConcurrency).
			Msg("MATCH_FETCH_CONCURRENCY out of range, using default")
		cfg.MatchFetchConcurrency = constants.DefaultMatchFetchConcurrency
	}
	if cfg.RiotRequestsPerSecond <= 0 {
		cfg.RiotRequestsPerSecond = constants.DefaultRiotRequestsPerSecond
	}

	// the key is checked per request so the server can still report a useful error
	if cfg.RiotAPIKey == "" {
		logger.Warn().Msg("RIOT_API_KEY is not set, player lookups will fail")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("redis_enabled", cfg.RedisAddr != "").
		Bool("strict_regions", cfg.StrictRegions).
		Int("match_fetch_concurrency", cfg.MatchFetchConcurrency).
		Float64("riot_rps", cfg.RiotRequestsPerSecond).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var Module = fx.Provide(Load)
