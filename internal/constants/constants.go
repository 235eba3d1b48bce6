package constants

import "time"

const (
	PlayerRefreshTTL = time.Hour
	AccountCacheTTL  = 24 * time.Hour
)

const (
	RecentMatchCount = 20
	ChampionTopN     = 2
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	CacheTimeout       = 2 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 2 * time.Minute
	ShutdownTimeout    = 5 * time.Second
)

const (
	DefaultMatchFetchConcurrency = 20
	MaxMatchFetchConcurrency     = 100
	DefaultRiotRequestsPerSecond = 20
)
