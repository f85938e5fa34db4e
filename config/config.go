package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBUrl    string
	LogLevel string
	GinMode  string
	// Browser origins allowed in addition to same-origin requests
	CORSAllowedOrigins []string
	// Auth: tokens are issued elsewhere, this service only verifies them
	JWTSecret string
	JWKSURL   string // optional RS256 key set
	AdminKey  string
	// Redis score cache (optional)
	RedisURL      string
	RedisPassword string
	ScoreCacheTTL time.Duration
	// Scoring
	ScoreRuleVersion        string
	LeaderboardDefaultLimit int
	LeaderboardMaxLimit     int
	// Requests per minute per client IP
	RateLimitPerMinute            int
	LeaderboardRateLimitPerMinute int
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Applied when SCORE_CACHE_TTL_SECONDS is below 1; entries must always expire.
const defaultScoreCacheTTL = 600 * time.Second

func LoadConfig() (*Config, error) {
	// .env is only present locally; production relies on the real environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		DBUrl:                   getEnv("DATABASE_URL", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		GinMode:                 getEnv("GIN_MODE", "debug"),
		CORSAllowedOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		JWKSURL:                 getEnv("JWT_JWKS_URL", ""),
		AdminKey:                getEnv("ADMIN_KEY", ""),
		RedisURL:                strings.TrimSpace(getEnv("REDIS_URL", "")),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		ScoreCacheTTL:           time.Duration(getEnvInt("SCORE_CACHE_TTL_SECONDS", int(defaultScoreCacheTTL/time.Second))) * time.Second,
		ScoreRuleVersion:        getEnv("SCORE_RULE_VERSION", "1"),
		LeaderboardDefaultLimit: getEnvInt("LEADERBOARD_DEFAULT_LIMIT", 50),
		LeaderboardMaxLimit:     getEnvInt("LEADERBOARD_MAX_LIMIT", 200),

		RateLimitPerMinute:            getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		LeaderboardRateLimitPerMinute: getEnvInt("LEADERBOARD_RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.ScoreCacheTTL < time.Second {
		cfg.ScoreCacheTTL = defaultScoreCacheTTL
	}
	if cfg.LeaderboardMaxLimit < 1 {
		cfg.LeaderboardMaxLimit = 200
	}
	if cfg.LeaderboardDefaultLimit < 1 || cfg.LeaderboardDefaultLimit > cfg.LeaderboardMaxLimit {
		cfg.LeaderboardDefaultLimit = min(50, cfg.LeaderboardMaxLimit)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: JWT_SECRET not configured. Authenticated routes will reject every token.")
	}
	if cfg.AdminKey == "" {
		log.Println("WARNING: ADMIN_KEY not configured. Admin verification routes are disabled.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Scores will be computed on every request.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
