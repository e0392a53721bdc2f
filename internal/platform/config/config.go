package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the server needs from the environment. Keeping
// parsing here lets main stay lean and services stay env-free.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Redis        RedisConfig
	Notification NotificationConfig
	RateLimit    RateLimitConfig
}

// RedisConfig configures the optional redis-backed rate limiter.
// An empty URL means redis is not configured and the in-memory limiter is used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NotificationConfig configures outbound confirmation email.
// An empty Sender disables the SES dispatcher; confirmations are then logged only.
type NotificationConfig struct {
	AWSRegion string
	Sender    string
}

// RateLimitConfig bounds submission attempts per applicant.
type RateLimitConfig struct {
	SubmitLimit  int
	SubmitWindow time.Duration
}

// FromEnv builds a Config from environment variables with development defaults.
func FromEnv() Config {
	return Config{
		Addr:          envOr("PORTAL_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     envOr("JWT_ISSUER", "abroad-portal"),
		JWTAudience:   envOr("JWT_AUDIENCE", "abroad-portal"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Notification: NotificationConfig{
			AWSRegion: envOr("AWS_REGION", "eu-west-1"),
			Sender:    os.Getenv("NOTIFICATION_SENDER"),
		},
		RateLimit: RateLimitConfig{
			SubmitLimit:  envInt("SUBMIT_RATE_LIMIT", 5),
			SubmitWindow: envDuration("SUBMIT_RATE_WINDOW", time.Minute),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
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

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
