package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret string

	// DepositAddress is the fixed demo address shown for every deposit.
	DepositAddress string

	// Timers standing in for blockchain confirmation and payout processing.
	DepositConfirmDelay  time.Duration
	WithdrawProcessDelay time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		RedisURL:             getEnv("REDIS_URL", "localhost:6379"),
		RedisPass:            getEnv("REDIS_PASSWORD", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		DepositAddress:       getEnv("DEPOSIT_ADDRESS", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"),
		DepositConfirmDelay:  getDuration("DEPOSIT_CONFIRM_DELAY", 5*time.Second),
		WithdrawProcessDelay: getDuration("WITHDRAW_PROCESS_DELAY", 2*time.Second),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
	}
	cfg.RedisDB = db

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
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
