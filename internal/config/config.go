// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultLogLevel     = "info"
)

type Config struct {
	ServerAddress  string
	ContextTimeout time.Duration

	DatabaseDSN string

	CacheAddr string
	CachePass string
	CacheDB   int

	BloomBitSize uint64
	JWTSecret    string
	LogLevel     string
}

// Load reads .env when present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file loaded, using process environment")
	}

	cfg := Config{
		ServerAddress: getEnv("SERVER_ADDRESS", defaultAddress),
		DatabaseDSN:   databaseDSN(),
		CacheAddr:     getEnv("CACHE_HOST", "localhost") + ":" + getEnv("CACHE_PORT", "6379"),
		CachePass:     os.Getenv("CACHE_PASS"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
	}

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil || timeout <= 0 {
		logrus.Info("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	cfg.CacheDB, err = strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		cfg.CacheDB = defaultCacheDB
	}

	cfg.BloomBitSize, err = strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || cfg.BloomBitSize == 0 {
		logrus.Info("failed to parse bloom bit size, using default size")
		cfg.BloomBitSize = defaultBloomBitSize
	}
	return cfg
}

func databaseDSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		os.Getenv("DATABASE_USER"),
		os.Getenv("DATABASE_PASS"),
		getEnv("DATABASE_HOST", "localhost"),
		getEnv("DATABASE_PORT", "3306"),
		os.Getenv("DATABASE_NAME"),
	)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", getEnv("DATABASE_LOC", "UTC"))
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
