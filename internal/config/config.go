package config

import (
	"os"
	"strconv"
	"strings"
)

// defaultOrigins are the browser clients allowed to send the auth cookie.
var defaultOrigins = []string{
	"http://localhost:5173",
	"https://task-trade-77fc5.web.app",
	"https://task-trade-77fc5.firebaseapp.com",
}

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MongoURI       string
	TokenSecret    string
	Production     bool
	AllowedOrigins []string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
}

// Load builds Config from environment with sensible defaults. MongoURI and
// TokenSecret have no defaults; missing values are fatal at startup, not here.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "5000"),
		MongoURI:       os.Getenv("DATABASE_URL"),
		TokenSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		Production:     getEnv("APP_ENV", os.Getenv("NODE_ENV")) == "production",
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", defaultOrigins),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
