package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	TokenTTLHours   int
	RedisAddr       string
	RateLimitPerMin int
	AllowedOrigin   string
}

func Load() Config {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	return Config{
		Port:            getenv("APP_PORT", "8080"),
		Env:             getenv("APP_ENV", "development"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "givehub"),
		JWTSecret:       getenv("JWT_SECRET", "default_secret_key"),
		TokenTTLHours:   atoi(getenv("JWT_TTL_HOURS", "72")),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "10")),
		AllowedOrigin:   getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func (c Config) Production() bool { return c.Env == "production" }

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
