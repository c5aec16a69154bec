package config

import (
	"os"
	"strconv"

	entity "tradepost/internal/domain"
)

// Config carries everything the server resolves once at startup.
type Config struct {
	ServerAddr         string
	DatabaseURL        string
	MongoURI           string
	MongoDatabase      string
	UserServiceBaseURL string
	UserServiceAPIPath string
	States             entity.StateIDs
}

type JWTConfig struct {
	Secret   []byte
	TTLHours int
}

func Load() *Config {
	return &Config{
		ServerAddr:         GetEnv("SERVER_ADDR", ":8080"),
		DatabaseURL:        GetEnv("DATABASE_URL", "postgres://localhost:5432/tradepost?sslmode=disable"),
		MongoURI:           GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      GetEnv("MONGO_DATABASE", "tradepost"),
		UserServiceBaseURL: GetEnv("USER_SERVICE_BASE_URL", "http://localhost:8081"),
		UserServiceAPIPath: GetEnv("USER_SERVICE_API_PATH", "/api/users"),
		States: entity.StateIDs{
			Published: GetEnvInt("STATE_PUBLISHED_ID", 1),
			InProcess: GetEnvInt("STATE_IN_PROCESS_ID", 5),
			Approved:  GetEnvInt("STATE_APPROVED_ID", 6),
		},
	}
}

func LoadJWT() JWTConfig {
	return JWTConfig{
		Secret:   []byte(GetEnv("JWT_SECRET", "dev-secret")),
		TTLHours: GetEnvInt("JWT_TTL_HOURS", 24),
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
