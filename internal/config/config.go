package config

import "os"

const (
	// DefaultDBPath matches where the server process keeps its SQLite store.
	DefaultDBPath = "server/database/salary.db"

	defaultPasswordHash = "sha256"
)

type Config struct {
	DBPath       string
	PasswordHash string
}

// Load reads configuration from the environment. godotenv is loaded by main
// before this runs, so a local .env participates too.
func Load() Config {
	return Config{
		DBPath:       getEnv("SALARY_DB_PATH", DefaultDBPath),
		PasswordHash: getEnv("PASSWORD_HASH", defaultPasswordHash),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
