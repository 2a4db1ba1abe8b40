package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config collects every runtime setting, read from the environment with a
// .env file as an optional source.
type Config struct {
	Addr          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	UploadDir     string

	// SyncPersistence makes the message relay wait for the store before
	// broadcasting. The default preserves the fire-and-forget behavior:
	// broadcast and persistence race, and storage failures never block
	// delivery.
	SyncPersistence bool
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return Config{
		Addr:            getEnv("ADDR", ":5000"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=user password=password dbname=messenger_db port=5432 sslmode=disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		SyncPersistence: os.Getenv("SYNC_PERSISTENCE") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
