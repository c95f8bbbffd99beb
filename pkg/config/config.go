package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	SecretKey       string
	PostgresConnStr string
	SQLiteFile      string
	MediaDir        string
	S3Bucket        string
	S3Region        string
	TemplatesGlob   string
	PostsPerPage    int
	FeedCacheTTL    time.Duration
}

// Load reads the configuration from the environment, with a .env file
// picked up when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		SecretKey:       getEnv("SECRET_KEY", "dev-only-insecure-key"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		SQLiteFile:      getEnv("SQLITE_FILE", "blogicum.db"),
		MediaDir:        getEnv("MEDIA_DIR", "media"),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		TemplatesGlob:   getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		PostsPerPage:    getEnvIntMin("POSTS_PER_PAGE", 10, 1),
		FeedCacheTTL:    time.Duration(getEnvInt("FEED_CACHE_SECONDS", 20)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvIntMin(key string, fallback, min int) int {
	n := getEnvInt(key, fallback)
	if n < min {
		log.Printf("Invalid %s=%d, using %d", key, n, fallback)
		return fallback
	}
	return n
}
