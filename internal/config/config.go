package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	Environment string
	ClientURL   string
	SwaggerHost string

	// Hugging Face inference API
	HuggingFaceAPIKey string
	SimilarityURL     string
	ZeroShotURL       string
	ImageModelURL     string

	// Outbound email
	SMTPHost      string
	SMTPPort      int
	EmailAddress  string
	EmailPassword string
}

// Load builds Config from environment with sensible defaults.
// A local .env file is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/urbanuplift?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ClientURL:   getEnv("CLIENT_URL", "http://localhost:5173"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),
		SimilarityURL:     getEnv("HF_SIMILARITY_URL", "https://api-inference.huggingface.co/models/sentence-transformers/all-MiniLM-L6-v2"),
		ZeroShotURL:       getEnv("HF_ZEROSHOT_URL", "https://api-inference.huggingface.co/models/facebook/bart-large-mnli"),
		ImageModelURL:     getEnv("HF_IMAGE_URL", "https://api-inference.huggingface.co/models/google/vit-base-patch16-224"),

		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailAddress:  os.Getenv("EMAIL"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
	}
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
