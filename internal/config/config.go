package config

import (
	"os"
)

type Config struct {
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	Port      string
	Env       string
	BaseURL   string
	QRDir     string
	PosterDir string
	LogLevel  string
}

func NewConfigFromEnv() (*Config, error) {
	cfg := &Config{
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASSWORD", "postgres"),
		DBName:    getenv("DB_NAME", "snaparoo"),
		DBSSLMode: getenv("DB_SSLMODE", "disable"),
		Port:      getenv("PORT", "3000"),
		Env:       getenv("ENV", "development"),
		BaseURL:   getenv("BASE_URL", "http://localhost:3000"),
		QRDir:     getenv("QR_DIR", "./uploads/qrcodes"),
		PosterDir: getenv("POSTER_DIR", "./uploads/posters"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
