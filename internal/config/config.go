package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	DataFile      string
	StaticDir     string
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Warn("⚠️ Error loading .env file")
		} else {
			log.Info("✅ .env file loaded successfully")
		}
	} else {
		log.Info("🌐 Using system environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DataFile:      getEnv("DATA_FILE", "data.json"),
		StaticDir:     getEnv("STATIC_DIR", "web"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 1440)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warnf("⚠️ %s is not a number, using default %d", key, fallback)
	}
	return fallback
}
