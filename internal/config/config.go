package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	JWTSecret      string
	AccessTokenTTL time.Duration
	CORSOrigin     string
	StorageDriver  string
	UploadDir      string
	PublicBaseURL  string
	MegaLogin      string
	MegaPassword   string
	MegaFolder     string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "recipebook"),
		Port:           getEnvOrDefault("PORT", "5000"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		CORSOrigin:     getEnvOrDefault("CORS_ORIGIN", "http://localhost:8000"),
		StorageDriver:  getEnvOrDefault("STORAGE_DRIVER", "local"),
		UploadDir:      getEnvOrDefault("UPLOAD_DIR", "./public/uploads"),
		PublicBaseURL:  getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:5000"),
		MegaLogin:      getEnvOrDefault("MEGA_LOGIN", ""),
		MegaPassword:   getEnvOrDefault("MEGA_PASSWORD", ""),
		MegaFolder:     getEnvOrDefault("MEGA_FOLDER", "recipebook"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
