package app

import (
	"os"
	"strconv"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config dibaca dari environment di main; semua field punya default yang
// masuk akal untuk pengembangan lokal (mode memory tanpa dependensi luar).
type Config struct {
	Port          string
	AppEnv        string
	StorageDriver string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr string

	SessionSecret string
	SessionTTL    time.Duration

	LateThreshold time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers string
}

func LoadConfig() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		AppEnv:        getenv("APP_ENV", "development"),
		StorageDriver: getenv("STORAGE_DRIVER", DriverMemory),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "absensi"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SessionSecret: getenv("SESSION_SECRET", "dev-secret-change-me-in-production"),
		SessionTTL:    getdur("SESSION_TTL", 24*time.Hour),

		LateThreshold: time.Duration(getint("LATE_THRESHOLD_MINUTES", 15)) * time.Minute,

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getint("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getenv("SMTP_FROM", "no-reply@absensi.local"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
	}
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
