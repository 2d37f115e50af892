package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath      string
	Environment string
	// Reminders
	NotificationTime  string // HH:MM local time at which the daily check runs
	ReminderDaysAhead int    // look-ahead window in days (1-30)
	// Backup
	BackupDir string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		DBPath:            getEnv("DB_PATH", "db/filings.db"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		NotificationTime:  getEnv("NOTIFICATION_TIME", "09:00"),
		ReminderDaysAhead: getEnvInt("REMINDER_DAYS_AHEAD", 7),
		BackupDir:         getEnv("BACKUP_DIR", "backups"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
