package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultMessageTTL = 3 * time.Second

type Config struct {
	TelegramToken string
	DBPath        string
	AdminIDs      []int64
	Location      *time.Location
	MessageTTL    time.Duration
	ExportDir     string
}

func Load() *Config {
	// Загружаем .env файл (если существует)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return FromEnv()
}

// FromEnv собирает конфигурацию только из переменных окружения
func FromEnv() *Config {
	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getEnv("DB_PATH", "hourlogger.db"),
		AdminIDs:      parseAdminIDs(os.Getenv("ADMIN_IDS")),
		Location:      parseLocation(os.Getenv("TIMEZONE")),
		MessageTTL:    parseDuration(os.Getenv("MESSAGE_TTL"), defaultMessageTTL),
		ExportDir:     getEnv("EXPORT_DIR", os.TempDir()),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseAdminIDs(adminIDsStr string) []int64 {
	if adminIDsStr == "" {
		return []int64{}
	}

	ids := strings.Split(adminIDsStr, ",")
	var adminIDs []int64

	for _, idStr := range ids {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err == nil {
			adminIDs = append(adminIDs, id)
		}
	}

	return adminIDs
}

func parseLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, falling back to local time: %v", name, err)
		return time.Local
	}
	return loc
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid MESSAGE_TTL %q, using %s", value, defaultValue)
		return defaultValue
	}
	return d
}

// IsAdmin проверяет, является ли пользователь администратором
func (c *Config) IsAdmin(userID int64) bool {
	for _, adminID := range c.AdminIDs {
		if userID == adminID {
			return true
		}
	}
	return false
}
