package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const defaultTimezone = "UTC"

// Config holds everything the service reads from the environment.
// godotenv.Load() in main makes a local .env work the same as real env vars.
type Config struct {
	Port        string
	DatabaseURL string

	// Timezone pins the canonical clock for "today". Every daily counter and
	// quota decision is keyed on a calendar day in this zone.
	Timezone string

	// Daily caps per channel. 0 means the channel is deliberately uncapped.
	IGDailyCap int
	WADailyCap int

	// Minimum wait between cold follow-ups, in hours.
	CooldownHours float64

	// Leads at or above this score trigger a hot-lead alert event.
	HotScoreThreshold int

	// When false, /log-attempt refuses to overwrite a stop/dnd status.
	AllowTerminalOverwrite bool

	OpenAI   OpenAIConfig
	SMTP     SMTPConfig
	RabbitMQ RabbitMQConfig

	location *time.Location
}

// OpenAIConfig defines how to reach the chat-completions API.
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AlertTo  string
}

type RabbitMQConfig struct {
	User string
	Pass string
	Host string
	Port string
}

// Load reads the environment and applies defaults. It never fails: a bad
// numeric value falls back to its default with a log line.
func Load() Config {
	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		Timezone:               getEnv("TIMEZONE", defaultTimezone),
		IGDailyCap:             getEnvInt("IG_DAILY_CAP", 30),
		WADailyCap:             getEnvInt("WA_DAILY_CAP", 0),
		CooldownHours:          getEnvFloat("COOLDOWN_HOURS", 24),
		HotScoreThreshold:      getEnvInt("HOT_SCORE_THRESHOLD", 6),
		AllowTerminalOverwrite: getEnvBool("ALLOW_TERMINAL_OVERWRITE", false),
		OpenAI: OpenAIConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.3),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 300),
			MaxRetries:  getEnvInt("OPENAI_MAX_RETRIES", 2),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     getEnvInt("MAIL_PORT", 587),
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     getEnv("MAIL_FROM", "no-reply@outreach-guardian.local"),
			AlertTo:  os.Getenv("MAIL_ALERT_TO"),
		},
		RabbitMQ: RabbitMQConfig{
			User: getEnv("RABBITMQ_USER", "guest"),
			Pass: getEnv("RABBITMQ_PASS", "guest"),
			Host: os.Getenv("RABBITMQ_HOST"),
			Port: getEnv("RABBITMQ_PORT", "5672"),
		},
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("config: unknown timezone %q, falling back to %s", cfg.Timezone, defaultTimezone)
		loc = time.UTC
	}
	cfg.location = loc

	return cfg
}

// Location resolves the configured timezone. Always non-nil.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}
