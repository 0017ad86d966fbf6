package config

import (
	"os"
	"strconv"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Port           string
	JWTSecret      string
	JWTExpiryHours int

	StoreBackend        string // memory, redis or postgres
	RedisAddr           string
	DatabaseURL         string
	PersistAppointments bool

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
}

// Load reads configuration from the environment. Every value has a demo
// default so the server runs with no setup at all.
func Load() Config {
	return Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTExpiryHours:      getEnvInt("JWT_EXPIRY_HOURS", 24),
		StoreBackend:        getEnv("STORE_BACKEND", BackendMemory),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		DatabaseURL:         os.Getenv("DB_URL"),
		PersistAppointments: getEnvBool("PERSIST_APPOINTMENTS", true),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:   os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// SMSEnabled reports whether outbound Twilio delivery is configured.
func (c Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
