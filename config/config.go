package config

import (
	"fmt"
	"os"
)

// Room-modeling strategy. Picked once per deployment, never at runtime.
const (
	RoomModeRegistry = "registry"
	RoomModeDerived  = "derived"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// RoomMode selects how the room list is modeled: an explicit rooms
	// table ("registry") or distinct room values on notes ("derived").
	RoomMode string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	cfg := &Config{
		AppPort: get("APP_PORT", "3001"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "galeria"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		RoomMode: get("ROOM_MODE", RoomModeRegistry),
	}
	if cfg.RoomMode != RoomModeRegistry && cfg.RoomMode != RoomModeDerived {
		cfg.RoomMode = RoomModeRegistry
	}
	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
