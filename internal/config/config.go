package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBName       string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	IdentitySalt string
}

// Load reads the optional .env file and the environment. A missing .env is
// fine in deployed environments where variables come from the runtime.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:         envOr("HTTP_ADDR", "0.0.0.0:8080"),
		DBName:       os.Getenv("POSTGRES_DB"),
		DBUser:       os.Getenv("POSTGRES_USER"),
		DBPassword:   os.Getenv("POSTGRES_PASSWORD"),
		DBHost:       os.Getenv("POSTGRES_HOST"),
		DBPort:       os.Getenv("POSTGRES_PORT"),
		IdentitySalt: envOr("IDENTITY_SALT", "nakedtruth-salt"),
	}
}

func (c Config) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
