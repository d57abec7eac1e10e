package config

import "os"

type Config struct {
	Port     string
	Auth     AuthConfig
	Postgres PostgresConfig
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenTTL    string
	RefreshTokenTTL   string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),
		Auth: AuthConfig{
			AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
			AccessTokenTTL:    getenv("JWT_EXPIRATION", "15m"),
			RefreshTokenTTL:   getenv("JWT_REFRESH_EXPIRATION", "168h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
