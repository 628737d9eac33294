package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	Port        string

	LogsDirectory string

	// Cron expression for the materialized risk view refresh.
	RiskRefreshSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:         os.Getenv("POSTGRES_URL"),
		MongoURL:            os.Getenv("MONGO_URL"),
		Port:                os.Getenv("PORT"),
		LogsDirectory:       os.Getenv("LOGS_DIRECTORY"),
		RiskRefreshSchedule: os.Getenv("RISK_REFRESH_SCHEDULE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogsDirectory == "" {
		cfg.LogsDirectory = "logs"
	}
	if cfg.RiskRefreshSchedule == "" {
		cfg.RiskRefreshSchedule = "*/5 * * * *"
	}
	return cfg
}
