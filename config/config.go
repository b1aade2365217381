package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix for every environment variable, e.g. LIFEPLAN_PORT.
const Prefix = "LIFEPLAN"

type AppConfig struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DBPath      string `envconfig:"DB_PATH" default:"lifeplan.db"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"lifeplan"`
	// StaticDir is served at /static when it exists.
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// Load reads .env files (if any) into the environment, then parses LIFEPLAN_* variables.
// The returned bool reports whether a .env file was found.
func Load(envFiles ...string) (AppConfig, bool, error) {
	dotenv := godotenv.Load(envFiles...) == nil

	var cfg AppConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return AppConfig{}, dotenv, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, dotenv, nil
}

func (c AppConfig) Addr() string { return ":" + c.Port }

func (c AppConfig) IsProduction() bool { return c.Environment == "production" }
