package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN   string
	Addr          string
	SessionSecret string
	TemplateGlob  string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; variables may come straight from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		Addr:          os.Getenv("ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TemplateGlob:  os.Getenv("TEMPLATE_GLOB"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":4000"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "stagelist-dev-secret"
	}
	if cfg.TemplateGlob == "" {
		cfg.TemplateGlob = "web/templates/*.html"
	}
	return cfg, nil
}
