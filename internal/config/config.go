package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port string

	DatabaseURL string

	SupabaseURL        string
	SupabaseServiceKey string

	ResendAPIKey string
	NotifyFrom   string
	NotifyTo     string

	// AdminToken guards the mutating job endpoints when set.
	// Empty means the endpoints are open, as in the original deployment.
	AdminToken string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		NotifyFrom:         getenv("NOTIFY_FROM", "careers@mail.hellorory.dev"),
		NotifyTo:           os.Getenv("NOTIFY_TO"),
		AdminToken:         os.Getenv("ADMIN_TOKEN"),
	}

	for name, val := range map[string]string{
		"DATABASE_URL":              cfg.DatabaseURL,
		"SUPABASE_URL":              cfg.SupabaseURL,
		"SUPABASE_SERVICE_ROLE_KEY": cfg.SupabaseServiceKey,
		"RESEND_API_KEY":            cfg.ResendAPIKey,
		"NOTIFY_TO":                 cfg.NotifyTo,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s not set", name)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
