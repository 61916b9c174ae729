package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Repository modes.
const (
	ModeSupabase = "supabase"
	ModeLocal    = "local"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseStorageBucket  string

	// Direct PostgreSQL connection, used only to run migrations.
	DatabaseURL string

	// Repository selection
	Mode        string
	LocalDBPath string

	// Access gate. An empty password disables the gate entirely.
	GalleryPassword string
	SessionSecret   string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "photo-library"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Mode:        getEnv("GALLERY_MODE", ModeSupabase),
		LocalDBPath: getEnv("GALLERY_LOCAL_DB", "gallery.db"),

		GalleryPassword: getEnv("GALLERY_PASSWORD", ""),
		SessionSecret:   getEnv("GALLERY_SESSION_SECRET", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects contradictory settings only. Missing Supabase values are
// allowed: the server still starts and photo requests answer 500 until they
// are provided, matching the per-request configuration check of the original
// deployment.
func (c *Config) Validate() error {
	if c.Mode != ModeSupabase && c.Mode != ModeLocal {
		return fmt.Errorf("GALLERY_MODE must be %q or %q, got %q", ModeSupabase, ModeLocal, c.Mode)
	}
	if c.GalleryPassword != "" && c.SessionSecret == "" {
		return fmt.Errorf("GALLERY_SESSION_SECRET is required when GALLERY_PASSWORD is set")
	}
	return nil
}

// SupabaseConfigured reports whether both required Supabase values are set.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceRoleKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
