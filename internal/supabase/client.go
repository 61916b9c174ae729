package supabase

import (
	"github.com/supabase-community/supabase-go"

	"photo-gallery-backend/internal/config"
)

// Client wraps the Supabase API client used for metadata row access.
type Client struct {
	Supabase *supabase.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{Supabase: client}, nil
}
