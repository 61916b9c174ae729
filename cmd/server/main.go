package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"photo-gallery-backend/internal/config"
	"photo-gallery-backend/internal/database"
	"photo-gallery-backend/internal/handlers"
	"photo-gallery-backend/internal/photos"
	"photo-gallery-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var repo photos.Repository

	switch cfg.Mode {
	case config.ModeLocal:
		local, err := photos.NewLocalRepository(cfg.LocalDBPath)
		if err != nil {
			log.Fatalf("Failed to open local gallery database: %v", err)
		}
		defer local.Close()
		repo = local
		log.Printf("Using local gallery database at %s", cfg.LocalDBPath)

	case config.ModeSupabase:
		if !cfg.SupabaseConfigured() {
			// Keep serving; photo requests answer 500 until configured.
			log.Println("Warning: SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY not set.")
			log.Println("Photo requests will fail until Supabase is configured.")
			break
		}

		client, err := supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}

		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}

		repo = photos.NewSupabaseRepository(storageClient, supabase.NewMetadataClient(client))

		if cfg.DatabaseURL == "" {
			log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		} else {
			runMigrations(cfg.DatabaseURL)
		}
	}

	if cfg.GalleryPassword == "" {
		log.Println("Warning: GALLERY_PASSWORD not set. The access gate is disabled.")
	}

	router := handlers.NewRouter(cfg, repo)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runMigrations(dbURL string) {
	migrator, err := database.NewMigrator(dbURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize migrator: %v", err)
		return
	}
	defer migrator.Close()

	if err := migrator.Run(); err != nil {
		log.Printf("Warning: Migration failed: %v", err)
		return
	}
	log.Println("Migrations completed successfully")
}
