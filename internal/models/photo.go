package models

import "time"

// Photo is the sole domain entity: one uploaded image and where its bytes
// live. URL is either a public storage URL (supabase mode) or the original
// data URI (local mode), never both.
type Photo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}
