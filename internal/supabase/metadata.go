package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"

	"photo-gallery-backend/internal/models"
)

const photosTable = "photos"

// MetadataClient reads and writes photo rows through the Supabase PostgREST
// API, so only the project URL and the service role key are needed.
type MetadataClient struct {
	client *Client
}

func NewMetadataClient(client *Client) *MetadataClient {
	return &MetadataClient{client: client}
}

// ListPhotos returns every photo row, newest first.
func (m *MetadataClient) ListPhotos() ([]models.Photo, error) {
	data, _, err := m.client.Supabase.From(photosTable).
		Select("*", "", false).
		Order("uploaded_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	var photos []models.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photo rows: %w", err)
	}

	return photos, nil
}

// InsertPhoto stores a new row and returns it with the server-assigned id.
func (m *MetadataClient) InsertPhoto(name, url string, uploadedAt time.Time) (*models.Photo, error) {
	row := map[string]interface{}{
		"name":        name,
		"url":         url,
		"uploaded_at": uploadedAt.UTC().Format(time.RFC3339Nano),
	}

	data, _, err := m.client.Supabase.From(photosTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert photo row: %w", err)
	}

	var photos []models.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode inserted photo row: %w", err)
	}
	if len(photos) == 0 {
		return nil, fmt.Errorf("insert returned no photo row")
	}

	return &photos[0], nil
}

// GetPhoto fetches a single row by id. A missing row is an error.
func (m *MetadataClient) GetPhoto(id string) (*models.Photo, error) {
	data, _, err := m.client.Supabase.From(photosTable).
		Select("*", "", false).
		Eq("id", id).
		Single().
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get photo %s: %w", id, err)
	}

	var photo models.Photo
	if err := json.Unmarshal(data, &photo); err != nil {
		return nil, fmt.Errorf("failed to decode photo row: %w", err)
	}

	return &photo, nil
}

// DeletePhoto removes the row by id.
func (m *MetadataClient) DeletePhoto(id string) error {
	_, _, err := m.client.Supabase.From(photosTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", id, err)
	}

	return nil
}
