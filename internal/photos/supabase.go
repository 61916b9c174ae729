package photos

import (
	"context"
	"log"
	"time"

	"photo-gallery-backend/internal/models"
)

// BlobStore holds the image bytes, addressed by object path.
type BlobStore interface {
	Upload(path, contentType string, data []byte) (string, error)
	Remove(path string) error
	PathFromURL(url string) string
}

// MetadataStore holds the photo rows that index the blobs.
type MetadataStore interface {
	ListPhotos() ([]models.Photo, error)
	InsertPhoto(name, url string, uploadedAt time.Time) (*models.Photo, error)
	GetPhoto(id string) (*models.Photo, error)
	DeletePhoto(id string) error
}

// SupabaseRepository persists blobs to Supabase Storage and metadata rows to
// the photos table. The two stores are not transactional: Create can leave
// an orphaned object behind and Delete can leave one behind too. Both cases
// are logged, not reconciled.
type SupabaseRepository struct {
	storage  BlobStore
	metadata MetadataStore
}

func NewSupabaseRepository(storage BlobStore, metadata MetadataStore) *SupabaseRepository {
	return &SupabaseRepository{
		storage:  storage,
		metadata: metadata,
	}
}

func (r *SupabaseRepository) List(ctx context.Context) ([]models.Photo, error) {
	return r.metadata.ListPhotos()
}

func (r *SupabaseRepository) Create(ctx context.Context, name, dataURI string, uploadedAt time.Time) (*models.Photo, error) {
	img, err := ParseDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	path := ObjectPath(name, time.Now())
	url, err := r.storage.Upload(path, img.ContentType(), img.Bytes)
	if err != nil {
		return nil, err
	}

	photo, err := r.metadata.InsertPhoto(name, url, uploadedAt)
	if err != nil {
		// The object is already written and nothing references it now.
		// Log the orphan so it can be cleaned up by hand.
		log.Printf("orphaned object %s: metadata insert failed: %v", path, err)
		return nil, err
	}

	return photo, nil
}

func (r *SupabaseRepository) Delete(ctx context.Context, id string) error {
	photo, err := r.metadata.GetPhoto(id)
	if err != nil {
		return err
	}

	if path := r.storage.PathFromURL(photo.URL); path != "" {
		if err := r.storage.Remove(path); err != nil {
			// Best effort: the row is deleted regardless, so a failed
			// removal leaves an unreferenced object behind.
			log.Printf("failed to remove object %s for photo %s: %v", path, id, err)
		}
	}

	return r.metadata.DeletePhoto(id)
}
