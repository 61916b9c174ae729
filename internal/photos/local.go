package photos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"photo-gallery-backend/internal/models"
)

// Fixed-width UTC timestamps keep lexicographic and chronological order
// identical, so the DESC index order is correct.
const localTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const localSchema = `
CREATE TABLE IF NOT EXISTS photos (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  url TEXT NOT NULL,
  uploaded_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_photos_uploaded_at ON photos (uploaded_at DESC);
`

// LocalRepository keeps the whole gallery in a single sqlite file. The data
// URI itself is stored as the photo URL, so no object store is involved.
type LocalRepository struct {
	db *sql.DB
}

func NewLocalRepository(path string) (*LocalRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create local schema: %w", err)
	}

	return &LocalRepository{db: db}, nil
}

func (r *LocalRepository) Close() error {
	return r.db.Close()
}

func (r *LocalRepository) List(ctx context.Context) ([]models.Photo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, url, uploaded_at
		FROM photos
		ORDER BY uploaded_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		var uploadedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.URL, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		p.UploadedAt, err = time.Parse(localTimeLayout, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse uploaded_at for photo %s: %w", p.ID, err)
		}
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

func (r *LocalRepository) Create(ctx context.Context, name, dataURI string, uploadedAt time.Time) (*models.Photo, error) {
	if _, err := ParseDataURI(dataURI); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		ID:         uuid.NewString(),
		Name:       name,
		URL:        dataURI,
		UploadedAt: uploadedAt.UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO photos (id, name, url, uploaded_at)
		VALUES (?, ?, ?, ?)
	`, photo.ID, photo.Name, photo.URL, photo.UploadedAt.Format(localTimeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to insert photo: %w", err)
	}

	return photo, nil
}

func (r *LocalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
