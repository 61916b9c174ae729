package photos

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"time"

	"photo-gallery-backend/internal/models"
)

var (
	// ErrNotFound is returned by Delete when no photo has the given id.
	ErrNotFound = errors.New("photo not found")

	// ErrInvalidImageData is returned when an upload payload is not a
	// data:image/<subtype>;base64,<payload> URI.
	ErrInvalidImageData = errors.New("invalid image data format")
)

// Repository is the single owner of photo state. Both persistence modes
// implement it: supabase (storage bucket plus a postgrest table) and local
// (a sqlite file holding data URIs).
type Repository interface {
	// List returns all photos ordered newest first.
	List(ctx context.Context) ([]models.Photo, error)

	// Create decodes and persists one image and returns the stored record.
	// The name is kept verbatim on the record; only the storage path uses
	// the sanitized form.
	Create(ctx context.Context, name, dataURI string, uploadedAt time.Time) (*models.Photo, error)

	// Delete removes the photo's blob (best effort) and its record.
	Delete(ctx context.Context, id string) error
}

var (
	dataURIPattern  = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// Image is one decoded upload payload.
type Image struct {
	Subtype string
	Bytes   []byte
}

// ContentType returns the MIME type inferred from the data URI.
func (i *Image) ContentType() string {
	return "image/" + i.Subtype
}

// ParseDataURI validates and decodes a data:image/<subtype>;base64,<payload>
// string.
func ParseDataURI(dataURI string) (*Image, error) {
	m := dataURIPattern.FindStringSubmatch(dataURI)
	if m == nil {
		return nil, ErrInvalidImageData
	}

	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}

	return &Image{Subtype: m[1], Bytes: raw}, nil
}

// SanitizeName replaces every character outside [a-zA-Z0-9.-] with an
// underscore so the name is safe as a storage path component.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// ObjectPath builds the storage path for an upload. The epoch-millis prefix
// keeps repeated uploads of identically named files from colliding.
func ObjectPath(name string, now time.Time) string {
	return fmt.Sprintf("photos/%d-%s", now.UnixMilli(), SanitizeName(name))
}
