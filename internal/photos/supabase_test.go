package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-gallery-backend/internal/models"
)

// The fakes record every call into a shared journal so tests can assert
// ordering across the two stores.

type fakeBlobStore struct {
	journal   *[]string
	uploadErr error
	removeErr error
}

func (f *fakeBlobStore) Upload(path, contentType string, data []byte) (string, error) {
	*f.journal = append(*f.journal, "upload "+path)
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://project.supabase.co/storage/v1/object/public/photo-library/" + path, nil
}

func (f *fakeBlobStore) Remove(path string) error {
	*f.journal = append(*f.journal, "remove "+path)
	return f.removeErr
}

func (f *fakeBlobStore) PathFromURL(url string) string {
	if _, after, ok := strings.Cut(url, "/photo-library/"); ok {
		return after
	}
	return ""
}

type fakeMetadataStore struct {
	journal   *[]string
	rows      []models.Photo
	insertErr error
}

func (f *fakeMetadataStore) ListPhotos() ([]models.Photo, error) {
	return f.rows, nil
}

func (f *fakeMetadataStore) InsertPhoto(name, url string, uploadedAt time.Time) (*models.Photo, error) {
	*f.journal = append(*f.journal, "insert "+name)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	photo := models.Photo{
		ID:         fmt.Sprintf("row-%d", len(f.rows)+1),
		Name:       name,
		URL:        url,
		UploadedAt: uploadedAt,
	}
	f.rows = append(f.rows, photo)
	return &photo, nil
}

func (f *fakeMetadataStore) GetPhoto(id string) (*models.Photo, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("row not found")
}

func (f *fakeMetadataStore) DeletePhoto(id string) error {
	*f.journal = append(*f.journal, "delete-row "+id)
	for i, p := range f.rows {
		if p.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func newFakeStores() (*fakeBlobStore, *fakeMetadataStore, *[]string) {
	journal := &[]string{}
	return &fakeBlobStore{journal: journal}, &fakeMetadataStore{journal: journal}, journal
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestSupabaseRepository_Create(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	repo := NewSupabaseRepository(blobs, rows)

	uploadedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	photo, err := repo.Create(context.Background(), "cat.png", pngDataURI, uploadedAt)
	require.NoError(t, err)

	assert.Equal(t, "cat.png", photo.Name)
	assert.Contains(t, photo.URL, "/photo-library/photos/")
	assert.Contains(t, photo.URL, "-cat.png")
	assert.True(t, photo.UploadedAt.Equal(uploadedAt))

	// Blob first, then the row that references it.
	require.Len(t, *journal, 2)
	assert.True(t, strings.HasPrefix((*journal)[0], "upload photos/"))
	assert.Equal(t, "insert cat.png", (*journal)[1])
}

func TestSupabaseRepository_Create_InvalidData(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	repo := NewSupabaseRepository(blobs, rows)

	_, err := repo.Create(context.Background(), "cat.png", "not a data uri", time.Now())
	assert.ErrorIs(t, err, ErrInvalidImageData)
	assert.Empty(t, *journal)
}

func TestSupabaseRepository_Create_UploadFails(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	blobs.uploadErr = errors.New("bucket unavailable")
	repo := NewSupabaseRepository(blobs, rows)

	_, err := repo.Create(context.Background(), "cat.png", pngDataURI, time.Now())
	require.Error(t, err)

	// No row may reference an object that was never written.
	require.Len(t, *journal, 1)
	assert.True(t, strings.HasPrefix((*journal)[0], "upload "))
}

func TestSupabaseRepository_Create_InsertFailureLogsOrphan(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	rows.insertErr = errors.New("row insert refused")
	repo := NewSupabaseRepository(blobs, rows)
	logged := captureLog(t)

	_, err := repo.Create(context.Background(), "cat.png", pngDataURI, time.Now())
	require.ErrorContains(t, err, "row insert refused")

	// The object was written before the insert failed, so it is now
	// unreferenced and its path must be in the log.
	require.Len(t, *journal, 2)
	uploadedPath := strings.TrimPrefix((*journal)[0], "upload ")
	assert.Contains(t, logged.String(), "orphaned object "+uploadedPath)
}

func TestSupabaseRepository_Delete(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	repo := NewSupabaseRepository(blobs, rows)

	photo, err := repo.Create(context.Background(), "cat.png", pngDataURI, time.Now())
	require.NoError(t, err)
	*journal = nil

	require.NoError(t, repo.Delete(context.Background(), photo.ID))

	// Blob removal happens before the row delete.
	require.Len(t, *journal, 2)
	assert.True(t, strings.HasPrefix((*journal)[0], "remove photos/"))
	assert.Equal(t, "delete-row "+photo.ID, (*journal)[1])
	assert.Empty(t, rows.rows)
}

func TestSupabaseRepository_Delete_RemoveFails(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	repo := NewSupabaseRepository(blobs, rows)
	logged := captureLog(t)

	photo, err := repo.Create(context.Background(), "cat.png", pngDataURI, time.Now())
	require.NoError(t, err)
	*journal = nil
	blobs.removeErr = errors.New("object store down")

	// Removal is best effort: the row goes away regardless.
	require.NoError(t, repo.Delete(context.Background(), photo.ID))
	assert.Equal(t, "delete-row "+photo.ID, (*journal)[1])
	assert.Empty(t, rows.rows)
	assert.Contains(t, logged.String(), "failed to remove object")
}

func TestSupabaseRepository_Delete_UnderivablePath(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	rows.rows = []models.Photo{{ID: "row-1", Name: "old.png", URL: "https://elsewhere.example/other-bucket/old.png"}}
	repo := NewSupabaseRepository(blobs, rows)

	// A URL outside the bucket yields no path, so only the row is touched.
	require.NoError(t, repo.Delete(context.Background(), "row-1"))
	assert.Equal(t, []string{"delete-row row-1"}, *journal)
	assert.Empty(t, rows.rows)
}

func TestSupabaseRepository_Delete_UnknownID(t *testing.T) {
	blobs, rows, journal := newFakeStores()
	repo := NewSupabaseRepository(blobs, rows)

	err := repo.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Empty(t, *journal)
}

func TestSupabaseRepository_List(t *testing.T) {
	blobs, rows, _ := newFakeStores()
	rows.rows = []models.Photo{{ID: "row-1", Name: "cat.png"}}
	repo := NewSupabaseRepository(blobs, rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cat.png", list[0].Name)
}
