package supabase

import (
	"bytes"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient wraps Supabase Storage for a single bucket of image blobs.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload writes the object at path and returns its public URL. Upsert is
// disabled: a second write to the same path fails instead of clobbering the
// first object.
func (s *StorageClient) Upload(path, contentType string, data []byte) (string, error) {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.PublicURL(path), nil
}

func (s *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

// Remove deletes the object at path.
func (s *StorageClient) Remove(path string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{path})
	return err
}

// PathFromURL derives the object path from a public URL by taking the
// substring after the bucket marker. Returns "" when the URL does not
// reference this bucket.
func (s *StorageClient) PathFromURL(url string) string {
	marker := "/" + s.bucket + "/"
	if _, after, ok := strings.Cut(url, marker); ok {
		return after
	}
	return ""
}
