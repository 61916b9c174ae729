// Package client is a typed HTTP client for the gallery API, used by the
// command-line gallery and the end-to-end tests.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"photo-gallery-backend/internal/models"
)

// APIError is a non-2xx response from the gallery API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gallery API: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. The token may be empty
// when the access gate is disabled.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Login exchanges the gallery password for a session token. The returned
// token is not stored on the client; callers decide where to persist it.
func (c *Client) Login(password string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPhotos returns all photos, newest first.
func (c *Client) ListPhotos() ([]models.Photo, error) {
	var out []models.Photo
	if err := c.do(http.MethodGet, "/api/photos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadPhoto posts one image encoded as a data URI.
func (c *Client) UploadPhoto(name, dataURI string, uploadedAt time.Time) (*models.Photo, error) {
	req := models.CreatePhotoRequest{
		Name:       name,
		Data:       dataURI,
		UploadedAt: uploadedAt.UTC().Format(time.RFC3339),
	}
	var out models.Photo
	if err := c.do(http.MethodPost, "/api/photos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePhoto removes a photo by id.
func (c *Client) DeletePhoto(id string) error {
	var out models.DeleteResponse
	return c.do(http.MethodDelete, "/api/photos?id="+url.QueryEscape(id), nil, &out)
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr models.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
