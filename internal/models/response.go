package models

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
