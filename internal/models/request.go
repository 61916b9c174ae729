package models

// CreatePhotoRequest is the upload payload. Data carries the image encoded
// as a data:image/<subtype>;base64,<payload> URI.
type CreatePhotoRequest struct {
	Name       string `json:"name"`
	Data       string `json:"data"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
