package dto

// PresignedURLResponseDTO carries the upload URL for a patient document.
type PresignedURLResponseDTO struct {
	PresignedURL string `json:"presignedurl"`
}
