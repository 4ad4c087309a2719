package model

import "time"

// Image is metadata for a picture attached to an animal.
// The binary content lives in object storage under StoragePath.
type Image struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"animal_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
