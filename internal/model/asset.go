package model

import "time"

// Asset is an uploaded media file (a record logo or project video) stored in
// object storage. Records reference assets by URL, not by foreign key.
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
