package domain

import "time"

// Photo is append-only metadata for an uploaded image: once created it
// is never updated, only attached, detached or deleted.
type Photo struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	Size      float64   `json:"size" db:"size"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PhotoAttachment is the join record linking a site to a photo.
type PhotoAttachment struct {
	SiteID    int64     `json:"site_id" db:"site_id"`
	PhotoID   int64     `json:"photo_id" db:"photo_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StoredFile is the durable reference a blob store returns for an
// uploaded file.
type StoredFile struct {
	URL          string  `json:"url"`
	Path         string  `json:"path"`
	Size         float64 `json:"size"`
	OriginalName string  `json:"original_name"`
	MimeType     string  `json:"mime_type"`
}
