package db

import (
	"time"

	"github.com/google/uuid"
)

// GuideRecord is the stored metadata for one generated guide. The PDF bytes
// themselves live in the same row but are loaded separately, since listings
// never need them.
type GuideRecord struct {
	ID           uuid.UUID `json:"id"`
	Plan         string    `json:"plan"`
	UserName     string    `json:"user_name"`
	DurationDays int       `json:"duration_days"`
	Pages        int       `json:"pages"`
	SizeBytes    int       `json:"size_bytes"`
	Checksum     string    `json:"checksum"` // hex SHA-256 of the PDF bytes
	CreatedAt    time.Time `json:"created_at"`
}
