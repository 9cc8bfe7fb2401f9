package domain

import "time"

// Site is a catalogued tourist or heritage site. Coordinate bounds
// (lat in [-90,90], lon in [-180,180]) are enforced by the use case
// before persistence, not by the storage layer.
type Site struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Description      *string    `json:"description" db:"description"`
	Lat              float64    `json:"lat" db:"lat"`
	Lon              float64    `json:"lon" db:"lon"`
	City             *string    `json:"city" db:"city"`
	SiteCreationDate *time.Time `json:"site_creation_date" db:"site_creation_date"`
	SiteTypeID       *int64     `json:"site_type_id" db:"site_type_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`

	// Eager-loaded relations, absent from the site table itself.
	SiteType *SiteType `json:"site_type,omitempty" db:"-"`
	Photos   []Photo   `json:"photos,omitempty" db:"-"`

	// Distance in kilometers, only populated by nearby queries.
	Distance *float64 `json:"distance,omitempty" db:"distance"`
}
