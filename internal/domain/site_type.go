package domain

import "time"

// SiteType is reference data classifying sites (religious, natural,
// UNESCO, ...). Codes are unique; deleting a type leaves its sites with
// a null type reference.
type SiteType struct {
	ID        int64     `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Label     string    `json:"label" db:"label"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
