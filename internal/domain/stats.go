package domain

import "time"

// EntryStamp identifies the newest or oldest row of a resource.
type EntryStamp struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ResourceStats summarizes creation activity of one resource table.
type ResourceStats struct {
	Total            int         `json:"total"`
	CreatedToday     int         `json:"created_today"`
	CreatedThisWeek  int         `json:"created_this_week"`
	CreatedThisMonth int         `json:"created_this_month"`
	LatestEntry      *EntryStamp `json:"latest_entry"`
	OldestEntry      *EntryStamp `json:"oldest_entry"`
}
