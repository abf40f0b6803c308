package models

// Announcement is a read-only news item identified by ID.
type Announcement struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
