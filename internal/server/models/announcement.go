package models

type Announcement struct {
	ID     int
	UserID int
	Title  string
	Body   string
}
