package entity

import (
	"time"
)

// Post is an owned resource: only the author may update or delete it.
// AuthorName and AuthorEmail are populated by reads that join the users
// table, mirroring the author embed the API exposes.
type Post struct {
	ID          string
	Title       string
	Content     string
	CoverURL    string
	AuthorID    string
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
