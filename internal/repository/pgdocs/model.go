package pgdocs

import "time"

type DocumentDB struct {
	Path      string
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
