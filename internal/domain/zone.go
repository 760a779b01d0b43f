package domain

import "time"

// Zone is a named seating area grouping tables.
type Zone struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
