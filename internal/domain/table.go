package domain

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "disponible"
	TableStatusBlocked   TableStatus = "bloqueada"
)

// Table is a bookable unit with fixed seating capacity within a zone.
// Number is unique across the whole floor, not per zone.
type Table struct {
	ID          string
	ZoneID      string
	Number      int
	Capacity    int
	Description string
	Status      TableStatus
	CreatedAt   time.Time
}

func (t Table) Blocked() bool {
	return t.Status == TableStatusBlocked
}
