package domain

import "time"

// Slot is one recurring weekly booking opportunity ("turno"): a day of week
// plus a wall-clock time. Several slots may share the same (day, time) pair;
// they are interchangeable for occupancy purposes.
type Slot struct {
	ID        string
	Day       DayOfWeek
	Time      string // normalized HH:MM
	CreatedAt time.Time
}
