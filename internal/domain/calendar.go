package domain

import (
	"strings"
	"time"
)

// DayOfWeek enumerates the recurring schedule days using the restaurant's
// own labels.
type DayOfWeek string

const (
	DaySunday    DayOfWeek = "Domingo"
	DayMonday    DayOfWeek = "Lunes"
	DayTuesday   DayOfWeek = "Martes"
	DayWednesday DayOfWeek = "Miércoles"
	DayThursday  DayOfWeek = "Jueves"
	DayFriday    DayOfWeek = "Viernes"
	DaySaturday  DayOfWeek = "Sábado"
)

// daysByWeekday is indexed by time.Weekday (Sunday = 0).
var daysByWeekday = [7]DayOfWeek{
	DaySunday,
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
}

func (d DayOfWeek) Valid() bool {
	for _, known := range daysByWeekday {
		if d == known {
			return true
		}
	}
	return false
}

const dateLayout = "2006-01-02"

// ParseDate validates a calendar date in YYYY-MM-DD form and returns it
// normalized. The date is interpreted as a plain calendar value: parsing
// pins it to UTC midnight and no timezone conversion is ever applied, so
// the derived weekday can not shift by a day.
func ParseDate(value string) (string, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dateLayout), nil
}

// WeekdayOf returns the schedule day for a YYYY-MM-DD date.
func WeekdayOf(date string) (DayOfWeek, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return daysByWeekday[t.Weekday()], nil
}

// ParseTimeOfDay validates a wall-clock time and normalizes it to HH:MM.
// Storage may carry seconds; they are truncated.
func ParseTimeOfDay(value string) (string, error) {
	v := strings.TrimSpace(value)
	layout := "15:04"
	if len(v) == 8 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, v)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format("15:04"), nil
}
