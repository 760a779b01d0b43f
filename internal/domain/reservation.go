package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pendiente"
	ReservationStatusConfirmed ReservationStatus = "confirmada"
	ReservationStatusCancelled ReservationStatus = "cancelada"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine permits moving to next.
// Cancelled is terminal and self-transitions are rejected.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return next == ReservationStatusConfirmed || next == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return next == ReservationStatusCancelled
	}
	return false
}

// Customer carries the contact fields attached to a reservation. They are
// informational only; NationalID doubles as the lookup credential.
type Customer struct {
	Name       string
	NationalID string
	Email      string
	Phone      string
}

// Reservation is a booking of one table for one date and slot. At most one
// non-cancelled reservation may exist per (Date, SlotID, TableID) triple.
type Reservation struct {
	ID        string
	Code      string
	Date      string // YYYY-MM-DD
	SlotID    string
	TableID   string
	PartySize int
	Customer  Customer
	Status    ReservationStatus
	CreatedAt time.Time

	// Display fields resolved at read time. They survive slot or table
	// deletion and are zero-valued when the referenced row is gone.
	SlotTime    string
	TableNumber int
	ZoneName    string
}
