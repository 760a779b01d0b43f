package domain

import "errors"

var (
	ErrInvalidDate             = errors.New("invalid date")
	ErrInvalidTime             = errors.New("invalid time of day")
	ErrInvalidDay              = errors.New("invalid day of week")
	ErrInvalidPartySize        = errors.New("invalid party size")
	ErrInvalidCapacity         = errors.New("invalid capacity")
	ErrInvalidTableNumber      = errors.New("invalid table number")
	ErrZoneNameRequired        = errors.New("zone name required")
	ErrPartyExceedsCapacity    = errors.New("party size exceeds table capacity")
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrCustomerRequired        = errors.New("customer name and national id required")
	ErrInvalidID               = errors.New("invalid id")
	ErrNoSlotAtTime            = errors.New("no slot defined at that day and time")
	ErrZoneNotFound            = errors.New("zone not found")
	ErrTableNotFound           = errors.New("table not found")
	ErrSlotNotFound            = errors.New("slot not found")
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrZoneHasTables           = errors.New("zone still has tables")
	ErrTableNumberTaken        = errors.New("table number already in use")
	ErrTableBlocked            = errors.New("table is blocked")
	ErrTableOutsideZone        = errors.New("table does not belong to the requested zone")
	ErrTableAlreadyReserved    = errors.New("table already reserved for that date and time")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCodeCollision           = errors.New("reservation code collision")
)
