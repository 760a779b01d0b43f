package http

import (
	"encoding/json"
	"net/http"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeMissingRequiredField = "missing_required_field"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"

	codeInvalidDate          = "invalid_date"
	codeInvalidTime          = "invalid_time"
	codeInvalidDay           = "invalid_day"
	codeInvalidPartySize     = "invalid_party_size"
	codeInvalidCapacity      = "invalid_capacity"
	codeInvalidTableNumber   = "invalid_table_number"
	codeZoneNameRequired     = "zone_name_required"
	codePartyExceedsCapacity = "party_exceeds_capacity"
	codeInvalidStatus        = "invalid_status"
	codeCustomerRequired     = "customer_required"
	codeInvalidID            = "invalid_id"
	codeNoSlotAtTime         = "no_slot_at_time"
	codeZoneNotFound         = "zone_not_found"
	codeTableNotFound        = "table_not_found"
	codeSlotNotFound         = "slot_not_found"
	codeReservationNotFound  = "reservation_not_found"
	codeZoneHasTables        = "zone_has_tables"
	codeTableNumberTaken     = "table_number_taken"
	codeTableBlocked         = "table_blocked"
	codeTableOutsideZone     = "table_outside_zone"
	codeTableAlreadyReserved = "table_already_reserved"
	codeInvalidTransition    = "invalid_status_transition"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps a service error onto the wire. Conflicts keep their
// own 409 codes so callers can tell "someone just took that table" from
// their own bad input.
func writeDomainError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrInvalidDate:
		writeError(w, http.StatusBadRequest, codeInvalidDate, err.Error())
	case domain.ErrInvalidTime:
		writeError(w, http.StatusBadRequest, codeInvalidTime, err.Error())
	case domain.ErrInvalidDay:
		writeError(w, http.StatusBadRequest, codeInvalidDay, err.Error())
	case domain.ErrInvalidPartySize:
		writeError(w, http.StatusBadRequest, codeInvalidPartySize, err.Error())
	case domain.ErrInvalidCapacity:
		writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
	case domain.ErrInvalidTableNumber:
		writeError(w, http.StatusBadRequest, codeInvalidTableNumber, err.Error())
	case domain.ErrZoneNameRequired:
		writeError(w, http.StatusBadRequest, codeZoneNameRequired, err.Error())
	case domain.ErrInvalidStatus:
		writeError(w, http.StatusBadRequest, codeInvalidStatus, err.Error())
	case domain.ErrCustomerRequired:
		writeError(w, http.StatusBadRequest, codeCustomerRequired, err.Error())
	case domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case domain.ErrPartyExceedsCapacity:
		writeError(w, http.StatusUnprocessableEntity, codePartyExceedsCapacity, err.Error())
	case domain.ErrNoSlotAtTime:
		writeError(w, http.StatusUnprocessableEntity, codeNoSlotAtTime, err.Error())
	case domain.ErrZoneNotFound:
		writeError(w, http.StatusNotFound, codeZoneNotFound, err.Error())
	case domain.ErrTableNotFound:
		writeError(w, http.StatusNotFound, codeTableNotFound, err.Error())
	case domain.ErrSlotNotFound:
		writeError(w, http.StatusNotFound, codeSlotNotFound, err.Error())
	case domain.ErrReservationNotFound:
		writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
	case domain.ErrZoneHasTables:
		writeError(w, http.StatusConflict, codeZoneHasTables, err.Error())
	case domain.ErrTableNumberTaken:
		writeError(w, http.StatusConflict, codeTableNumberTaken, err.Error())
	case domain.ErrTableBlocked:
		writeError(w, http.StatusConflict, codeTableBlocked, err.Error())
	case domain.ErrTableOutsideZone:
		writeError(w, http.StatusConflict, codeTableOutsideZone, err.Error())
	case domain.ErrTableAlreadyReserved:
		writeError(w, http.StatusConflict, codeTableAlreadyReserved, err.Error())
	case domain.ErrInvalidStatusTransition:
		writeError(w, http.StatusConflict, codeInvalidTransition, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
