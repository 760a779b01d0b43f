package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Nickolan/Restaurante-modelo-web/internal/app"
	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

// SlotTimeLister is the minimal interface needed to list bookable times.
type SlotTimeLister interface {
	ListSlotTimes(ctx context.Context, date string) ([]string, error)
}

// TableFinder is the minimal interface needed to list open tables.
type TableFinder interface {
	FindTables(ctx context.Context, in app.FindTablesInput) ([]domain.Table, error)
}

// HandleAvailableSlots returns an HTTP handler listing the times that can be
// booked on a given date. A day the restaurant does not open yields an empty
// list, not an error.
func HandleAvailableSlots(svc SlotTimeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "date is required")
			return
		}

		times, err := svc.ListSlotTimes(r.Context(), date)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := availableSlotsResponse{Date: date, Times: times}
		if resp.Times == nil {
			resp.Times = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleAvailableTables returns an HTTP handler listing tables free for a
// date, time and party size.
func HandleAvailableTables(svc TableFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		date := q.Get("date")
		timeOfDay := q.Get("time")
		if date == "" || timeOfDay == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "date and time are required")
			return
		}

		partySize := 0
		if raw := q.Get("party_size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidPartySize, "invalid party_size")
				return
			}
			partySize = parsed
		}

		tables, err := svc.FindTables(r.Context(), app.FindTablesInput{
			Date:      date,
			Time:      timeOfDay,
			ZoneID:    q.Get("zone_id"),
			PartySize: partySize,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make([]tableResponse, 0, len(tables))
		for _, table := range tables {
			resp = append(resp, newTableResponse(table))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type availableSlotsResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}
