package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Nickolan/Restaurante-modelo-web/internal/app"
	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

// ReservationBooker is the minimal interface needed to create a reservation.
type ReservationBooker interface {
	Book(ctx context.Context, in app.BookInput) (domain.Reservation, error)
}

// ReservationLister is the minimal interface needed to list reservations.
type ReservationLister interface {
	List(ctx context.Context, filter app.ReservationFilter) ([]domain.Reservation, error)
}

// ReservationFinder is the minimal interface for the customer-facing lookup.
type ReservationFinder interface {
	FindByCustomer(ctx context.Context, nationalID, code string) (domain.Reservation, error)
}

// ReservationGetter is the minimal interface needed to fetch one
// reservation by id.
type ReservationGetter interface {
	Get(ctx context.Context, id string) (domain.Reservation, error)
}

// ReservationStatusUpdater is the minimal interface needed to move a
// reservation through its status lifecycle.
type ReservationStatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus) (domain.Reservation, error)
}

// HandleReservations returns an HTTP handler for creating and listing
// reservations.
func HandleReservations(booker ReservationBooker, lister ReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			filter := app.ReservationFilter{
				Status: domain.ReservationStatus(r.URL.Query().Get("status")),
				Date:   r.URL.Query().Get("date"),
			}
			reservations, err := lister.List(r.Context(), filter)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]reservationResponse, 0, len(reservations))
			for _, res := range reservations {
				resp = append(resp, newReservationResponse(res))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createReservationRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if req.Date == "" || req.Time == "" || req.TableID == "" {
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, "date, time and table_id are required")
				return
			}

			reservation, err := booker.Book(r.Context(), app.BookInput{
				Date:      req.Date,
				Time:      req.Time,
				ZoneID:    req.ZoneID,
				TableID:   req.TableID,
				PartySize: req.PartySize,
				Customer: domain.Customer{
					Name:       req.CustomerName,
					NationalID: req.CustomerDNI,
					Email:      req.CustomerEmail,
					Phone:      req.CustomerPhone,
				},
				Status: domain.ReservationStatus(req.Status),
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newReservationResponse(reservation))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleReservationLookup returns an HTTP handler for the customer-facing
// lookup by national id and reservation code.
func HandleReservationLookup(svc ReservationFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		nationalID := q.Get("national_id")
		code := q.Get("code")
		if nationalID == "" || code == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "national_id and code are required")
			return
		}

		reservation, err := svc.FindByCustomer(r.Context(), nationalID, code)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newReservationResponse(reservation))
	}
}

// HandleReservationByID returns an HTTP handler for one reservation.
// GET on /reservations/{id} fetches it; PATCH on /reservations/{id}/status
// moves it through the status lifecycle.
func HandleReservationByID(getter ReservationGetter, updater ReservationStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, ok := parseReservationPath(r.URL.Path); ok {
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}

			reservation, err := getter.Get(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newReservationResponse(reservation))
			return
		}

		id, ok := parseReservationStatusPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req updateReservationStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.Status == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "status is required")
			return
		}

		reservation, err := updater.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newReservationResponse(reservation))
	}
}

type createReservationRequest struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	ZoneID        string `json:"zone_id"`
	TableID       string `json:"table_id"`
	PartySize     int    `json:"party_size"`
	CustomerName  string `json:"customer_name"`
	CustomerDNI   string `json:"customer_dni"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Status        string `json:"status"`
}

type updateReservationStatusRequest struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	TableID       string    `json:"table_id"`
	TableNumber   int       `json:"table_number"`
	ZoneName      string    `json:"zone_name"`
	PartySize     int       `json:"party_size"`
	CustomerName  string    `json:"customer_name"`
	CustomerDNI   string    `json:"customer_dni"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func newReservationResponse(r domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:            r.ID,
		Code:          r.Code,
		Date:          r.Date,
		Time:          r.SlotTime,
		TableID:       r.TableID,
		TableNumber:   r.TableNumber,
		ZoneName:      r.ZoneName,
		PartySize:     r.PartySize,
		CustomerName:  r.Customer.Name,
		CustomerDNI:   r.Customer.NationalID,
		CustomerEmail: r.Customer.Email,
		CustomerPhone: r.Customer.Phone,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func parseReservationPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "reservations" {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func parseReservationStatusPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "reservations" || parts[2] != "status" {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
