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

// AdminZoneService is the minimal interface needed for admin zone endpoints.
type AdminZoneService interface {
	CreateZone(ctx context.Context, name string) (domain.Zone, error)
	ListZones(ctx context.Context) ([]domain.Zone, error)
	RenameZone(ctx context.Context, id, name string) error
	DeleteZone(ctx context.Context, id string) error
}

// AdminTableService is the minimal interface needed for admin table endpoints.
type AdminTableService interface {
	CreateTable(ctx context.Context, in app.CreateTableInput) (domain.Table, error)
	ListTables(ctx context.Context, zoneID string) ([]domain.Table, error)
	UpdateTable(ctx context.Context, in app.UpdateTableInput) (domain.Table, error)
	SetBlocked(ctx context.Context, id string, blocked bool) (domain.Table, error)
	DeleteTable(ctx context.Context, id string) error
}

// AdminSlotService is the minimal interface needed for admin slot endpoints.
type AdminSlotService interface {
	CreateSlot(ctx context.Context, in app.CreateSlotInput) (domain.Slot, error)
	ListSlots(ctx context.Context) ([]domain.Slot, error)
	ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

// HandleAdminZones returns an HTTP handler for zone creation/listing.
func HandleAdminZones(svc AdminZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			zones, err := svc.ListZones(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]zoneResponse, 0, len(zones))
			for _, zone := range zones {
				resp = append(resp, newZoneResponse(zone))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req zoneRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			zone, err := svc.CreateZone(r.Context(), req.Name)
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newZoneResponse(zone))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminZone returns an HTTP handler for renaming or deleting one zone.
func HandleAdminZone(svc AdminZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseAdminPath(r.URL.Path, "zones")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodPatch:
			var req zoneRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := svc.RenameZone(r.Context(), id, req.Name); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodDelete:
			if err := svc.DeleteZone(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminTables returns an HTTP handler for table creation/listing.
func HandleAdminTables(svc AdminTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tables, err := svc.ListTables(r.Context(), r.URL.Query().Get("zone_id"))
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
			return
		case http.MethodPost:
			var req tableRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			table, err := svc.CreateTable(r.Context(), app.CreateTableInput{
				Number:      req.Number,
				Capacity:    req.Capacity,
				ZoneID:      req.ZoneID,
				Description: req.Description,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newTableResponse(table))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminTable returns an HTTP handler for updating, blocking or
// deleting one table. PATCH on /admin/tables/{id} rewrites the table;
// PATCH on /admin/tables/{id}/blocked flips only its blocked state.
func HandleAdminTable(svc AdminTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, ok := parseAdminTableBlockedPath(r.URL.Path); ok {
			if r.Method != http.MethodPatch {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}

			var req setBlockedRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if req.Blocked == nil {
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, "blocked is required")
				return
			}

			table, err := svc.SetBlocked(r.Context(), id, *req.Blocked)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newTableResponse(table))
			return
		}

		id, ok := parseAdminPath(r.URL.Path, "tables")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodPatch:
			var req tableRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			table, err := svc.UpdateTable(r.Context(), app.UpdateTableInput{
				ID:          id,
				Number:      req.Number,
				Capacity:    req.Capacity,
				ZoneID:      req.ZoneID,
				Description: req.Description,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newTableResponse(table))
			return
		case http.MethodDelete:
			if err := svc.DeleteTable(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminSlots returns an HTTP handler for slot creation/listing.
func HandleAdminSlots(svc AdminSlotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			var (
				slots []domain.Slot
				err   error
			)
			if day := r.URL.Query().Get("day"); day != "" {
				slots, err = svc.ListSlotsByDay(r.Context(), domain.DayOfWeek(day))
			} else {
				slots, err = svc.ListSlots(r.Context())
			}
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]slotResponse, 0, len(slots))
			for _, slot := range slots {
				resp = append(resp, newSlotResponse(slot))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createSlotRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			slot, err := svc.CreateSlot(r.Context(), app.CreateSlotInput{
				Day:  domain.DayOfWeek(req.Day),
				Time: req.Time,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newSlotResponse(slot))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminSlot returns an HTTP handler for deleting one slot.
func HandleAdminSlot(svc AdminSlotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseAdminPath(r.URL.Path, "slots")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		if err := svc.DeleteSlot(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type zoneRequest struct {
	Name string `json:"name"`
}

type zoneResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newZoneResponse(z domain.Zone) zoneResponse {
	return zoneResponse{ID: z.ID, Name: z.Name, CreatedAt: z.CreatedAt}
}

type tableRequest struct {
	Number      int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
	ZoneID      string `json:"zone_id"`
	Description string `json:"description"`
}

type setBlockedRequest struct {
	Blocked *bool `json:"blocked"`
}

type tableResponse struct {
	ID          string    `json:"id"`
	ZoneID      string    `json:"zone_id"`
	Number      int       `json:"table_number"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTableResponse(t domain.Table) tableResponse {
	return tableResponse{
		ID:          t.ID,
		ZoneID:      t.ZoneID,
		Number:      t.Number,
		Capacity:    t.Capacity,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

type createSlotRequest struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type slotResponse struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

func newSlotResponse(s domain.Slot) slotResponse {
	return slotResponse{ID: s.ID, Day: string(s.Day), Time: s.Time, CreatedAt: s.CreatedAt}
}

func parseAdminPath(path, resource string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != resource {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

func parseAdminTableBlockedPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "tables" || parts[3] != "blocked" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
