package app

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

// fakeAvailabilityRepo mirrors the SQL semantics of the real repository in
// memory: status, capacity, zone and occupancy filters plus the
// capacity-then-number ordering.
type fakeAvailabilityRepo struct {
	slots        []domain.Slot
	tables       []domain.Table
	reservations []domain.Reservation
}

func (f *fakeAvailabilityRepo) ListSlotsByDay(_ context.Context, day domain.DayOfWeek) ([]domain.Slot, error) {
	var out []domain.Slot
	for _, s := range f.slots {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListOpenTables(_ context.Context, date string, slotIDs []string, zoneID string, partySize int) ([]domain.Table, error) {
	occupied := make(map[string]bool)
	for _, r := range f.reservations {
		if r.Date != date || r.Status == domain.ReservationStatusCancelled {
			continue
		}
		for _, id := range slotIDs {
			if r.SlotID == id {
				occupied[r.TableID] = true
			}
		}
	}

	var out []domain.Table
	for _, tb := range f.tables {
		if tb.Blocked() || tb.Capacity < partySize || occupied[tb.ID] {
			continue
		}
		if zoneID != "" && tb.ZoneID != zoneID {
			continue
		}
		out = append(out, tb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

func TestAvailabilityService_ListSlotTimes(t *testing.T) {
	t.Parallel()

	repo := &fakeAvailabilityRepo{slots: []domain.Slot{
		{ID: "s1", Day: domain.DayFriday, Time: "21:00"},
		{ID: "s2", Day: domain.DayFriday, Time: "20:00"},
		{ID: "s3", Day: domain.DayFriday, Time: "20:00"}, // duplicate definition
		{ID: "s4", Day: domain.DaySaturday, Time: "13:30"},
	}}
	svc := NewAvailabilityService(repo)

	// 2024-05-17 is a Friday.
	times, err := svc.ListSlotTimes(context.Background(), "2024-05-17")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(times, []string{"20:00", "21:00"}) {
		t.Fatalf("expected deduplicated sorted times, got %v", times)
	}

	t.Run("closed day is empty, not an error", func(t *testing.T) {
		times, err := svc.ListSlotTimes(context.Background(), "2024-05-20") // Monday
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(times) != 0 {
			t.Fatalf("expected no times, got %v", times)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, err := svc.ListSlotTimes(context.Background(), "17-05-2024"); err != domain.ErrInvalidDate {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestAvailabilityService_FindTables(t *testing.T) {
	t.Parallel()

	terrace := "zone-terrace"
	hall := "zone-hall"
	baseSlots := []domain.Slot{
		{ID: "slot-fri-20", Day: domain.DayFriday, Time: "20:00"},
		{ID: "slot-fri-20-dup", Day: domain.DayFriday, Time: "20:00"},
		{ID: "slot-fri-21", Day: domain.DayFriday, Time: "21:00"},
	}
	baseTables := []domain.Table{
		{ID: "t5", ZoneID: terrace, Number: 5, Capacity: 4, Status: domain.TableStatusAvailable},
		{ID: "t6", ZoneID: terrace, Number: 6, Capacity: 2, Status: domain.TableStatusAvailable},
		{ID: "t7", ZoneID: terrace, Number: 7, Capacity: 8, Status: domain.TableStatusBlocked},
		{ID: "t8", ZoneID: hall, Number: 8, Capacity: 4, Status: domain.TableStatusAvailable},
	}

	in := FindTablesInput{Date: "2024-05-17", Time: "20:00", ZoneID: terrace, PartySize: 3}

	t.Run("filters capacity, zone and blocked state", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{slots: baseSlots, tables: baseTables})

		tables, err := svc.FindTables(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 1 || tables[0].ID != "t5" {
			t.Fatalf("expected only table #5, got %+v", tables)
		}
	})

	t.Run("all zones when zone unset, smallest adequate table first", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{slots: baseSlots, tables: baseTables})

		tables, err := svc.FindTables(context.Background(), FindTablesInput{Date: "2024-05-17", Time: "20:00", PartySize: 3})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 2 || tables[0].Number != 5 || tables[1].Number != 8 {
			t.Fatalf("expected tables #5 then #8, got %+v", tables)
		}
	})

	t.Run("booking against a duplicate slot id still occupies the table", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{
			slots:  baseSlots,
			tables: baseTables,
			reservations: []domain.Reservation{
				{Date: "2024-05-17", SlotID: "slot-fri-20-dup", TableID: "t5", Status: domain.ReservationStatusConfirmed},
			},
		})

		tables, err := svc.FindTables(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 0 {
			t.Fatalf("expected no tables, got %+v", tables)
		}
	})

	t.Run("cancelled reservation frees the table", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{
			slots:  baseSlots,
			tables: baseTables,
			reservations: []domain.Reservation{
				{Date: "2024-05-17", SlotID: "slot-fri-20", TableID: "t5", Status: domain.ReservationStatusCancelled},
			},
		})

		tables, err := svc.FindTables(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 1 || tables[0].ID != "t5" {
			t.Fatalf("expected table #5, got %+v", tables)
		}
	})

	t.Run("same query twice returns identical results", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{slots: baseSlots, tables: baseTables})

		first, err := svc.FindTables(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := svc.FindTables(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical results, got %+v then %+v", first, second)
		}
	})

	t.Run("no slot at that time is a validation error", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{slots: baseSlots, tables: baseTables})

		_, err := svc.FindTables(context.Background(), FindTablesInput{Date: "2024-05-17", Time: "22:00", ZoneID: terrace, PartySize: 2})
		if err != domain.ErrNoSlotAtTime {
			t.Fatalf("expected ErrNoSlotAtTime, got %v", err)
		}
	})

	t.Run("rejects non-positive party size", func(t *testing.T) {
		svc := NewAvailabilityService(&fakeAvailabilityRepo{slots: baseSlots, tables: baseTables})

		_, err := svc.FindTables(context.Background(), FindTablesInput{Date: "2024-05-17", Time: "20:00", PartySize: 0})
		if err != domain.ErrInvalidPartySize {
			t.Fatalf("expected ErrInvalidPartySize, got %v", err)
		}
	})
}
