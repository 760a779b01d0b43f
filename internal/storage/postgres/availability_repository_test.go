package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/Nickolan/Restaurante-modelo-web/internal/testutil"
)

func TestAvailabilityRepository_ListOpenTables(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewAvailabilityRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	terrace := testutil.InsertZone(t, ctx, pool, "Terraza")
	hall := testutil.InsertZone(t, ctx, pool, "Sala")
	big := testutil.InsertTable(t, ctx, pool, terrace, 5, 4, domain.TableStatusAvailable)
	small := testutil.InsertTable(t, ctx, pool, terrace, 6, 2, domain.TableStatusAvailable)
	blocked := testutil.InsertTable(t, ctx, pool, terrace, 7, 8, domain.TableStatusBlocked)
	inHall := testutil.InsertTable(t, ctx, pool, hall, 8, 4, domain.TableStatusAvailable)

	slotID := testutil.InsertSlot(t, ctx, pool, domain.DayFriday, "20:00")
	slotDup := testutil.InsertSlot(t, ctx, pool, domain.DayFriday, "20:00")
	_ = blocked

	t.Run("capacity, zone and block filters with ordering", func(t *testing.T) {
		tables, err := repo.ListOpenTables(ctx, "2024-05-17", []string{slotID, slotDup}, "", 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 3 {
			t.Fatalf("expected 3 tables, got %d", len(tables))
		}
		// capacity asc, then number asc: #6 (2), #5 (4), #8 (4)
		if tables[0].ID != small || tables[1].ID != big || tables[2].ID != inHall {
			t.Fatalf("unexpected order: %+v", tables)
		}

		onlyTerrace, err := repo.ListOpenTables(ctx, "2024-05-17", []string{slotID, slotDup}, terrace, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(onlyTerrace) != 1 || onlyTerrace[0].ID != big {
			t.Fatalf("expected table #5 only, got %+v", onlyTerrace)
		}
	})

	t.Run("occupancy counts any equivalent slot id", func(t *testing.T) {
		resID := testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			Code: "RES-AAAAAA", Date: "2024-05-17", SlotID: slotDup, TableID: big, PartySize: 3,
			Customer: domain.Customer{Name: "Ana", NationalID: "1"}, Status: domain.ReservationStatusConfirmed,
		})

		tables, err := repo.ListOpenTables(ctx, "2024-05-17", []string{slotID, slotDup}, terrace, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 0 {
			t.Fatalf("expected no tables, got %+v", tables)
		}

		// A different date is unaffected.
		nextWeek, err := repo.ListOpenTables(ctx, "2024-05-24", []string{slotID, slotDup}, terrace, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(nextWeek) != 1 || nextWeek[0].ID != big {
			t.Fatalf("expected table #5, got %+v", nextWeek)
		}

		// Cancelling restores availability.
		if _, err := pool.Exec(ctx, `UPDATE reservations SET status = 'cancelada' WHERE id = $1`, resID); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		tables, err = repo.ListOpenTables(ctx, "2024-05-17", []string{slotID, slotDup}, terrace, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tables) != 1 || tables[0].ID != big {
			t.Fatalf("expected table #5 back, got %+v", tables)
		}
	})

	t.Run("slots by day come back in creation order", func(t *testing.T) {
		slots, err := repo.ListSlotsByDay(ctx, domain.DayFriday)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(slots) != 2 || slots[0].ID != slotID || slots[1].ID != slotDup {
			t.Fatalf("unexpected slots: %+v", slots)
		}
		for _, s := range slots {
			if s.Time != "20:00" {
				t.Fatalf("unexpected time: %+v", s)
			}
			if s.CreatedAt.IsZero() || s.CreatedAt.After(time.Now().Add(time.Minute)) {
				t.Fatalf("unexpected created_at: %+v", s)
			}
		}
	})
}
