package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/Nickolan/Restaurante-modelo-web/internal/testutil"
	"github.com/google/uuid"
)

func TestFloorRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewFloorRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	now := time.Now().UTC()

	t.Run("zone delete is blocked by tables", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		zoneID := testutil.InsertZone(t, ctx, pool, "Terraza")
		tableID := testutil.InsertTable(t, ctx, pool, zoneID, 1, 2, domain.TableStatusAvailable)

		if err := repo.DeleteZone(ctx, zoneID); err != domain.ErrZoneHasTables {
			t.Fatalf("expected ErrZoneHasTables, got %v", err)
		}
		if err := repo.DeleteTable(ctx, tableID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.DeleteZone(ctx, zoneID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.DeleteZone(ctx, zoneID); err != domain.ErrZoneNotFound {
			t.Fatalf("expected ErrZoneNotFound, got %v", err)
		}
	})

	t.Run("table number is unique", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		zoneID := testutil.InsertZone(t, ctx, pool, "Terraza")
		testutil.InsertTable(t, ctx, pool, zoneID, 1, 2, domain.TableStatusAvailable)

		err := repo.CreateTable(ctx, domain.Table{
			ID:        uuid.NewString(),
			ZoneID:    zoneID,
			Number:    1,
			Capacity:  4,
			Status:    domain.TableStatusAvailable,
			CreatedAt: now,
		})
		if err != domain.ErrTableNumberTaken {
			t.Fatalf("expected ErrTableNumberTaken, got %v", err)
		}

		err = repo.CreateTable(ctx, domain.Table{
			ID:        uuid.NewString(),
			ZoneID:    uuid.NewString(),
			Number:    2,
			Capacity:  4,
			Status:    domain.TableStatusAvailable,
			CreatedAt: now,
		})
		if err != domain.ErrZoneNotFound {
			t.Fatalf("expected ErrZoneNotFound, got %v", err)
		}
	})

	t.Run("set status round trip", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		zoneID := testutil.InsertZone(t, ctx, pool, "Terraza")
		tableID := testutil.InsertTable(t, ctx, pool, zoneID, 1, 2, domain.TableStatusAvailable)

		if err := repo.SetTableStatus(ctx, tableID, domain.TableStatusBlocked); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		table, err := repo.GetTable(ctx, tableID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if table.Status != domain.TableStatusBlocked {
			t.Fatalf("expected bloqueada, got %s", table.Status)
		}

		if err := repo.SetTableStatus(ctx, uuid.NewString(), domain.TableStatusBlocked); err != domain.ErrTableNotFound {
			t.Fatalf("expected ErrTableNotFound, got %v", err)
		}
		if _, err := repo.GetTable(ctx, "not-a-uuid"); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("list tables filters by zone", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		terrace := testutil.InsertZone(t, ctx, pool, "Terraza")
		hall := testutil.InsertZone(t, ctx, pool, "Sala")
		testutil.InsertTable(t, ctx, pool, terrace, 2, 2, domain.TableStatusAvailable)
		testutil.InsertTable(t, ctx, pool, hall, 1, 2, domain.TableStatusAvailable)

		all, err := repo.ListTables(ctx, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 2 || all[0].Number != 1 {
			t.Fatalf("expected 2 tables ordered by number, got %+v", all)
		}

		onlyHall, err := repo.ListTables(ctx, hall)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(onlyHall) != 1 || onlyHall[0].Number != 1 {
			t.Fatalf("unexpected tables: %+v", onlyHall)
		}
	})
}
