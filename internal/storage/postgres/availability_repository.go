package postgres

import (
	"context"
	"fmt"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityRepository serves the read-only booking queries. It shares the
// slots table with SlotRepository and the tables table with FloorRepository.
type AvailabilityRepository struct {
	pool  *pgxpool.Pool
	slots *SlotRepository
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{
		pool:  pool,
		slots: NewSlotRepository(pool),
	}
}

func (r *AvailabilityRepository) ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error) {
	return r.slots.ListSlotsByDay(ctx, day)
}

// ListOpenTables returns the bookable tables for one date and set of
// equivalent slot ids: disponible, big enough, optionally inside one zone,
// and not holding a live reservation against any of the slot ids. Smallest
// adequate table first.
func (r *AvailabilityRepository) ListOpenTables(ctx context.Context, date string, slotIDs []string, zoneID string, partySize int) ([]domain.Table, error) {
	const query = `
SELECT t.id, t.zone_id, t.table_number, t.capacity, t.description, t.status, t.created_at
FROM tables t
WHERE t.status = 'disponible'
  AND t.capacity >= $1
  AND ($2 = '' OR t.zone_id::text = $2)
  AND NOT EXISTS (
    SELECT 1
    FROM reservations r
    WHERE r.table_id = t.id
      AND r.reserved_on = $3::date
      AND r.slot_id = ANY($4::uuid[])
      AND r.status <> 'cancelada'
  )
ORDER BY t.capacity ASC, t.table_number ASC`

	rows, err := r.pool.Query(ctx, query, partySize, zoneID, date, slotIDs)
	if err != nil {
		return nil, fmt.Errorf("list open tables: %w", err)
	}
	defer rows.Close()
	return scanTables(rows)
}
