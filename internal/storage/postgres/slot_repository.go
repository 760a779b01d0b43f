package postgres

import (
	"context"
	"fmt"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) CreateSlot(ctx context.Context, slot domain.Slot) error {
	const stmt = `
INSERT INTO slots (id, day_of_week, spot_time, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, stmt, slot.ID, slot.Day, slot.Time, slot.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

func (r *SlotRepository) ListSlots(ctx context.Context) ([]domain.Slot, error) {
	const query = `
SELECT id, day_of_week, spot_time, created_at
FROM slots
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	return scanSlots(rows)
}

func (r *SlotRepository) ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error) {
	const query = `
SELECT id, day_of_week, spot_time, created_at
FROM slots
WHERE day_of_week = $1
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("list slots by day: %w", err)
	}
	defer rows.Close()
	return scanSlots(rows)
}

func (r *SlotRepository) DeleteSlot(ctx context.Context, id string) error {
	const stmt = `DELETE FROM slots WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

func scanSlots(rows pgx.Rows) ([]domain.Slot, error) {
	var slots []domain.Slot
	for rows.Next() {
		var slot domain.Slot
		var day string
		if err := rows.Scan(&slot.ID, &day, &slot.Time, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slot.Day = domain.DayOfWeek(day)
		slots = append(slots, slot)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate slots: %w", rows.Err())
	}
	return slots, nil
}
