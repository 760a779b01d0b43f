package postgres

import (
	"context"
	"fmt"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Constraint names from migrations/001_init.sql; insert errors are told
// apart by which one fired.
const (
	seatConstraint = "reservations_active_seat_idx"
	codeConstraint = "reservations_code_key"
)

type ReservationRepository struct {
	pool  *pgxpool.Pool
	slots *SlotRepository
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{
		pool:  pool,
		slots: NewSlotRepository(pool),
	}
}

func (r *ReservationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *ReservationRepository) ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error) {
	return r.slots.ListSlotsByDay(ctx, day)
}

// GetTableForUpdate locks the table row for the rest of the transaction, so
// concurrent bookings of the same table queue up behind each other.
func (r *ReservationRepository) GetTableForUpdate(ctx context.Context, tableID string) (domain.Table, error) {
	const query = `
SELECT id, zone_id, table_number, capacity, description, status, created_at
FROM tables
WHERE id = $1
FOR UPDATE`
	table, err := scanTable(r.queryRow(ctx, query, tableID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Table{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Table{}, domain.ErrTableNotFound
		}
		return domain.Table{}, fmt.Errorf("get table for update: %w", err)
	}
	return table, nil
}

func (r *ReservationRepository) HasActiveReservation(ctx context.Context, date string, slotIDs []string, tableID string) (bool, error) {
	const query = `
SELECT EXISTS (
  SELECT 1
  FROM reservations
  WHERE reserved_on = $1::date
    AND slot_id = ANY($2::uuid[])
    AND table_id = $3
    AND status <> 'cancelada'
)`
	var exists bool
	if err := r.queryRow(ctx, query, date, slotIDs, tableID).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return false, domain.ErrInvalidID
		}
		return false, fmt.Errorf("check active reservation: %w", err)
	}
	return exists, nil
}

func (r *ReservationRepository) InsertReservation(ctx context.Context, res domain.Reservation) error {
	const stmt = `
INSERT INTO reservations (
	id, code, reserved_on, slot_id, table_id, party_size,
	customer_name, customer_dni, customer_email, customer_phone,
	status, created_at
)
VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.exec(ctx, stmt,
		res.ID,
		res.Code,
		res.Date,
		res.SlotID,
		res.TableID,
		res.PartySize,
		res.Customer.Name,
		res.Customer.NationalID,
		res.Customer.Email,
		res.Customer.Phone,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		switch uniqueConstraint(err) {
		case seatConstraint:
			return domain.ErrTableAlreadyReserved
		case codeConstraint:
			return domain.ErrCodeCollision
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

const reservationColumns = `
r.id, r.code, to_char(r.reserved_on, 'YYYY-MM-DD'), r.slot_id, r.table_id, r.party_size,
r.customer_name, r.customer_dni, r.customer_email, r.customer_phone,
r.status, r.created_at,
COALESCE(s.spot_time, ''), COALESCE(t.table_number, 0), COALESCE(z.name, '')`

const reservationJoins = `
FROM reservations r
LEFT JOIN slots s ON s.id = r.slot_id
LEFT JOIN tables t ON t.id = r.table_id
LEFT JOIN zones z ON z.id = t.zone_id`

func (r *ReservationRepository) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE r.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *ReservationRepository) GetReservationByCode(ctx context.Context, code string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE r.code = $1`
	return r.getOne(ctx, query, code)
}

func (r *ReservationRepository) FindReservationByCustomer(ctx context.Context, nationalID, code string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE r.customer_dni = $1 AND r.code = $2`
	return r.getOne(ctx, query, nationalID, code)
}

func (r *ReservationRepository) getOne(ctx context.Context, query string, args ...any) (domain.Reservation, error) {
	res, err := scanReservation(r.queryRow(ctx, query, args...))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Reservation{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, status domain.ReservationStatus, date string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + `
WHERE ($1 = '' OR r.status = $1)
  AND ($2 = '' OR r.reserved_on = $2::date)
ORDER BY r.reserved_on DESC, COALESCE(s.spot_time, '') ASC, r.created_at ASC`

	rows, err := r.pool.Query(ctx, query, string(status), date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate reservations: %w", rows.Err())
	}
	return out, nil
}

// UpdateReservationStatus applies the transition only when the row still
// carries the status the caller saw, so two operators racing on the same
// reservation cannot both win.
func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error {
	const stmt = `UPDATE reservations SET status = $3 WHERE id = $1 AND status = $2`
	tag, err := r.exec(ctx, stmt, id, from, to)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		const existsQuery = `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`
		var exists bool
		if err := r.queryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
			return fmt.Errorf("check reservation: %w", err)
		}
		if !exists {
			return domain.ErrReservationNotFound
		}
		return domain.ErrInvalidStatusTransition
	}
	return nil
}

func scanReservation(row pgx.Row) (domain.Reservation, error) {
	var res domain.Reservation
	var status string
	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.Date,
		&res.SlotID,
		&res.TableID,
		&res.PartySize,
		&res.Customer.Name,
		&res.Customer.NationalID,
		&res.Customer.Email,
		&res.Customer.Phone,
		&status,
		&res.CreatedAt,
		&res.SlotTime,
		&res.TableNumber,
		&res.ZoneName,
	)
	if err != nil {
		return domain.Reservation{}, err
	}
	res.Status = domain.ReservationStatus(status)
	return res, nil
}

func (r *ReservationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReservationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
