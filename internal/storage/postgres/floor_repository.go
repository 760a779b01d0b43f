package postgres

import (
	"context"
	"fmt"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FloorRepository struct {
	pool *pgxpool.Pool
}

func NewFloorRepository(pool *pgxpool.Pool) *FloorRepository {
	return &FloorRepository{pool: pool}
}

func (r *FloorRepository) CreateZone(ctx context.Context, zone domain.Zone) error {
	const stmt = `
INSERT INTO zones (id, name, created_at)
VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, stmt, zone.ID, zone.Name, zone.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create zone: %w", err)
	}
	return nil
}

func (r *FloorRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	const query = `
SELECT id, name, created_at
FROM zones
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		var zone domain.Zone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, zone)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate zones: %w", rows.Err())
	}
	return zones, nil
}

func (r *FloorRepository) RenameZone(ctx context.Context, id, name string) error {
	const stmt = `UPDATE zones SET name = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id, name)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("rename zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *FloorRepository) DeleteZone(ctx context.Context, id string) error {
	const stmt = `DELETE FROM zones WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrZoneHasTables
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *FloorRepository) CreateTable(ctx context.Context, table domain.Table) error {
	const stmt = `
INSERT INTO tables (id, zone_id, table_number, capacity, description, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, stmt,
		table.ID,
		table.ZoneID,
		table.Number,
		table.Capacity,
		table.Description,
		table.Status,
		table.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTableNumberTaken
		}
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (r *FloorRepository) ListTables(ctx context.Context, zoneID string) ([]domain.Table, error) {
	const query = `
SELECT id, zone_id, table_number, capacity, description, status, created_at
FROM tables
WHERE $1 = '' OR zone_id::text = $1
ORDER BY table_number ASC`
	rows, err := r.pool.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	return scanTables(rows)
}

func (r *FloorRepository) GetTable(ctx context.Context, id string) (domain.Table, error) {
	const query = `
SELECT id, zone_id, table_number, capacity, description, status, created_at
FROM tables
WHERE id = $1`
	table, err := scanTable(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Table{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Table{}, domain.ErrTableNotFound
		}
		return domain.Table{}, fmt.Errorf("get table: %w", err)
	}
	return table, nil
}

func (r *FloorRepository) UpdateTable(ctx context.Context, table domain.Table) error {
	const stmt = `
UPDATE tables
SET zone_id = $2, table_number = $3, capacity = $4, description = $5
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, table.ID, table.ZoneID, table.Number, table.Capacity, table.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTableNumberTaken
		}
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (r *FloorRepository) SetTableStatus(ctx context.Context, id string, status domain.TableStatus) error {
	const stmt = `UPDATE tables SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("set table status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (r *FloorRepository) DeleteTable(ctx context.Context, id string) error {
	const stmt = `DELETE FROM tables WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func scanTables(rows pgx.Rows) ([]domain.Table, error) {
	var tables []domain.Table
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, table)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate tables: %w", rows.Err())
	}
	return tables, nil
}

func scanTable(row pgx.Row) (domain.Table, error) {
	var table domain.Table
	var status string
	err := row.Scan(
		&table.ID,
		&table.ZoneID,
		&table.Number,
		&table.Capacity,
		&table.Description,
		&status,
		&table.CreatedAt,
	)
	if err != nil {
		return domain.Table{}, err
	}
	table.Status = domain.TableStatus(status)
	return table, nil
}
