package app

import (
	"context"
	"strings"

	"github.com/Nickolan/Restaurante-modelo-web/internal/clock"
	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

type FloorRepository interface {
	CreateZone(ctx context.Context, zone domain.Zone) error
	ListZones(ctx context.Context) ([]domain.Zone, error)
	RenameZone(ctx context.Context, id, name string) error
	DeleteZone(ctx context.Context, id string) error

	CreateTable(ctx context.Context, table domain.Table) error
	ListTables(ctx context.Context, zoneID string) ([]domain.Table, error)
	GetTable(ctx context.Context, id string) (domain.Table, error)
	UpdateTable(ctx context.Context, table domain.Table) error
	SetTableStatus(ctx context.Context, id string, status domain.TableStatus) error
	DeleteTable(ctx context.Context, id string) error
}

// FloorService manages the zone and table inventory.
type FloorService struct {
	repo  FloorRepository
	clock clock.Clock
}

func NewFloorService(repo FloorRepository, clk clock.Clock) *FloorService {
	return &FloorService{
		repo:  repo,
		clock: clk,
	}
}

func (s *FloorService) CreateZone(ctx context.Context, name string) (domain.Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Zone{}, domain.ErrZoneNameRequired
	}

	zone := domain.Zone{
		ID:        newID(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return domain.Zone{}, err
	}
	return zone, nil
}

func (s *FloorService) ListZones(ctx context.Context) ([]domain.Zone, error) {
	return s.repo.ListZones(ctx)
}

func (s *FloorService) RenameZone(ctx context.Context, id, name string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrZoneNameRequired
	}
	return s.repo.RenameZone(ctx, id, name)
}

// DeleteZone removes an empty zone. Zones still referenced by tables are
// protected and deletion fails with ErrZoneHasTables.
func (s *FloorService) DeleteZone(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteZone(ctx, id)
}

type CreateTableInput struct {
	Number      int
	Capacity    int
	ZoneID      string
	Description string
}

func (s *FloorService) CreateTable(ctx context.Context, in CreateTableInput) (domain.Table, error) {
	if in.Number <= 0 {
		return domain.Table{}, domain.ErrInvalidTableNumber
	}
	if in.Capacity <= 0 {
		return domain.Table{}, domain.ErrInvalidCapacity
	}
	if in.ZoneID == "" {
		return domain.Table{}, domain.ErrInvalidID
	}

	table := domain.Table{
		ID:          newID(),
		ZoneID:      in.ZoneID,
		Number:      in.Number,
		Capacity:    in.Capacity,
		Description: strings.TrimSpace(in.Description),
		Status:      domain.TableStatusAvailable,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return domain.Table{}, err
	}
	return table, nil
}

// ListTables returns the whole floor, or one zone when zoneID is non-empty.
func (s *FloorService) ListTables(ctx context.Context, zoneID string) ([]domain.Table, error) {
	return s.repo.ListTables(ctx, zoneID)
}

type UpdateTableInput struct {
	ID          string
	Number      int
	Capacity    int
	ZoneID      string
	Description string
}

func (s *FloorService) UpdateTable(ctx context.Context, in UpdateTableInput) (domain.Table, error) {
	if in.ID == "" {
		return domain.Table{}, domain.ErrInvalidID
	}
	if in.Number <= 0 {
		return domain.Table{}, domain.ErrInvalidTableNumber
	}
	if in.Capacity <= 0 {
		return domain.Table{}, domain.ErrInvalidCapacity
	}

	table, err := s.repo.GetTable(ctx, in.ID)
	if err != nil {
		return domain.Table{}, err
	}
	table.Number = in.Number
	table.Capacity = in.Capacity
	table.Description = strings.TrimSpace(in.Description)
	if in.ZoneID != "" {
		table.ZoneID = in.ZoneID
	}

	if err := s.repo.UpdateTable(ctx, table); err != nil {
		return domain.Table{}, err
	}
	return table, nil
}

// SetBlocked toggles a table in or out of the bookable pool without touching
// its reservations.
func (s *FloorService) SetBlocked(ctx context.Context, id string, blocked bool) (domain.Table, error) {
	if id == "" {
		return domain.Table{}, domain.ErrInvalidID
	}

	status := domain.TableStatusAvailable
	if blocked {
		status = domain.TableStatusBlocked
	}
	if err := s.repo.SetTableStatus(ctx, id, status); err != nil {
		return domain.Table{}, err
	}
	return s.repo.GetTable(ctx, id)
}

// DeleteTable removes a table even when historical reservations reference
// it; those reservations remain readable, minus the table join.
func (s *FloorService) DeleteTable(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteTable(ctx, id)
}
