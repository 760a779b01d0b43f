package app

import (
	"context"

	"github.com/Nickolan/Restaurante-modelo-web/internal/clock"
	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

type SlotRepository interface {
	CreateSlot(ctx context.Context, slot domain.Slot) error
	ListSlots(ctx context.Context) ([]domain.Slot, error)
	ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

// SlotService manages the recurring weekly schedule ("turnos").
type SlotService struct {
	repo  SlotRepository
	clock clock.Clock
}

func NewSlotService(repo SlotRepository, clk clock.Clock) *SlotService {
	return &SlotService{
		repo:  repo,
		clock: clk,
	}
}

type CreateSlotInput struct {
	Day  domain.DayOfWeek
	Time string
}

// CreateSlot adds a schedulable entry. Duplicate (day, time) pairs are
// permitted and treated as interchangeable by availability queries.
func (s *SlotService) CreateSlot(ctx context.Context, in CreateSlotInput) (domain.Slot, error) {
	if !in.Day.Valid() {
		return domain.Slot{}, domain.ErrInvalidDay
	}
	spot, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return domain.Slot{}, err
	}

	slot := domain.Slot{
		ID:        newID(),
		Day:       in.Day,
		Time:      spot,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

func (s *SlotService) ListSlots(ctx context.Context) ([]domain.Slot, error) {
	return s.repo.ListSlots(ctx)
}

func (s *SlotService) ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error) {
	if !day.Valid() {
		return nil, domain.ErrInvalidDay
	}
	return s.repo.ListSlotsByDay(ctx, day)
}

// DeleteSlot removes a schedule entry. Reservations already taken against it
// are kept; the slot simply stops being offered.
func (s *SlotService) DeleteSlot(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteSlot(ctx, id)
}
