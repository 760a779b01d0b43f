package app

import (
	"context"
	"sort"

	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

type AvailabilityRepository interface {
	ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error)
	// ListOpenTables returns available tables with capacity >= partySize,
	// optionally restricted to a zone, excluding any table holding a
	// non-cancelled reservation on date against any of slotIDs. Ordered by
	// capacity asc, then table number asc.
	ListOpenTables(ctx context.Context, date string, slotIDs []string, zoneID string, partySize int) ([]domain.Table, error)
}

// AvailabilityService answers read-only "what can be booked" queries. It
// never reserves anything; a table it returns can still be claimed by a
// concurrent caller before the commit.
type AvailabilityService struct {
	repo AvailabilityRepository
}

func NewAvailabilityService(repo AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// ListSlotTimes returns the bookable times for a date as deduplicated,
// ascending HH:MM strings. A day with no slots is an empty result, not an
// error: the restaurant is closed.
func (s *AvailabilityService) ListSlotTimes(ctx context.Context, date string) ([]string, error) {
	day, err := domain.WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.ListSlotsByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(slots))
	times := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot.Time]; ok {
			continue
		}
		seen[slot.Time] = struct{}{}
		times = append(times, slot.Time)
	}
	sort.Strings(times)
	return times, nil
}

type FindTablesInput struct {
	Date      string
	Time      string
	ZoneID    string // empty means all zones
	PartySize int
}

// FindTables lists the tables that can seat the party at the given date and
// time, smallest adequate table first.
func (s *AvailabilityService) FindTables(ctx context.Context, in FindTablesInput) ([]domain.Table, error) {
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.PartySize <= 0 {
		return nil, domain.ErrInvalidPartySize
	}

	slotIDs, err := s.resolveSlotIDs(ctx, date, in.Time)
	if err != nil {
		return nil, err
	}

	return s.repo.ListOpenTables(ctx, date, slotIDs, in.ZoneID, in.PartySize)
}

// resolveSlotIDs maps (date, time) to every matching slot id for that
// weekday. Duplicate (day, time) definitions all count: a table booked
// against any of them is occupied.
func (s *AvailabilityService) resolveSlotIDs(ctx context.Context, date, timeOfDay string) ([]string, error) {
	spot, err := domain.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	day, err := domain.WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.ListSlotsByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, slot := range slots {
		if slot.Time == spot {
			ids = append(ids, slot.ID)
		}
	}
	if len(ids) == 0 {
		return nil, domain.ErrNoSlotAtTime
	}
	return ids, nil
}
