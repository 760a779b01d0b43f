package app

import (
	"context"

	"github.com/Nickolan/Restaurante-modelo-web/internal/clock"
	"github.com/Nickolan/Restaurante-modelo-web/internal/domain"
)

type ReservationFilter struct {
	Status domain.ReservationStatus // zero value means any
	Date   string                   // YYYY-MM-DD, empty means any
}

type ReservationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListSlotsByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Slot, error)
	GetTableForUpdate(ctx context.Context, tableID string) (domain.Table, error)
	HasActiveReservation(ctx context.Context, date string, slotIDs []string, tableID string) (bool, error)
	InsertReservation(ctx context.Context, r domain.Reservation) error
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	GetReservationByCode(ctx context.Context, code string) (domain.Reservation, error)
	FindReservationByCustomer(ctx context.Context, nationalID, code string) (domain.Reservation, error)
	ListReservations(ctx context.Context, status domain.ReservationStatus, date string) ([]domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error
}

// ReservationService is the only write entry point of the booking workflow.
type ReservationService struct {
	repo  ReservationRepository
	clock clock.Clock
}

func NewReservationService(repo ReservationRepository, clk clock.Clock) *ReservationService {
	return &ReservationService{
		repo:  repo,
		clock: clk,
	}
}

type BookInput struct {
	Date      string
	Time      string
	ZoneID    string // optional; when set the table must belong to it
	TableID   string
	PartySize int
	Customer  domain.Customer
	// Status defaults to confirmada: customer bookings need no approval.
	// Operators may book as pendiente.
	Status domain.ReservationStatus
}

const maxCodeAttempts = 3

// Book commits a reservation for one table, date and slot. The table row is
// locked for the duration of the transaction, so concurrent bookings of the
// same table serialize; the partial unique index on non-cancelled
// (date, slot, table) rows backstops anything the lock does not cover. On
// conflict the caller gets ErrTableAlreadyReserved and no row is written;
// retrying the same input returns the same error until the winner cancels.
func (s *ReservationService) Book(ctx context.Context, in BookInput) (domain.Reservation, error) {
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.Reservation{}, err
	}
	spot, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return domain.Reservation{}, err
	}
	if in.PartySize <= 0 {
		return domain.Reservation{}, domain.ErrInvalidPartySize
	}
	if in.TableID == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	if in.Customer.Name == "" || in.Customer.NationalID == "" {
		return domain.Reservation{}, domain.ErrCustomerRequired
	}

	status := in.Status
	if status == "" {
		status = domain.ReservationStatusConfirmed
	}
	if status != domain.ReservationStatusPending && status != domain.ReservationStatusConfirmed {
		return domain.Reservation{}, domain.ErrInvalidStatus
	}

	day, err := domain.WeekdayOf(date)
	if err != nil {
		return domain.Reservation{}, err
	}

	// A code collision aborts the whole transaction (Postgres refuses
	// further statements after an error), so the retry wraps the tx.
	var result domain.Reservation
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
			slotIDs, err := s.slotIDsAt(txCtx, day, spot)
			if err != nil {
				return err
			}

			table, err := s.repo.GetTableForUpdate(txCtx, in.TableID)
			if err != nil {
				return err
			}
			if table.Blocked() {
				return domain.ErrTableBlocked
			}
			if in.ZoneID != "" && table.ZoneID != in.ZoneID {
				return domain.ErrTableOutsideZone
			}
			if in.PartySize > table.Capacity {
				return domain.ErrPartyExceedsCapacity
			}

			taken, err := s.repo.HasActiveReservation(txCtx, date, slotIDs, table.ID)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrTableAlreadyReserved
			}

			r := domain.Reservation{
				ID:        newID(),
				Code:      newReservationCode(),
				Date:      date,
				SlotID:    slotIDs[0],
				TableID:   table.ID,
				PartySize: in.PartySize,
				Customer:  in.Customer,
				Status:    status,
				CreatedAt: s.clock.Now(),
			}
			if err := s.repo.InsertReservation(txCtx, r); err != nil {
				return err
			}

			// Read the row back inside the tx so the confirmation carries
			// the resolved slot time, table number and zone name.
			stored, err := s.repo.GetReservation(txCtx, r.ID)
			if err != nil {
				return err
			}
			result = stored
			return nil
		})
		if err != domain.ErrCodeCollision {
			break
		}
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	return result, nil
}

// slotIDsAt returns every slot id matching (day, spot). Duplicates are
// interchangeable: the booking lands on the first, occupancy counts all.
func (s *ReservationService) slotIDsAt(ctx context.Context, day domain.DayOfWeek, spot string) ([]string, error) {
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

// UpdateStatus applies one step of the status machine. Cancelling frees the
// (date, slot, table) triple for new bookings.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	if !next.Valid() {
		return domain.Reservation{}, domain.ErrInvalidStatus
	}

	current, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return domain.Reservation{}, domain.ErrInvalidStatusTransition
	}

	if err := s.repo.UpdateReservationStatus(ctx, id, current.Status, next); err != nil {
		return domain.Reservation{}, err
	}
	current.Status = next
	return current, nil
}

// Get returns one reservation by id, for the occupied-table detail view.
func (s *ReservationService) Get(ctx context.Context, id string) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	return s.repo.GetReservation(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if filter.Date != "" {
		date, err := domain.ParseDate(filter.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = date
	}
	return s.repo.ListReservations(ctx, filter.Status, filter.Date)
}

func (s *ReservationService) FindByCode(ctx context.Context, code string) (domain.Reservation, error) {
	if code == "" {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	return s.repo.GetReservationByCode(ctx, code)
}

// FindByCustomer is the public lookup: the code alone is not enough, the
// matching national id must be presented with it.
func (s *ReservationService) FindByCustomer(ctx context.Context, nationalID, code string) (domain.Reservation, error) {
	if nationalID == "" || code == "" {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	return s.repo.FindReservationByCustomer(ctx, nationalID, code)
}
