package commands

import (
	"context"

	"lendhub/internal/domain/rental"
	"lendhub/internal/domain/resource"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound    = errs.NewKind(errs.KindNotFound, "resource not found")
	ErrResourceUnavailable = errs.NewKind(errs.KindValidation, "resource is currently not available for rent")
	ErrSelfBooking         = errs.NewKind(errs.KindValidation, "you cannot rent your own resource")
	ErrDateConflict        = errs.NewKind(errs.KindConflict, "these dates are already booked for this resource")
	ErrRentalNotFound      = errs.NewKind(errs.KindNotFound, "rental not found")
	ErrNotResourceOwner    = errs.NewKind(errs.KindAuthorization, "only the resource owner can manage this rental")
	ErrConcurrentUpdate    = errs.NewKind(errs.KindConflict, "rental status changed concurrently")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

type RentalCommands interface {
	RequestRental(ctx context.Context, resourceID, renterID uuid.UUID, startDate, endDate string) (*queries.RentalView, error)
	UpdateStatus(ctx context.Context, rentalID, actorID uuid.UUID, target rental.Status) (*queries.RentalView, error)
}

type rentalUseCaseImpl struct {
	uow         shared.UnitOfWork
	rentalReads queries.RentalReadStore
	calculator  rental.PriceCalculator
	clock       clock.Clock
}

func NewRentalUseCase(
	uow shared.UnitOfWork,
	rentalReads queries.RentalReadStore,
	calculator rental.PriceCalculator,
	clk clock.Clock,
) RentalCommands {
	return &rentalUseCaseImpl{
		uow:         uow,
		rentalReads: rentalReads,
		calculator:  calculator,
		clock:       clk,
	}
}

// RequestRental validates the request, prices it, and inserts the
// rental in Requested status. The overlap check runs inside the
// transaction against row-locked calendar entries; the storage-level
// exclusion constraint catches whatever slips past it.
func (uc *rentalUseCaseImpl) RequestRental(ctx context.Context, resourceID, renterID uuid.UUID, startDate, endDate string) (*queries.RentalView, error) {
	dateRange, err := uc.parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	res, err := uc.loadResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !res.IsAvailable() {
		return nil, ErrResourceUnavailable
	}
	if res.IsOwnedBy(renterID) {
		return nil, ErrSelfBooking
	}

	price := rental.NewMoney(uc.calculator.TotalCents(dateRange, res.DailyRateCents()))
	entity := rental.NewRental(resourceID, renterID, dateRange, price)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		calendar, derr := tx.Reads().ActiveCalendarForUpdate(ctx, resourceID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		if collision := rental.FindConflict(dateRange, calendar); collision != nil {
			return ErrDateConflict
		}

		if _, derr = tx.Rentals().Create(ctx, tx.DB(), entity); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.rentalReads.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return view, nil
}

// UpdateStatus drives the rental's owner-gated state machine. The row
// lock plus the compare-and-swap update keep two concurrent transitions
// (e.g. simultaneous approve and cancel) from both succeeding.
func (uc *rentalUseCaseImpl) UpdateStatus(ctx context.Context, rentalID, actorID uuid.UUID, target rental.Status) (*queries.RentalView, error) {
	if !target.IsValid() {
		return nil, rental.ErrInvalidTransition
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RentalByIDForUpdate(ctx, rentalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		if snap.OwnerID != actorID {
			return ErrNotResourceOwner
		}

		current := rental.Status(snap.Status)
		if !current.CanTransitionTo(target) {
			return rental.ErrInvalidTransition
		}

		if derr = tx.Rentals().UpdateStatus(ctx, tx.DB(), rentalID, current, target); derr != nil {
			// Zero rows means another transaction moved the status
			// between our read and the compare-and-swap.
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrConcurrentUpdate
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.rentalReads.FindByID(ctx, rentalID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return view, nil
}

func (uc *rentalUseCaseImpl) parseDateRange(startDate, endDate string) (rental.DateRange, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return rental.DateRange{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return rental.DateRange{}, err
	}
	return rental.NewDateRange(start, end, clock.Today(uc.clock))
}

func (uc *rentalUseCaseImpl) loadResource(ctx context.Context, resourceID uuid.UUID) (*resource.Resource, error) {
	snap, err := uc.uow.CommandReads().ResourceByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return resource.NewResource(snap.ID, snap.OwnerID, snap.Name, snap.DailyRateCents, snap.IsAvailable)
}
