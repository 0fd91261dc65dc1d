//go:build unit

package builder

import (
	"time"

	"lendhub/internal/domain/rental"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// RentalBuilder assembles the rental fixtures the write-side tests
// need: domain entities, command snapshots, and read views share one
// source of defaults.
type RentalBuilder struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	ResourceName   string
	RenterID       uuid.UUID
	OwnerID        uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	Status         rental.Status
	DailyRateCents int64
	IsReviewed     bool
	CreatedAt      time.Time
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ID:             uuid.New(),
		ResourceID:     uuid.New(),
		ResourceName:   "Cordless Drill",
		RenterID:       uuid.New(),
		OwnerID:        uuid.New(),
		StartDate:      now.AddDate(0, 0, 9),
		EndDate:        now.AddDate(0, 0, 11),
		Status:         rental.StatusRequested,
		DailyRateCents: 1500,
		CreatedAt:      now,
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildSnapshot() *shared.RentalSnapshot {
	return &shared.RentalSnapshot{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		RenterID:   b.RenterID,
		OwnerID:    b.OwnerID,
		Status:     b.Status.String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		IsReviewed: b.IsReviewed,
	}
}

func (b *RentalBuilder) BuildResourceSnapshot() *shared.ResourceSnapshot {
	return &shared.ResourceSnapshot{
		ID:             b.ResourceID,
		OwnerID:        b.OwnerID,
		Name:           b.ResourceName,
		DailyRateCents: b.DailyRateCents,
		IsAvailable:    true,
	}
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	return &queries.RentalView{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		RenterID:     b.RenterID,
		OwnerID:      b.OwnerID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Status:       b.Status.String(),
		IsReviewed:   b.IsReviewed,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *RentalBuilder) BuildCalendarEntry() rental.CalendarEntry {
	return rental.CalendarEntry{
		RentalID: b.ID,
		Range:    rental.ReconstructDateRange(b.StartDate, b.EndDate),
	}
}
