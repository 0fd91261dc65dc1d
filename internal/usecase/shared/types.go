package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.
type ResourceSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	DailyRateCents int64
	IsAvailable    bool
}

type RentalSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	RenterID   uuid.UUID
	OwnerID    uuid.UUID
	Status     string
	StartDate  time.Time
	EndDate    time.Time
	IsReviewed bool
}
