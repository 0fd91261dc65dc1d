package resource

import (
	"strings"

	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errs.NewKind(errs.KindValidation, "resource name cannot be empty")
	ErrResourceNameTooLong = errs.NewKind(errs.KindValidation, "resource name is too long (max 255 characters)")
	ErrNonPositiveRate     = errs.NewKind(errs.KindValidation, "daily rate must be positive")
)

const MaxResourceNameLength = 255

// Resource is the lendable item being booked. Its CRUD lives outside
// this core; here it is a read-only snapshot of what booking needs:
// owner, daily rate, availability.
type Resource struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	name           string
	dailyRateCents int64
	isAvailable    bool
}

func NewResource(id, ownerID uuid.UUID, name string, dailyRateCents int64, isAvailable bool) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if dailyRateCents <= 0 {
		return nil, ErrNonPositiveRate
	}

	return &Resource{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		dailyRateCents: dailyRateCents,
		isAvailable:    isAvailable,
	}, nil
}

func (r *Resource) ID() uuid.UUID         { return r.id }
func (r *Resource) OwnerID() uuid.UUID    { return r.ownerID }
func (r *Resource) Name() string          { return r.name }
func (r *Resource) DailyRateCents() int64 { return r.dailyRateCents }
func (r *Resource) IsAvailable() bool     { return r.isAvailable }

func (r *Resource) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}
