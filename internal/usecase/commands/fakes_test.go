//go:build unit

package commands_test

import (
	"context"
	"time"

	"lendhub/internal/domain/chat"
	"lendhub/internal/domain/rental"
	"lendhub/internal/domain/review"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/realtime"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs the transactional closure inline. Locking and retry
// behavior belong to the Postgres implementation; these tests cover
// the decisions made inside the transaction.
type fakeUoW struct {
	reads    *fakeReads
	rentals  *fakeRentalRepo
	messages *fakeMessageRepo
	reviews  *fakeReviewRepo
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		reads:    &fakeReads{},
		rentals:  &fakeRentalRepo{},
		messages: &fakeMessageRepo{},
		reviews:  &fakeReviewRepo{},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.reads }

func (u *fakeUoW) Rentals() shared.RentalRepository   { return u.rentals }
func (u *fakeUoW) Messages() shared.MessageRepository { return u.messages }
func (u *fakeUoW) Reviews() shared.ReviewRepository   { return u.reviews }
func (u *fakeUoW) Reads() shared.CommandReads         { return u.reads }
func (u *fakeUoW) DB() db.DBTX                        { return nil }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	resource    *shared.ResourceSnapshot
	resourceErr error
	rental      *shared.RentalSnapshot
	rentalErr   error
	calendar    []rental.CalendarEntry
	calendarErr error
}

func (r *fakeReads) ResourceByID(_ context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	if r.resourceErr != nil {
		return nil, r.resourceErr
	}
	if r.resource == nil || r.resource.ID != id {
		return nil, notFoundErr("resource not found")
	}
	return r.resource, nil
}

func (r *fakeReads) RentalByIDForUpdate(_ context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	if r.rentalErr != nil {
		return nil, r.rentalErr
	}
	if r.rental == nil || r.rental.ID != id {
		return nil, notFoundErr("rental not found")
	}
	return r.rental, nil
}

func (r *fakeReads) ActiveCalendarForUpdate(_ context.Context, _ uuid.UUID) ([]rental.CalendarEntry, error) {
	if r.calendarErr != nil {
		return nil, r.calendarErr
	}
	return r.calendar, nil
}

type fakeRentalRepo struct {
	created      []*rental.Rental
	createErr    error
	statusCalls  int
	statusFrom   rental.Status
	statusTo     rental.Status
	updateErr    error
	reviewedID   uuid.UUID
	linkedReview uuid.UUID
	setRevErr    error
}

func (f *fakeRentalRepo) Create(_ context.Context, _ db.DBTX, r *rental.Rental) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, r)
	return r.ID(), nil
}

func (f *fakeRentalRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, from, to rental.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusCalls++
	f.statusFrom, f.statusTo = from, to
	return nil
}

func (f *fakeRentalRepo) SetReviewed(_ context.Context, _ db.DBTX, id, reviewID uuid.UUID) error {
	if f.setRevErr != nil {
		return f.setRevErr
	}
	f.reviewedID, f.linkedReview = id, reviewID
	return nil
}

type fakeMessageRepo struct {
	created   []*chat.Message
	createErr error
}

func (f *fakeMessageRepo) Create(_ context.Context, _ db.DBTX, m *chat.Message) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, m)
	return m.ID(), nil
}

type fakeReviewRepo struct {
	created   []*review.Review
	createErr error
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, rev)
	return rev.ID(), nil
}

// fakeRentalReadStore serves the post-commit re-read; unknown ids get
// a minimal view so tests can assert commands return what they wrote.
type fakeRentalReadStore struct {
	views   map[uuid.UUID]*queries.RentalView
	findErr error
}

func (s *fakeRentalReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return &queries.RentalView{ID: id}, nil
}

func (s *fakeRentalReadStore) FindByRenterID(_ context.Context, _ uuid.UUID) ([]*queries.RentalListItem, error) {
	return nil, nil
}

func (s *fakeRentalReadStore) FindByOwnerID(_ context.Context, _ uuid.UUID) ([]*queries.RentalListItem, error) {
	return nil, nil
}

func (s *fakeRentalReadStore) FindUnavailableRanges(_ context.Context, _ uuid.UUID, _ time.Time) ([]*queries.UnavailableRange, error) {
	return nil, nil
}

type capturedEvent struct {
	channel string
	event   realtime.Event
}

type fakePublisher struct {
	events []capturedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, channel string, event realtime.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, capturedEvent{channel: channel, event: event})
	return nil
}
