package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resource_id"`
	ResourceName    string     `json:"resource_name"`
	RenterID        uuid.UUID  `json:"renter_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	Status          string     `json:"status"`
	TotalPriceCents int64      `json:"total_price_cents"`
	IsReviewed      bool       `json:"is_reviewed"`
	ReviewID        *uuid.UUID `json:"review_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RentalListItem struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	ResourceName    string    `json:"resource_name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// UnavailableRange is one blocked span on a resource's calendar, used
// to render availability without exposing who booked it.
type UnavailableRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type MessageView struct {
	ID         uuid.UUID `json:"id"`
	RentalID   uuid.UUID `json:"rental_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConversationView struct {
	Messages   []*MessageView `json:"messages"`
	ChatLocked bool           `json:"chat_locked"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	RentalID   uuid.UUID `json:"rental_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResourceReviewsView struct {
	Reviews       []*ReviewView `json:"reviews"`
	TotalReviews  int           `json:"total_reviews"`
	AverageRating float64       `json:"average_rating"`
}
