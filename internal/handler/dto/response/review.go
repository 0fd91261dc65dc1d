package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resourceId"`
	RentalID   uuid.UUID `json:"rentalId"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ResourceReviewsResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	TotalReviews  int               `json:"totalReviews"`
	AverageRating float64           `json:"averageRating"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:         v.ID,
		ResourceID: v.ResourceID,
		RentalID:   v.RentalID,
		ReviewerID: v.ReviewerID,
		Rating:     v.Rating,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
	}
}

func FromResourceReviewsView(v *queries.ResourceReviewsView) *ResourceReviewsResponse {
	reviews := make([]*ReviewResponse, len(v.Reviews))
	for i, r := range v.Reviews {
		reviews[i] = FromReviewView(r)
	}
	return &ResourceReviewsResponse{
		Reviews:       reviews,
		TotalReviews:  v.TotalReviews,
		AverageRating: v.AverageRating,
	}
}
