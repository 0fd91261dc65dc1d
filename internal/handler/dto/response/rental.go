package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RentalResponse struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resourceId"`
	ResourceName    string     `json:"resourceName"`
	RenterID        uuid.UUID  `json:"renterId"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	Status          string     `json:"status"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	IsReviewed      bool       `json:"isReviewed"`
	ReviewID        *uuid.UUID `json:"reviewId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type RentalListResponse struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resourceId"`
	ResourceName    string    `json:"resourceName"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

type UnavailableRangeResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		ID:              v.ID,
		ResourceID:      v.ResourceID,
		ResourceName:    v.ResourceName,
		RenterID:        v.RenterID,
		OwnerID:         v.OwnerID,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		Status:          v.Status,
		TotalPriceCents: v.TotalPriceCents,
		IsReviewed:      v.IsReviewed,
		ReviewID:        v.ReviewID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromRentalList(items []*queries.RentalListItem) []*RentalListResponse {
	res := make([]*RentalListResponse, len(items))
	for i, it := range items {
		res[i] = &RentalListResponse{
			ID:              it.ID,
			ResourceID:      it.ResourceID,
			ResourceName:    it.ResourceName,
			StartDate:       it.StartDate.Format(dateLayout),
			EndDate:         it.EndDate.Format(dateLayout),
			Status:          it.Status,
			TotalPriceCents: it.TotalPriceCents,
			CreatedAt:       it.CreatedAt,
		}
	}
	return res
}

func FromUnavailableRanges(items []*queries.UnavailableRange) []*UnavailableRangeResponse {
	res := make([]*UnavailableRangeResponse, len(items))
	for i, it := range items {
		res[i] = &UnavailableRangeResponse{
			StartDate: it.StartDate.Format(dateLayout),
			EndDate:   it.EndDate.Format(dateLayout),
		}
	}
	return res
}
