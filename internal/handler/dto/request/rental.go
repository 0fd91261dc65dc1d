package request

import (
	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
}

type UpdateRentalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
