package api

import (
	"net/http"

	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid rental ID format")
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.reviewCommands.SubmitReview(c.Request.Context(), rentalID, userID, req.Rating, req.Comment)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

func (h *ReviewHandler) GetResourceReviews(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid resource ID format")
		return
	}

	view, err := h.reviewQueries.ListByResource(c.Request.Context(), resourceID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceReviewsView(view))
}
