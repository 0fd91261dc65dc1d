package api

import (
	"net/http"

	"lendhub/internal/domain/rental"
	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

func (h *RentalHandler) CreateRental(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.rentalCommands.RequestRental(c.Request.Context(), req.ResourceID, userID, req.StartDate, req.EndDate)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

func (h *RentalHandler) GetRental(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid rental ID format")
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

func (h *RentalHandler) UpdateRentalStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid rental ID format")
		return
	}

	var req reqdto.UpdateRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.rentalCommands.UpdateStatus(c.Request.Context(), id, userID, rental.Status(req.Status))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// GetMyRentals lists rentals the caller has requested as a renter.
func (h *RentalHandler) GetMyRentals(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.rentalQueries.ListByRenter(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalList(items))
}

// GetIncomingRentals lists rentals on resources the caller owns.
func (h *RentalHandler) GetIncomingRentals(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.rentalQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalList(items))
}

func (h *RentalHandler) GetUnavailableDates(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid resource ID format")
		return
	}

	ranges, err := h.rentalQueries.ListUnavailableRanges(c.Request.Context(), resourceID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUnavailableRanges(ranges))
}
