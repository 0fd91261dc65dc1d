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

type MessageHandler struct {
	messageCommands commands.MessageCommands
	messageQueries  queries.MessageQueries
}

func NewMessageHandler(messageCommands commands.MessageCommands, messageQueries queries.MessageQueries) *MessageHandler {
	return &MessageHandler{
		messageCommands: messageCommands,
		messageQueries:  messageQueries,
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
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

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.messageCommands.SendMessage(c.Request.Context(), rentalID, userID, req.Text)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

func (h *MessageHandler) GetConversation(c *gin.Context) {
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

	view, err := h.messageQueries.ListByRental(c.Request.Context(), userID, rentalID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConversationView(view))
}
