package api

import (
	"log/slog"
	"net/http"

	"lendhub/internal/handler/httperr"
	"lendhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Every rejected precondition carries one of the four recoverable kinds
// (plus not-found), so the status mapping lives in exactly one place
// instead of drifting across handlers.
func abortWithDomainError(c *gin.Context, err error) {
	var status int
	switch errs.KindOf(err) {
	case errs.KindValidation:
		status = http.StatusBadRequest
	case errs.KindAuthorization:
		status = http.StatusForbidden
	case errs.KindConflict:
		status = http.StatusConflict
	case errs.KindState:
		status = http.StatusUnprocessableEntity
	case errs.KindNotFound:
		status = http.StatusNotFound
	default:
		slog.Error("unclassified error reached handler", "error", err.Error(), "path", c.Request.URL.Path)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	httperr.AbortWithError(c, status, err, errs.Message(err), nil)
}

func abortWithBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
