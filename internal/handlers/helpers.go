package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/publication"
)

// currentUserID pulls the authenticated user out of the context, answering
// the request itself when the middleware did not run or set garbage.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, false
	}
	return userID, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps store and pipeline errors onto status codes. Sentinel
// errors keep "not found", "unauthorized" and "conflict" distinguishable
// all the way out to the client.
func respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: action + " failed", Message: "not found"})
	case errors.Is(err, database.ErrUnauthorized):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "unauthorized", Message: "you do not own this resource"})
	case errors.Is(err, database.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: action + " failed", Message: err.Error()})
	case errors.Is(err, publication.ErrInvalidTransition), errors.Is(err, publication.ErrInvalidDecision):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: action + " failed", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: action + " failed", Message: err.Error()})
	}
}
