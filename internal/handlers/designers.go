package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type DesignersHandler struct {
	dbClient *database.Client
}

func NewDesignersHandler(dbClient *database.Client) *DesignersHandler {
	return &DesignersHandler{dbClient: dbClient}
}

// ListDesigners is the admin screen: every designer with product and
// collection counts computed in the same query.
func (h *DesignersHandler) ListDesigners(c *gin.Context) {
	designers, err := h.dbClient.ListDesigners()
	if err != nil {
		respondError(c, "list designers", err)
		return
	}

	resp := models.DesignerListResponse{Designers: make([]models.DesignerResponse, len(designers))}
	for i := range designers {
		resp.Designers[i] = toDesignerResponse(&designers[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DesignersHandler) GetDesigner(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	designer, err := h.dbClient.GetDesigner(userID)
	if err != nil {
		respondError(c, "get designer", err)
		return
	}

	c.JSON(http.StatusOK, toDesignerResponse(designer))
}

func (h *DesignersHandler) UpdateDesigner(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	var req models.UpdateDesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	designer, err := h.dbClient.UpdateDesigner(userID, &req)
	if err != nil {
		respondError(c, "update designer", err)
		return
	}

	c.JSON(http.StatusOK, toDesignerResponse(designer))
}

// GetProfile is the designer's own profile view.
func (h *DesignersHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	designer, err := h.dbClient.GetDesigner(userID)
	if err != nil {
		respondError(c, "get profile", err)
		return
	}

	c.JSON(http.StatusOK, toDesignerResponse(designer))
}

// UpdateProfile lets a designer edit their own profile. Rank, XP and
// revenue fields are not reachable from here.
func (h *DesignersHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateDesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	designer, err := h.dbClient.UpdateDesigner(userID, &req)
	if err != nil {
		respondError(c, "update profile", err)
		return
	}

	c.JSON(http.StatusOK, toDesignerResponse(designer))
}
