package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type DashboardHandler struct {
	dbClient *database.Client
}

func NewDashboardHandler(dbClient *database.Client) *DashboardHandler {
	return &DashboardHandler{dbClient: dbClient}
}

func (h *DashboardHandler) DesignerDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dbClient.DesignerDashboard(userID)
	if err != nil {
		respondError(c, "load dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.dbClient.AdminDashboard()
	if err != nil {
		respondError(c, "load dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// AuditLog lists recent audit entries, optionally filtered by action.
func (h *DashboardHandler) AuditLog(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.dbClient.ListAudit(c.Query("action"), limit)
	if err != nil {
		respondError(c, "list audit log", err)
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		entry := gin.H{
			"id":         e.ID.String(),
			"action":     e.Action,
			"detail":     e.Detail,
			"created_at": e.CreatedAt,
		}
		if e.UserID.Valid {
			entry["user_id"] = e.UserID.UUID.String()
		}
		if e.ActorEmail != "" {
			entry["actor_email"] = e.ActorEmail
		}
		out[i] = entry
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}
