package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type StyleboxesHandler struct {
	dbClient *database.Client
}

func NewStyleboxesHandler(dbClient *database.Client) *StyleboxesHandler {
	return &StyleboxesHandler{dbClient: dbClient}
}

func (h *StyleboxesHandler) ListActive(c *gin.Context) {
	styleboxes, err := h.dbClient.ListActiveStyleboxes(time.Now())
	if err != nil {
		respondError(c, "list styleboxes", err)
		return
	}

	resp := models.StyleboxListResponse{Styleboxes: make([]models.StyleboxResponse, len(styleboxes))}
	for i := range styleboxes {
		resp.Styleboxes[i] = toStyleboxResponse(&styleboxes[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StyleboxesHandler) CreateStylebox(c *gin.Context) {
	var req models.CreateStyleboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid starts_at", Message: "expected RFC 3339 timestamp"})
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid ends_at", Message: "expected RFC 3339 timestamp"})
		return
	}
	if !endsAt.After(startsAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid window", Message: "ends_at must be after starts_at"})
		return
	}

	stylebox, err := h.dbClient.CreateStylebox(req.Title, req.Brief, startsAt, endsAt, req.XPReward)
	if err != nil {
		respondError(c, "create stylebox", err)
		return
	}

	c.JSON(http.StatusOK, toStyleboxResponse(stylebox))
}

// Submit enters one of the designer's own projects into an open stylebox.
// A designer gets exactly one entry per stylebox; the XP reward lands on
// the profile immediately.
func (h *StyleboxesHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	styleboxID, ok := parseUUIDParam(c, "stylebox_id")
	if !ok {
		return
	}

	var req models.SubmitStyleboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project_id"})
		return
	}

	stylebox, err := h.dbClient.GetStylebox(styleboxID)
	if err != nil {
		respondError(c, "submit to stylebox", err)
		return
	}
	if !stylebox.Active(time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "submit to stylebox failed", Message: "stylebox window is closed"})
		return
	}

	project, err := h.dbClient.GetProject(projectID)
	if err != nil {
		respondError(c, "submit to stylebox", err)
		return
	}
	if project.DesignerID != userID {
		respondError(c, "submit to stylebox", database.ErrUnauthorized)
		return
	}

	submission, err := h.dbClient.CreateStyleboxSubmission(styleboxID, userID, projectID, req.Note)
	if err != nil {
		respondError(c, "submit to stylebox", err)
		return
	}

	designer, err := h.dbClient.AwardXP(userID, stylebox.XPReward)
	if err != nil {
		// The entry already exists, so report it with the XP left behind.
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to award stylebox xp")
		respondError(c, "award stylebox xp", err)
		return
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("stylebox_id", styleboxID.String()).
		Int("xp_awarded", stylebox.XPReward).
		Msg("stylebox submission recorded")

	c.JSON(http.StatusOK, models.StyleboxSubmissionResponse{
		ID:          submission.ID.String(),
		StyleboxID:  submission.StyleboxID.String(),
		ProjectID:   submission.ProjectID.String(),
		XPAwarded:   stylebox.XPReward,
		NewXP:       designer.XP,
		RankTier:    string(designer.RankTier),
		SubmittedAt: submission.SubmittedAt,
	})
}
