package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

// DraftStore is the slice of the database this handler needs.
// *database.Client satisfies it; tests supply a fake.
type DraftStore interface {
	SaveDraft(designerID uuid.UUID, entityType models.DraftEntityType, payload []byte) (*models.Draft, error)
	GetDraft(designerID uuid.UUID, entityType models.DraftEntityType) (*models.Draft, error)
	DeleteDraft(designerID uuid.UUID, entityType models.DraftEntityType) error
}

type DraftsHandler struct {
	store DraftStore
}

func NewDraftsHandler(store DraftStore) *DraftsHandler {
	return &DraftsHandler{store: store}
}

func draftEntityType(c *gin.Context) (models.DraftEntityType, bool) {
	entityType := c.Param("entity_type")
	if !models.ValidDraftEntityType(entityType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid entity_type"})
		return "", false
	}
	return models.DraftEntityType(entityType), true
}

func toDraftResponse(d *models.Draft) models.DraftResponse {
	payload := map[string]interface{}{}
	_ = json.Unmarshal(d.Payload, &payload)
	return models.DraftResponse{
		EntityType: string(d.EntityType),
		Payload:    payload,
		UpdatedAt:  d.UpdatedAt,
	}
}

// SaveDraft upserts the auto-save payload. One draft per designer per
// entity type; a later save replaces the earlier one.
func (h *DraftsHandler) SaveDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entityType, ok := draftEntityType(c)
	if !ok {
		return
	}

	var req models.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	payload, err := json.Marshal(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid payload"})
		return
	}

	draft, err := h.store.SaveDraft(userID, entityType, payload)
	if err != nil {
		respondError(c, "save draft", err)
		return
	}

	c.JSON(http.StatusOK, toDraftResponse(draft))
}

func (h *DraftsHandler) GetDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entityType, ok := draftEntityType(c)
	if !ok {
		return
	}

	draft, err := h.store.GetDraft(userID, entityType)
	if err != nil {
		respondError(c, "get draft", err)
		return
	}

	c.JSON(http.StatusOK, toDraftResponse(draft))
}

func (h *DraftsHandler) DeleteDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entityType, ok := draftEntityType(c)
	if !ok {
		return
	}

	if err := h.store.DeleteDraft(userID, entityType); err != nil {
		respondError(c, "delete draft", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "draft deleted successfully"})
}
