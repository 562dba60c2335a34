package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/publication"
)

// PublicationStore is the slice of the database this handler needs.
// *database.Client satisfies it; tests supply a fake.
type PublicationStore interface {
	ListRequestsByDesigner(designerID uuid.UUID) ([]models.PublicationRequest, error)
	ListRequestsByStatus(status string) ([]models.PublicationRequest, error)
	ListReviewHistory(requestID uuid.UUID) ([]models.ReviewHistoryEntry, error)
	GetRequest(requestID uuid.UUID) (*models.PublicationRequest, error)
	OverrideRevenueShare(userID uuid.UUID, pct int) (*models.Designer, error)
	InsertAudit(entry *models.AuditEntry) error
}

type PublicationsHandler struct {
	store      PublicationStore
	pubService *publication.Service
}

func NewPublicationsHandler(store PublicationStore, pubService *publication.Service) *PublicationsHandler {
	return &PublicationsHandler{
		store:      store,
		pubService: pubService,
	}
}

// ListMine returns the calling designer's publication requests.
func (h *PublicationsHandler) ListMine(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}

	requests, err := h.store.ListRequestsByDesigner(designerID)
	if err != nil {
		respondError(c, "list publication requests", err)
		return
	}

	resp := models.PublicationListResponse{Publications: make([]models.PublicationResponse, len(requests))}
	for i := range requests {
		resp.Publications[i] = toPublicationResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

// ListQueue is the admin review queue, filterable by status.
func (h *PublicationsHandler) ListQueue(c *gin.Context) {
	requests, err := h.store.ListRequestsByStatus(c.Query("status"))
	if err != nil {
		respondError(c, "list publication requests", err)
		return
	}

	resp := models.PublicationListResponse{Publications: make([]models.PublicationResponse, len(requests))}
	for i := range requests {
		resp.Publications[i] = toPublicationResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

// Review records an admin decision. The form is validated before anything
// touches the store: negative decisions without notes never produce a
// backend write.
func (h *PublicationsHandler) Review(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := parseUUIDParam(c, "request_id")
	if !ok {
		return
	}

	var req models.ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid review decision", Message: err.Error()})
		return
	}

	request, product, err := h.pubService.Review(requestID, adminID, &req)
	if err != nil {
		respondError(c, "review publication request", err)
		return
	}

	resp := gin.H{"request": toPublicationResponse(request)}
	if product != nil {
		resp["product"] = toProductResponse(product)
	}
	c.JSON(http.StatusOK, resp)
}

// History lists the review trail for a request.
func (h *PublicationsHandler) History(c *gin.Context) {
	requestID, ok := parseUUIDParam(c, "request_id")
	if !ok {
		return
	}

	entries, err := h.store.ListReviewHistory(requestID)
	if err != nil {
		respondError(c, "list review history", err)
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		entry := gin.H{
			"id":          e.ID.String(),
			"reviewer_id": e.ReviewerID.String(),
			"decision":    string(e.Decision),
			"created_at":  e.CreatedAt,
		}
		if e.Notes.Valid {
			entry["notes"] = e.Notes.String
		}
		if e.QualityRating.Valid {
			entry["quality_rating"] = e.QualityRating.Int64
		}
		out[i] = entry
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

// RevenueOverride pins a manual revenue-share percentage on the designer
// behind a request. Clamped to [0,100] and audited.
func (h *PublicationsHandler) RevenueOverride(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := parseUUIDParam(c, "request_id")
	if !ok {
		return
	}

	var req models.RevenueOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	request, err := h.store.GetRequest(requestID)
	if err != nil {
		respondError(c, "revenue override", err)
		return
	}

	pct := identity.ClampSharePct(*req.SharePct)
	designer, err := h.store.OverrideRevenueShare(request.DesignerID, pct)
	if err != nil {
		respondError(c, "revenue override", err)
		return
	}

	_ = h.store.InsertAudit(&models.AuditEntry{
		UserID: database.AuditUserID(adminID),
		Action: "revenue_override",
		Detail: "designer=" + request.DesignerID.String() + " pct=" + strconv.Itoa(pct),
	})

	c.JSON(http.StatusOK, toDesignerResponse(designer))
}
