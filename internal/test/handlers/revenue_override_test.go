package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-marketplace-backend/internal/handlers"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/models"
)

// fakePublicationStore backs the handler with one request and its designer,
// recording every override that reaches the store.
type fakePublicationStore struct {
	request   *models.PublicationRequest
	designer  *models.Designer
	overrides []int
	audits    []models.AuditEntry
}

func (f *fakePublicationStore) ListRequestsByDesigner(uuid.UUID) ([]models.PublicationRequest, error) {
	return nil, nil
}

func (f *fakePublicationStore) ListRequestsByStatus(string) ([]models.PublicationRequest, error) {
	return nil, nil
}

func (f *fakePublicationStore) ListReviewHistory(uuid.UUID) ([]models.ReviewHistoryEntry, error) {
	return nil, nil
}

func (f *fakePublicationStore) GetRequest(requestID uuid.UUID) (*models.PublicationRequest, error) {
	if f.request == nil || f.request.ID != requestID {
		return nil, assert.AnError
	}
	return f.request, nil
}

func (f *fakePublicationStore) OverrideRevenueShare(userID uuid.UUID, pct int) (*models.Designer, error) {
	f.overrides = append(f.overrides, pct)
	f.designer.RevenueSharePct = pct
	f.designer.RevenueOverride = true
	return f.designer, nil
}

func (f *fakePublicationStore) InsertAudit(entry *models.AuditEntry) error {
	f.audits = append(f.audits, *entry)
	return nil
}

func overrideRouter(store *fakePublicationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPublicationsHandler(store, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New().String())
	})
	router.POST("/publications/:request_id/revenue-override", h.RevenueOverride)
	return router
}

func overrideStore() *fakePublicationStore {
	designerID := uuid.New()
	return &fakePublicationStore{
		request: &models.PublicationRequest{
			ID:         uuid.New(),
			DesignerID: designerID,
			Status:     models.RequestApproved,
		},
		designer: &models.Designer{
			UserID:          designerID,
			RankTier:        identity.TierSilver,
			RevenueSharePct: 60,
		},
	}
}

func postOverride(router *gin.Engine, requestID uuid.UUID, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/publications/"+requestID.String()+"/revenue-override",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRevenueOverride_ZeroPercentIsAccepted(t *testing.T) {
	store := overrideStore()
	router := overrideRouter(store)

	w := postOverride(router, store.request.ID, `{"share_pct":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int{0}, store.overrides)
	assert.True(t, store.designer.RevenueOverride)

	require.Len(t, store.audits, 1)
	assert.Equal(t, "revenue_override", store.audits[0].Action)
}

func TestRevenueOverride_MissingPercentIs400(t *testing.T) {
	store := overrideStore()
	router := overrideRouter(store)

	w := postOverride(router, store.request.ID, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.overrides)
}

func TestRevenueOverride_ClampedToBounds(t *testing.T) {
	store := overrideStore()
	router := overrideRouter(store)

	w := postOverride(router, store.request.ID, `{"share_pct":150}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postOverride(router, store.request.ID, `{"share_pct":-5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []int{100, 0}, store.overrides)
}
