package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/handlers"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/models"
)

// fakeDraftStore keys drafts by (designer, entity type), mirroring the
// table's primary key.
type fakeDraftStore struct {
	drafts map[string]*models.Draft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string]*models.Draft{}}
}

func draftKey(designerID uuid.UUID, entityType models.DraftEntityType) string {
	return designerID.String() + "/" + string(entityType)
}

func (f *fakeDraftStore) SaveDraft(designerID uuid.UUID, entityType models.DraftEntityType, payload []byte) (*models.Draft, error) {
	d := &models.Draft{
		DesignerID: designerID,
		EntityType: entityType,
		Payload:    payload,
		UpdatedAt:  time.Now(),
	}
	f.drafts[draftKey(designerID, entityType)] = d
	return d, nil
}

func (f *fakeDraftStore) GetDraft(designerID uuid.UUID, entityType models.DraftEntityType) (*models.Draft, error) {
	d, ok := f.drafts[draftKey(designerID, entityType)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return d, nil
}

func (f *fakeDraftStore) DeleteDraft(designerID uuid.UUID, entityType models.DraftEntityType) error {
	delete(f.drafts, draftKey(designerID, entityType))
	return nil
}

func draftsRouter(store *fakeDraftStore, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewDraftsHandler(store)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID.String())
	})
	router.PUT("/drafts/:entity_type", h.SaveDraft)
	router.GET("/drafts/:entity_type", h.GetDraft)
	router.DELETE("/drafts/:entity_type", h.DeleteDraft)
	return router
}

func doDraft(router *gin.Engine, method, entityType, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, "/drafts/"+entityType, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDrafts_UnknownEntityTypeIs400(t *testing.T) {
	router := draftsRouter(newFakeDraftStore(), uuid.New())

	for _, method := range []string{"PUT", "GET", "DELETE"} {
		w := doDraft(router, method, "order", `{"payload":{"a":1}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
}

func TestDrafts_SecondSaveReplacesTheFirst(t *testing.T) {
	store := newFakeDraftStore()
	router := draftsRouter(store, uuid.New())

	w := doDraft(router, "PUT", "product", `{"payload":{"title":"first"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doDraft(router, "PUT", "product", `{"payload":{"title":"second"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	// One row per (designer, entity_type); the later payload wins.
	assert.Len(t, store.drafts, 1)
	w = doDraft(router, "GET", "product", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "second")
	assert.NotContains(t, w.Body.String(), "first")
}

func TestDrafts_EntityTypesAreIndependent(t *testing.T) {
	store := newFakeDraftStore()
	router := draftsRouter(store, uuid.New())

	doDraft(router, "PUT", "product", `{"payload":{"title":"a dress"}}`)
	doDraft(router, "PUT", "article", `{"payload":{"title":"a post"}}`)
	assert.Len(t, store.drafts, 2)

	w := doDraft(router, "DELETE", "article", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.drafts, 1)

	w = doDraft(router, "GET", "article", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doDraft(router, "GET", "product", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDrafts_GetMissingIs404(t *testing.T) {
	router := draftsRouter(newFakeDraftStore(), uuid.New())

	w := doDraft(router, "GET", "product", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
