package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fashion-marketplace-backend/internal/handlers"
	"fashion-marketplace-backend/internal/middleware"
)

// reviewRouter wires the review route with an authenticated admin but no
// backing store. Requests that fail form validation must be answered before
// anything would touch a store, so nil dependencies are never dereferenced.
func reviewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPublicationsHandler(nil, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New().String())
	})
	router.POST("/publications/:request_id/review", h.Review)
	return router
}

func postReview(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/publications/"+uuid.New().String()+"/review",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReview_RejectionWithoutNotesIs400(t *testing.T) {
	router := reviewRouter()

	for _, decision := range []string{"rejected", "revision_requested"} {
		w := postReview(router, `{"decision":"`+decision+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, decision)
		assert.Contains(t, w.Body.String(), "notes are required")
	}
}

func TestReview_UnknownDecisionIs400(t *testing.T) {
	router := reviewRouter()

	w := postReview(router, `{"decision":"escalated","notes":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown decision")
}

func TestReview_RatingOutOfRangeIs400(t *testing.T) {
	router := reviewRouter()

	w := postReview(router, `{"decision":"approved","quality_rating":6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quality_rating")
}

func TestReview_MissingDecisionIs400(t *testing.T) {
	router := reviewRouter()

	w := postReview(router, `{"notes":"fine"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReview_InvalidRequestIDIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPublicationsHandler(nil, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New().String())
	})
	router.POST("/publications/:request_id/review", h.Review)

	req, _ := http.NewRequest("POST", "/publications/not-a-uuid/review",
		bytes.NewBufferString(`{"decision":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
