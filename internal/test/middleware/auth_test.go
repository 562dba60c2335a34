package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-marketplace-backend/internal/config"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/models"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

// fakeRoleStore serves canned role rows and records audit writes.
type fakeRoleStore struct {
	roles  map[uuid.UUID][]string
	audits []models.AuditEntry
}

func (f *fakeRoleStore) GetUserRoles(userID uuid.UUID) ([]string, error) {
	return f.roles[userID], nil
}

func (f *fakeRoleStore) InsertAudit(entry *models.AuditEntry) error {
	f.audits = append(f.audits, *entry)
	return nil
}

func signToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg, &fakeRoleStore{}))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg, &fakeRoleStore{}))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: "a-different-secret-entirely-from-the-signer"}

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg, &fakeRoleStore{}))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenResolvesRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	userID := uuid.New()
	store := &fakeRoleStore{roles: map[uuid.UUID][]string{
		userID: {"designer", "admin"},
	}}

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg, store))
	router.GET("/test", func(c *gin.Context) {
		id, ok := middleware.UserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		assert.Equal(t, "admin", c.GetString(middleware.UserRoleKey))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "a@example.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_NoRoleRowStillPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	userID := uuid.New()
	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg, &fakeRoleStore{}))
	router.GET("/test", func(c *gin.Context) {
		_, exists := c.Get(middleware.UserRoleKey)
		assert.False(t, exists)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, ""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware_DesignerDenied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	userID := uuid.New()
	store := &fakeRoleStore{roles: map[uuid.UUID][]string{
		userID: {"designer"},
	}}

	reached := false
	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(cfg, store))
	router.GET("/admin", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "d@example.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access denied")
	assert.False(t, reached)

	require.Len(t, store.audits, 1)
	assert.Equal(t, "admin_access_denied", store.audits[0].Action)
	assert.Equal(t, userID, store.audits[0].UserID.UUID)
}

func TestAdminAuthMiddleware_AdminRoleIsNotEnough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	userID := uuid.New()
	store := &fakeRoleStore{roles: map[uuid.UUID][]string{
		userID: {"admin", "designer"},
	}}

	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(cfg, store))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, ""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuthMiddleware_SuperadminPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SupabaseJWTSecret: testSecret}

	userID := uuid.New()
	store := &fakeRoleStore{roles: map[uuid.UUID][]string{
		userID: {"superadmin", "designer"},
	}}

	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(cfg, store))
	router.GET("/admin", func(c *gin.Context) {
		assert.Equal(t, "superadmin", c.GetString(middleware.UserRoleKey))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "s@example.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.audits)
}
