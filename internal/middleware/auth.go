package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/config"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
)

// RoleStore is the slice of the database the middleware needs.
// *database.Client satisfies it; tests supply a fake.
type RoleStore interface {
	GetUserRoles(userID uuid.UUID) ([]string, error)
	InsertAudit(entry *models.AuditEntry) error
}

// verifyToken authenticates the Bearer token and returns the Supabase user
// id and email. It writes the 401 response itself when the token is bad.
func verifyToken(cfg *config.Config, c *gin.Context) (uuid.UUID, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
		return uuid.Nil, "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization header format"})
		return uuid.Nil, "", false
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "empty token"})
		return uuid.Nil, "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Supabase signs access tokens with HS256 and the project JWT secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		if cfg.SupabaseJWTSecret == "" {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.SupabaseJWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		msg := "invalid token"
		if err != nil {
			if strings.Contains(err.Error(), "token is expired") {
				msg = "token has expired"
			} else if strings.Contains(err.Error(), "signature is invalid") {
				msg = "token signature is invalid"
			}
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg})
		return uuid.Nil, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token claims"})
		return uuid.Nil, "", false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing user id in token"})
		return uuid.Nil, "", false
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid user id in token"})
		return uuid.Nil, "", false
	}

	email, _ := claims["email"].(string)
	return userID, email, true
}

// AuthMiddleware authenticates any portal user and resolves their role
// fresh from the roles table on every request. A user without a role row is
// still let through with an empty role; role-gated handlers decide for
// themselves.
func AuthMiddleware(cfg *config.Config, store RoleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, ok := verifyToken(cfg, c)
		if !ok {
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Set(UserEmailKey, email)

		roles, err := store.GetUserRoles(userID)
		if err == nil {
			if role, found := identity.Resolve(roles); found {
				c.Set(UserRoleKey, string(role))
			}
		}

		c.Next()
	}
}

// UserID extracts the authenticated user id set by the middleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
