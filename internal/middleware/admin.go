package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/config"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
)

// AdminAuthMiddleware gates the admin portal. Being authenticated is not
// sufficient: the caller's resolved role must be exactly superadmin, and
// the resolution is re-derived per request so a revoked role takes effect
// immediately. Anything else is refused and the refusal is audited.
func AdminAuthMiddleware(cfg *config.Config, store RoleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, ok := verifyToken(cfg, c)
		if !ok {
			c.Abort()
			return
		}

		roles, err := store.GetUserRoles(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to resolve role"})
			c.Abort()
			return
		}

		role, found := identity.Resolve(roles)
		if !found || role != identity.RoleSuperadmin {
			_ = store.InsertAudit(&models.AuditEntry{
				UserID:     uuid.NullUUID{UUID: userID, Valid: true},
				ActorEmail: email,
				Action:     "admin_access_denied",
				Detail:     "role=" + string(role),
			})
			log.Warn().
				Str("user_id", userID.String()).
				Str("role", string(role)).
				Msg("admin portal access denied")
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "admin access denied",
				Message: "this portal requires the superadmin role",
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Set(UserEmailKey, email)
		c.Set(UserRoleKey, string(role))
		c.Next()
	}
}
