package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/supabase"
)

type AuthHandler struct {
	supabaseClient *supabase.Client
	dbClient       *database.Client
}

func NewAuthHandler(supabaseClient *supabase.Client, dbClient *database.Client) *AuthHandler {
	return &AuthHandler{
		supabaseClient: supabaseClient,
		dbClient:       dbClient,
	}
}

// SignUp registers a new designer: Supabase account, designer role row and
// an empty profile.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	session, err := h.supabaseClient.SignUp(req.Email, req.Password)
	if err != nil {
		h.audit(uuid.Nil, req.Email, "signup_failed", err.Error())
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "signup failed", Message: err.Error()})
		return
	}

	if err := h.dbClient.AssignRole(session.UserID, string(identity.RoleDesigner)); err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("failed to assign designer role")
	}
	name := req.Name
	if name == "" {
		name = strings.Split(req.Email, "@")[0]
	}
	if _, err := h.dbClient.CreateDesigner(session.UserID, name); err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("failed to create designer profile")
	}

	h.audit(session.UserID, req.Email, "signup", "")
	c.JSON(http.StatusOK, models.SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		UserID:       session.UserID.String(),
		Email:        session.Email,
		Role:         string(identity.RoleDesigner),
	})
}

// SignIn authenticates with Supabase. One audit row is written whether the
// attempt failed or succeeded; the handler never lets an auth error escape
// as anything but an {error} body.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	session, err := h.supabaseClient.SignIn(req.Email, req.Password)
	if err != nil {
		h.audit(uuid.Nil, req.Email, "login_failed", err.Error())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "sign in failed", Message: err.Error()})
		return
	}

	h.audit(session.UserID, req.Email, "login", "")

	resp := models.SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		UserID:       session.UserID.String(),
		Email:        session.Email,
	}
	if roles, err := h.dbClient.GetUserRoles(session.UserID); err == nil {
		if role, found := identity.Resolve(roles); found {
			resp.Role = string(role)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut audits, then revokes the backend session (local scope).
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	email, _ := c.Get(middleware.UserEmailKey)
	emailStr, _ := email.(string)

	h.audit(userID, emailStr, "logout", "")

	authHeader := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if err := h.supabaseClient.SignOut(token); err != nil {
		// The audit row is already written; a failed revocation is logged
		// but the client still drops its local session.
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("supabase sign out failed")
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the session as the portals see it: user, resolved role, and
// the designer profile when one exists.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp := models.MeResponse{UserID: userID.String()}
	if role, exists := c.Get(middleware.UserRoleKey); exists {
		roleStr, _ := role.(string)
		resp.Role = roleStr
		resp.IsAdmin = roleStr == string(identity.RoleAdmin) || roleStr == string(identity.RoleSuperadmin)
	}

	if designer, err := h.dbClient.GetDesigner(userID); err == nil {
		d := toDesignerResponse(designer)
		resp.Designer = &d
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) audit(userID uuid.UUID, email, action, detail string) {
	_ = h.dbClient.InsertAudit(&models.AuditEntry{
		UserID:     database.AuditUserID(userID),
		ActorEmail: email,
		Action:     action,
		Detail:     detail,
	})
}
