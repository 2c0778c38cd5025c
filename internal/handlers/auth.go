package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-records-server/internal/config"
	"hospital-records-server/internal/middleware"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/session"
	"hospital-records-server/internal/utils"
)

// AuthHandler handles the login workflow.
type AuthHandler struct {
	Sessions *session.Service
	Cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *session.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Cfg: cfg}
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	Token string               `json:"token"`
	User  models.UserSanitized `json:"user"`
}

// Login authenticates the operator once and hands back the session token the
// dashboard carries for the rest of the process lifetime.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	sess, err := h.Sessions.Authenticate(req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, err := session.IssueToken(sess, h.Cfg.SessionSecret, h.Cfg.SessionExpirationMinutes)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue session token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", LoginResponse{
		Token: token,
		User:  sess.User.Sanitize(),
	})
}

// GetProfile returns the logged-in operator's identity and role.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	username, _ := middleware.GetUsernameFromContext(c)
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		utils.Unauthorized(c, "No established session")
		return
	}

	utils.Success(c, "Profile fetched successfully", models.UserSanitized{
		ID:       userID,
		Username: username,
		Role:     role,
	})
}
