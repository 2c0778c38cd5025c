package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hospital-records-server/internal/models"
	"hospital-records-server/internal/records"
	"hospital-records-server/internal/utils"
)

// UserHandler handles the admin panel's user management.
type UserHandler struct {
	Manager *records.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(manager *records.Manager) *UserHandler {
	return &UserHandler{Manager: manager}
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GetUsers lists every login account.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Manager.Store.ListUsers()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch users: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}
	utils.Success(c, "Users fetched successfully", sanitized)
}

// CreateUser adds a login account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Manager.AddUser(req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, "User Added Successfully", user.Sanitize())
}

// DeleteUser removes a login account after confirmation. The three seeded
// accounts are permanently protected.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := h.Manager.DeleteUser(uint(id), confirmed); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "User Deleted Successfully", nil)
}
