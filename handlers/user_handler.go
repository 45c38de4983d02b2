package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// List returns the employee directory.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Users"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// Get returns one user; guarded to the owner or an admin.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	user, err := h.Users.GetUser(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	user, err := h.Users.GetUser(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
