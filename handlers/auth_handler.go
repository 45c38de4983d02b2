package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register creates a new user account.
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.CreateUserInput true "Account fields"
// @Success 201 {object} map[string]interface{} "User registered"
// @Failure 400 {object} map[string]interface{} "Username taken or invalid input"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.Users.RegisterUser(input); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Msg("user registered"))
}

// Login verifies credentials and issues a JWT, also set as a cookie.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "Token and user info"
// @Failure 401 {object} map[string]interface{} "Bad credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	user, token, isAdmin, err := h.Users.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Err(err.Error()))
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Success:  true,
		Token:    token,
		UID:      user.UID,
		Username: user.Username,
		IsAdmin:  isAdmin,
	})
}

// Logout clears the token cookie.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.Msg("logged out"))
}
