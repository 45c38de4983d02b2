package middleware

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/pkg/types"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type Auth struct {
	repos *repositories.Repos
}

func NewAuth(repos *repositories.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin restricts the route to admin users.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token claims"})
			return
		}

		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin only"})
			return
		}
		c.Next()
	}
}

// ManagerOrAdmin restricts the route to managers and admins; approval
// endpoints still verify per-entry authority in the service.
func (a *Auth) ManagerOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token claims"})
			return
		}
		if claims.IsAdmin {
			c.Next()
			return
		}

		user, err := a.repos.User.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		if user.Role != "manager" && user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "manager or admin only"})
			return
		}
		c.Next()
	}
}

// Approver admits anyone who can hold approval authority: admins, managers,
// and root-level users deciding their own entries. The service still checks
// per-entry authority, this gate only keeps managed employees out.
func (a *Auth) Approver() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token claims"})
			return
		}
		if claims.IsAdmin {
			c.Next()
			return
		}

		user, err := a.repos.User.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		if user.Role == "manager" || user.Role == "admin" || user.IsRootLevel() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "approval authority required"})
	}
}

// OwnerOrAdmin allows a user through only for their own :id or as admin.
func (a *Auth) OwnerOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token claims"})
			return
		}

		targetID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
			return
		}

		if claims.UserID == targetID || claims.IsAdmin {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden"})
	}
}
