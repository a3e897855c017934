package middleware

import (
	"net/http"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/auth"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authUserKey = "auth_user_id"
	authNameKey = "auth_name"
	authRoleKey = "auth_role"
)

// RequireAuth validates JWT token and sets user context
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check for Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format. Use: Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(authUserKey, claims.UserID)
		c.Set(authNameKey, claims.Name)
		c.Set(authRoleKey, claims.Role)

		c.Next()
	}
}

// RequireManager ensures the authenticated user has the manager role
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(authRoleKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if role.(string) != models.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{"error": "Manager access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAuthUserID returns the authenticated user's id from context
func GetAuthUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(authUserKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetAuthName returns the authenticated user's display name from context
func GetAuthName(c *gin.Context) (string, bool) {
	v, exists := c.Get(authNameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// GetAuthRole returns the authenticated user's role from context
func GetAuthRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(authRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
