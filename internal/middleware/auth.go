package middleware

import (
	"net/http"
	"strings"

	"quiz-platform/internal/models"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxRole     = "role"
)

// RequireAuth verifies the bearer token and stores the acting identity on
// the request context.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates a route on the admin role. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get(ctxRole); role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) primitive.ObjectID {
	id, _ := c.Get(ctxUserID)
	userID, _ := id.(primitive.ObjectID)
	return userID
}

// Role returns the authenticated role set by RequireAuth.
func Role(c *gin.Context) string {
	role, _ := c.Get(ctxRole)
	r, _ := role.(string)
	return r
}
