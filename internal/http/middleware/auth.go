package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT rejects requests without a valid bearer token and stores the verified
// user id in the gin context under "user_id".
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := service.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
