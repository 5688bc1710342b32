package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-booking-service/internal/auth"
)

// RequireAuth verifies the Bearer token and puts the user id on the context.
// Booking routes refuse to run without it.
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	claims, err := auth.ParseJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.Set("userId", claims.UserID)
	c.Next()
}
