package middleware

import (
	"net/http"
	"strings"

	"drivio/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthRenterMiddleware validates the bearer session token and puts
// the renter id on the context. Token issuance lives with the auth
// service; this only checks the signature and extracts the subject.
func JWTAuthRenterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		renterID, err := utils.ExtractRenterIDFromToken(tokenString)
		if err != nil || renterID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("renterID", renterID)
		c.Next()
	}
}

// RenterID pulls the authenticated renter id off the context.
func RenterID(c *gin.Context) string {
	if v, ok := c.Get("renterID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
