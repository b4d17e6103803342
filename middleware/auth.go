package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evervow/utils"
)

// JWTAuthMiddleware guards the dashboard API. Tokens are issued by the
// hosted auth provider; this only verifies the signature and pins the
// request to the wedding the token may manage.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

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

		accountID, weddingID, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("accountID", accountID)
		c.Set("weddingID", weddingID)
		c.Next()
	}
}

// RequireWeddingAccess rejects requests whose token is not bound to the
// wedding named in the route.
func RequireWeddingAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		routeWedding := c.Param("weddingID")
		tokenWedding := c.GetString("weddingID")
		if routeWedding == "" || tokenWedding == "" || routeWedding != tokenWedding {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Wedding access denied",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
