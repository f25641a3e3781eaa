package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware validates the bearer token, rejects revoked tokens
// and sets the authenticated userID in the request context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Reject tokens revoked by sign-out. A cache outage only disables
		// revocation checks, not authentication.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			key := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
			_, err := authCache.Get(ctx, key).Result()
			if err == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token revoked",
				})
				return
			}
			if err != redis.Nil {
				log.Printf("WARNING: Error checking token revocation: %v. Continuing without revocation check.", err)
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
