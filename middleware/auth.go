package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vendora/services/identity"
	"vendora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxIdentityID    = "identityID"
	CtxIdentityEmail = "identityEmail"
	CtxIdentityRole  = "identityRole"
)

// JWTAuthMiddleware validates the bearer token and checks its hash against the
// auth cache, so revoked tokens die before their expiry.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, email, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			cached, err := authCache.Get(ctx, identity.AuthTokenKey(subject)).Result()
			if err != nil || cached != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked or expired"})
				return
			}
		}

		c.Set(CtxIdentityID, subject)
		c.Set(CtxIdentityEmail, email)
		c.Set(CtxIdentityRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxIdentityRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
