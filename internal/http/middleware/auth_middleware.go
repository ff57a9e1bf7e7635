package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// Context keys set by the auth middleware and consumed downstream.
const (
	ContextClaims = "token_claims"
	ContextScope  = "access_scope"
)

// AuthMiddleware creates bearer-token authentication middleware
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Verify(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	})
}

// ClaimsFromContext returns the verified token claims attached by the
// auth middleware.
func ClaimsFromContext(c *gin.Context) (*domain.TokenClaims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*domain.TokenClaims)
	return claims, ok
}

// ScopeFromContext returns the resolved access scope attached by the
// access middleware.
func ScopeFromContext(c *gin.Context) (*domain.AccessScope, bool) {
	v, ok := c.Get(ContextScope)
	if !ok {
		return nil, false
	}
	scope, ok := v.(*domain.AccessScope)
	return scope, ok
}
