package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// AuthMW wraps the token service for middleware wiring
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithBearer returns the bearer-token middleware function
func (mw *AuthMW) WithBearer() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc)
}
