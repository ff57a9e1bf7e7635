package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// AuthHandlers handles the passwordless login HTTP surface
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// OTPRequest represents an OTP request or resend body
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents an OTP verification body
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// RefreshRequest represents a token refresh body
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// RequestOTP handles login code issuance
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresIn, err := h.authSvc.RequestOTP(c.Request.Context(), req.Email)
	if err != nil {
		switch err {
		case domain.ErrPrincipalNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No account for this email"})
		case domain.ErrPrincipalInactive:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    "Verification code sent",
			"expires_in": expiresIn,
		},
	})
}

// ResendOTP handles login code resend, subject to the cooldown window
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresIn, err := h.authSvc.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		switch err {
		case domain.ErrPrincipalNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No account for this email"})
		case domain.ErrPrincipalInactive:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		case domain.ErrOTPCooldown:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    "Verification code sent",
			"expires_in": expiresIn,
		},
	})
}

// VerifyOTP handles code verification and token issuance
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch err {
		case domain.ErrOTPNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending code for this email"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "expired"})
		case domain.ErrOTPUsed:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "used"})
		case domain.ErrOTPMaxAttempts:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "too many attempts"})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid code"})
		case domain.ErrPrincipalInactive:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"user": gin.H{
				"id":    result.Principal.ID,
				"email": result.Principal.Email,
				"role":  result.Principal.Role,
			},
		},
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenMalformed:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
		},
	})
}

// Me handles the authenticated profile endpoint
func (h *AuthHandlers) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	principal, err := h.authSvc.Profile(c.Request.Context(), claims.PrincipalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":             principal.ID,
			"email":          principal.Email,
			"role":           principal.Role,
			"status":         principal.Status,
			"email_verified": principal.EmailVerified,
			"created_at":     principal.CreatedAt,
			"updated_at":     principal.UpdatedAt,
		},
	})
}
