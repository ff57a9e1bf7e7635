package domain

import "errors"

// Principal errors
var (
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrPrincipalInactive = errors.New("principal account is not active")
	ErrInvalidRole       = errors.New("unknown role")
	ErrInvalidStatus     = errors.New("unknown principal status")
)

// OTP errors. Verify surfaces the most specific applicable error, in
// the order: existence, expiry, used, attempts, match.
var (
	ErrOTPNotFound    = errors.New("otp not found")
	ErrOTPExpired     = errors.New("expired")
	ErrOTPUsed        = errors.New("used")
	ErrOTPMaxAttempts = errors.New("too many attempts")
	ErrOTPInvalid     = errors.New("invalid code")
	ErrOTPCooldown    = errors.New("otp resend cooldown active")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Authorization errors
var (
	ErrForbidden         = errors.New("access denied")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrPolicyNotAffected = errors.New("policy rule not changed")
)

// Back-office state errors
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoActiveTenancy   = errors.New("no active tenancy")
)
