package domain

// AuditEventType tags structured audit log lines.
type AuditEventType string

const (
	// OTP lifecycle events
	OTPRequestedEvent      AuditEventType = "OTP_REQUESTED"
	OTPResentEvent         AuditEventType = "OTP_RESENT"
	OTPVerifiedEvent       AuditEventType = "OTP_VERIFIED"
	OTPVerifyFailedEvent   AuditEventType = "OTP_VERIFY_FAILED"
	OTPDeliveryFailedEvent AuditEventType = "OTP_DELIVERY_FAILED"

	// Authentication events
	LoginSucceededEvent AuditEventType = "LOGIN_SUCCEEDED"
	TokenRefreshedEvent AuditEventType = "TOKEN_REFRESHED"

	// Authorization events
	AccessGrantedEvent AuditEventType = "ACCESS_GRANTED"
	AccessDeniedEvent  AuditEventType = "ACCESS_DENIED"

	// User management events
	RoleUpdatedEvent   AuditEventType = "ROLE_UPDATED"
	StatusUpdatedEvent AuditEventType = "STATUS_UPDATED"
)
