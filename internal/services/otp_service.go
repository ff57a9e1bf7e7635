package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes are persisted per
// (email, purpose); at most one live record exists because Issue always
// deletes before inserting.
type OTPServiceImpl struct {
	deliverySvc   domain.DeliveryService
	principalRepo domain.PrincipalRepository
	store         domain.OTPStore
	config        OTPConfig
	now           func() time.Time
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(deliverySvc domain.DeliveryService, principalRepo domain.PrincipalRepository, store domain.OTPStore, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		deliverySvc:   deliverySvc,
		principalRepo: principalRepo,
		store:         store,
		config:        config,
		now:           time.Now,
	}
}

// Issue implements domain.OTPService. Only active principals may start
// a login flow; the resend path additionally enforces the cooldown
// window against the live record's creation time.
func (s *OTPServiceImpl) Issue(ctx context.Context, email string, resend bool) (int64, error) {
	principal, err := s.principalRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if !principal.CanAuthenticate() {
		return 0, domain.ErrPrincipalInactive
	}

	if resend {
		if live, err := s.store.FindLive(ctx, email, domain.PurposeLogin); err == nil {
			if s.now().Sub(live.CreatedAt) < s.config.ResendWindow {
				return 0, domain.ErrOTPCooldown
			}
		}
	}

	// Supersede any live record before inserting the replacement
	if err := s.store.DeleteLive(ctx, email, domain.PurposeLogin); err != nil {
		return 0, fmt.Errorf("failed to supersede otp: %w", err)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return 0, fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := s.now()
	rec := &domain.OTPRecord{
		ID:        uuid.NewString(),
		Email:     email,
		Code:      code,
		Purpose:   domain.PurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.TTL),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return 0, fmt.Errorf("failed to store otp: %w", err)
	}

	purpose := domain.PurposeLogin
	event := domain.OTPRequestedEvent
	if resend {
		purpose = domain.PurposeResend
		event = domain.OTPResentEvent
	}

	// The stored code stays valid even when delivery fails; the caller
	// can retry delivery via the resend path
	if err := s.deliverySvc.Send(email, code, purpose); err != nil {
		log.Printf("%s: email=%s error=%v", domain.OTPDeliveryFailedEvent, email, err)
	} else {
		log.Printf("%s: email=%s otp_id=%s", event, email, rec.ID)
	}

	return int64(s.config.TTL.Seconds()), nil
}

// Verify implements domain.OTPService. Checks run in a fixed order so
// the caller always sees the most specific applicable error: existence,
// expiry, used, attempts, match.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (*domain.Principal, error) {
	rec, err := s.store.FindLive(ctx, email, domain.PurposeLogin)
	if err != nil {
		return nil, err
	}

	if rec.Expired(s.now()) {
		return nil, domain.ErrOTPExpired
	}
	if rec.Used {
		return nil, domain.ErrOTPUsed
	}
	if rec.Attempts >= s.config.MaxAttempts {
		return nil, domain.ErrOTPMaxAttempts
	}

	if rec.Code != code {
		if _, err := s.store.IncrementAttempts(ctx, email, domain.PurposeLogin); err != nil {
			return nil, fmt.Errorf("failed to record attempt: %w", err)
		}
		log.Printf("%s: email=%s otp_id=%s", domain.OTPVerifyFailedEvent, email, rec.ID)
		return nil, domain.ErrOTPInvalid
	}

	// Single-use claim; a concurrent verify that lost the race sees used
	claimed, err := s.store.MarkUsed(ctx, email, domain.PurposeLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to claim otp: %w", err)
	}
	if !claimed {
		return nil, domain.ErrOTPUsed
	}

	principal, err := s.principalRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !principal.CanAuthenticate() {
		return nil, domain.ErrPrincipalInactive
	}

	log.Printf("%s: email=%s otp_id=%s principal_id=%d", domain.OTPVerifiedEvent, email, rec.ID, principal.ID)
	return principal, nil
}

// generateSecureCode generates a cryptographically secure numeric code.
// Leading zeros are preserved.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
