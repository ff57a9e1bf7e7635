package services

import (
	"context"
	"log"
	"time"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// AuthServiceImpl implements domain.AuthService: the passwordless OTP
// login flow and stateless token issuance.
type AuthServiceImpl struct {
	principalRepo domain.PrincipalRepository
	tokenSvc      domain.TokenService
	otpSvc        domain.OTPService
	accessTTL     time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	principalRepo domain.PrincipalRepository,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		principalRepo: principalRepo,
		tokenSvc:      tokenSvc,
		otpSvc:        otpSvc,
		accessTTL:     accessTTL,
	}
}

// RequestOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, email string) (int64, error) {
	return s.otpSvc.Issue(ctx, email, false)
}

// ResendOTP implements domain.AuthService
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) (int64, error) {
	return s.otpSvc.Issue(ctx, email, true)
}

// VerifyOTP implements domain.AuthService. A successful verification
// mints a bearer token carrying the principal's identity and role.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	principal, err := s.otpSvc.Verify(ctx, email, code)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Mint(principal)
	if err != nil {
		return nil, err
	}

	log.Printf("%s: principal_id=%d email=%s role=%s", domain.LoginSucceededEvent, principal.ID, principal.Email, principal.Role)

	return &domain.AuthResult{
		Principal:   principal,
		AccessToken: token,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// Refresh implements domain.AuthService. Claims carry over unchanged
// with a fresh expiry; current principal state is not re-checked.
func (s *AuthServiceImpl) Refresh(ctx context.Context, token string) (*domain.AuthResult, error) {
	newToken, err := s.tokenSvc.Refresh(token)
	if err != nil {
		return nil, err
	}

	claims, err := s.tokenSvc.Verify(newToken)
	if err != nil {
		return nil, err
	}

	log.Printf("%s: principal_id=%d", domain.TokenRefreshedEvent, claims.PrincipalID)

	return &domain.AuthResult{
		AccessToken: newToken,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, principalID uint) (*domain.Principal, error) {
	return s.principalRepo.FindByID(ctx, principalID)
}
