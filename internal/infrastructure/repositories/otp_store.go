package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// OTPStoreImpl implements domain.OTPStore using Redis. One hash per
// (email, purpose); attempts are advanced with HIncrBy and the used
// flag is claimed with HSetNX, so both are race-free without locks.
//
// The key lives for twice the code TTL: an expired record must still be
// readable so verification can report "expired" instead of "not found".
type OTPStoreImpl struct {
	client    *redis.Client
	retention time.Duration
}

// NewOTPStore creates a new Redis-backed OTP store. ttl is the code
// validity window.
func NewOTPStore(client *redis.Client, ttl time.Duration) domain.OTPStore {
	return &OTPStoreImpl{
		client:    client,
		retention: 2 * ttl,
	}
}

func otpKey(email string, purpose domain.OTPPurpose) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

// DeleteLive implements domain.OTPStore
func (s *OTPStoreImpl) DeleteLive(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	return s.client.Del(ctx, otpKey(email, purpose)).Err()
}

// Insert implements domain.OTPStore
func (s *OTPStoreImpl) Insert(ctx context.Context, rec *domain.OTPRecord) error {
	key := otpKey(rec.Email, rec.Purpose)
	fields := map[string]interface{}{
		"id":         rec.ID,
		"code":       rec.Code,
		"created_at": rec.CreatedAt.Unix(),
		"expires_at": rec.ExpiresAt.Unix(),
		"attempts":   rec.Attempts,
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to store otp record: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.retention).Err(); err != nil {
		return fmt.Errorf("failed to set otp retention: %w", err)
	}
	return nil
}

// FindLive implements domain.OTPStore
func (s *OTPStoreImpl) FindLive(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTPRecord, error) {
	fields, err := s.client.HGetAll(ctx, otpKey(email, purpose)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read otp record: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrOTPNotFound
	}

	createdAt, _ := strconv.ParseInt(fields["created_at"], 10, 64)
	expiresAt, _ := strconv.ParseInt(fields["expires_at"], 10, 64)
	attempts, _ := strconv.Atoi(fields["attempts"])
	_, used := fields["used"]

	return &domain.OTPRecord{
		ID:        fields["id"],
		Email:     email,
		Code:      fields["code"],
		Purpose:   purpose,
		CreatedAt: time.Unix(createdAt, 0),
		ExpiresAt: time.Unix(expiresAt, 0),
		Attempts:  attempts,
		Used:      used,
	}, nil
}

// IncrementAttempts implements domain.OTPStore. The returned value is
// the attempt count after the increment.
func (s *OTPStoreImpl) IncrementAttempts(ctx context.Context, email string, purpose domain.OTPPurpose) (int, error) {
	n, err := s.client.HIncrBy(ctx, otpKey(email, purpose), "attempts", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	return int(n), nil
}

// MarkUsed implements domain.OTPStore. Returns false when the record
// was already claimed by a concurrent verify.
func (s *OTPStoreImpl) MarkUsed(ctx context.Context, email string, purpose domain.OTPPurpose) (bool, error) {
	claimed, err := s.client.HSetNX(ctx, otpKey(email, purpose), "used", 1).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark otp used: %w", err)
	}
	return claimed, nil
}
