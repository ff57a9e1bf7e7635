package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

func testOTPRecord(email string) *domain.OTPRecord {
	now := time.Now()
	return &domain.OTPRecord{
		ID:        "rec_1",
		Email:     email,
		Code:      "123456",
		Purpose:   domain.PurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
		Attempts:  0,
	}
}

func TestOTPStore_InsertAndFindLive(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)
	ctx := context.Background()

	rec := testOTPRecord("tenant@example.com")
	if err := store.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	found, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("FindLive() error = %v", err)
	}
	if found.Code != "123456" {
		t.Errorf("Code = %q, want 123456", found.Code)
	}
	if found.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", found.Attempts)
	}
	if found.Used {
		t.Error("fresh record must not be used")
	}
}

func TestOTPStore_FindLiveMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)

	_, err := store.FindLive(context.Background(), "nobody@example.com", domain.PurposeLogin)
	if !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("FindLive() error = %v, want ErrOTPNotFound", err)
	}
}

func TestOTPStore_DeleteLive(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)
	ctx := context.Background()

	if err := store.Insert(ctx, testOTPRecord("tenant@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.DeleteLive(ctx, "tenant@example.com", domain.PurposeLogin); err != nil {
		t.Fatalf("DeleteLive() error = %v", err)
	}

	if _, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("FindLive() after delete error = %v, want ErrOTPNotFound", err)
	}
}

// Deleting a missing record is not an error; issuing always deletes
// before inserting.
func TestOTPStore_DeleteLiveMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)

	if err := store.DeleteLive(context.Background(), "nobody@example.com", domain.PurposeLogin); err != nil {
		t.Errorf("DeleteLive() on missing key error = %v", err)
	}
}

func TestOTPStore_IncrementAttempts(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)
	ctx := context.Background()

	if err := store.Insert(ctx, testOTPRecord("tenant@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	for want := 1; want <= 3; want++ {
		got, err := store.IncrementAttempts(ctx, "tenant@example.com", domain.PurposeLogin)
		if err != nil {
			t.Fatalf("IncrementAttempts() error = %v", err)
		}
		if got != want {
			t.Errorf("IncrementAttempts() = %d, want %d", got, want)
		}
	}

	found, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("FindLive() error = %v", err)
	}
	if found.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", found.Attempts)
	}
}

func TestOTPStore_MarkUsedClaimsOnce(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)
	ctx := context.Background()

	if err := store.Insert(ctx, testOTPRecord("tenant@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	claimed, err := store.MarkUsed(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("MarkUsed() error = %v", err)
	}
	if !claimed {
		t.Error("first MarkUsed() must claim the record")
	}

	claimed, err = store.MarkUsed(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("MarkUsed() error = %v", err)
	}
	if claimed {
		t.Error("second MarkUsed() must not claim the record again")
	}

	found, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("FindLive() error = %v", err)
	}
	if !found.Used {
		t.Error("record must read back as used")
	}
}

// An expired record stays readable for one more TTL window so
// verification can distinguish "expired" from "not found".
func TestOTPStore_ExpiredRecordStillReadable(t *testing.T) {
	client, mr := setupTestRedis(t)
	ttl := 10 * time.Minute
	store := NewOTPStore(client, ttl)
	ctx := context.Background()

	rec := testOTPRecord("tenant@example.com")
	if err := store.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Just past code expiry: the key must still exist
	mr.FastForward(ttl + time.Minute)
	found, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin)
	if err != nil {
		t.Fatalf("FindLive() after code expiry error = %v", err)
	}
	if !found.Expired(time.Now().Add(ttl + time.Minute)) {
		t.Error("record must report expired")
	}

	// Past the retention window the key is gone
	mr.FastForward(ttl)
	if _, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeLogin); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("FindLive() after retention error = %v, want ErrOTPNotFound", err)
	}
}

// Records for different purposes live under different keys.
func TestOTPStore_PurposeIsolation(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client, 10*time.Minute)
	ctx := context.Background()

	rec := testOTPRecord("tenant@example.com")
	if err := store.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if _, err := store.FindLive(ctx, "tenant@example.com", domain.PurposeResend); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("FindLive() with other purpose error = %v, want ErrOTPNotFound", err)
	}
}
