package mocks

import (
	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockDeliveryService implements domain.DeliveryService interface for testing
type MockDeliveryService struct {
	SendFunc func(destination, code string, purpose domain.OTPPurpose) error

	// Sent records every delivery for assertion
	Sent []SentCode
}

// SentCode is one recorded delivery
type SentCode struct {
	Destination string
	Code        string
	Purpose     domain.OTPPurpose
}

// NewMockDeliveryService creates a new MockDeliveryService with default behaviors
func NewMockDeliveryService() *MockDeliveryService {
	return &MockDeliveryService{}
}

// Send delivers a code out of band
func (m *MockDeliveryService) Send(destination, code string, purpose domain.OTPPurpose) error {
	m.Sent = append(m.Sent, SentCode{Destination: destination, Code: code, Purpose: purpose})
	if m.SendFunc != nil {
		return m.SendFunc(destination, code, purpose)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.DeliveryService = (*MockDeliveryService)(nil)
