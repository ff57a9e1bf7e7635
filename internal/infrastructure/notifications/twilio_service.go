package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// TwilioServiceImpl implements domain.DeliveryService. Login codes go
// out as SMS when a from-number is configured; otherwise delivery is
// mocked to stdout, which keeps local development working without
// Twilio credentials.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio delivery service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.DeliveryService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// Send implements domain.DeliveryService
func (t *TwilioServiceImpl) Send(destination, code string, purpose domain.OTPPurpose) error {
	message := fmt.Sprintf("Your verification code is: %s. It expires in 10 minutes.", code)

	if t.fromNumber == "" {
		fmt.Printf("[MOCK DELIVERY] To: %s, Purpose: %s, Message: %s\n", destination, purpose, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(destination)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send code: %w", err)
	}

	return nil
}
