package coinpayments

import (
	"context"
	"crypto/hmac"
	"fmt"
	"net/http"
	"time"

	"github.com/coinpayments/coinpayments-go/utils"
)

// DefaultWebhookTolerance is the replay window applied when verifying
// webhook timestamps.
const DefaultWebhookTolerance = 5 * time.Minute

// CreateClientWebhook registers an invoice webhook for a client.
func (c *Client) CreateClientWebhook(ctx context.Context, clientID string, request *CreateClientWebhookRequest) (*ClientWebhook, error) {
	if clientID == "" {
		return nil, invalidParams("client id is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "webhook request", Err: err}
	}
	endpoint := fmt.Sprintf("v1/merchant/clients/%s/webhooks", clientID)
	return postRequest[*ClientWebhook](ctx, c, endpoint, request)
}

// UpdateWalletWebhookByID replaces a wallet webhook addressed by wallet id.
func (c *Client) UpdateWalletWebhookByID(ctx context.Context, walletID string, request *UpdateWebhookRequest) error {
	if walletID == "" {
		return invalidParams("wallet id is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return &InvalidParametersError{Reason: "webhook request", Err: err}
	}
	endpoint := fmt.Sprintf("v2/merchant/wallets/%s/webhook", walletID)
	return putNoContent(ctx, c, endpoint, request)
}

// UpdateAddressWebhookByID replaces an address webhook addressed by wallet
// and address ids.
func (c *Client) UpdateAddressWebhookByID(ctx context.Context, walletID, addressID string, request *UpdateWebhookRequest) error {
	if walletID == "" {
		return invalidParams("wallet id is required")
	}
	if addressID == "" {
		return invalidParams("address id is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return &InvalidParametersError{Reason: "webhook request", Err: err}
	}
	endpoint := fmt.Sprintf("v2/merchant/wallets/%s/addresses/%s/webhook", walletID, addressID)
	return putNoContent(ctx, c, endpoint, request)
}

// UpdateWalletWebhookByLabel replaces a wallet webhook addressed by label
// and currency.
func (c *Client) UpdateWalletWebhookByLabel(ctx context.Context, walletLabel, currencyID string, request *UpdateWebhookRequest) error {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return err
	}
	if err := utils.Validator.Struct(request); err != nil {
		return &InvalidParametersError{Reason: "webhook request", Err: err}
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/webhook", walletLabel, currencyID)
	return putNoContent(ctx, c, endpoint, request)
}

// UpdateAddressWebhookByLabel replaces an address webhook addressed by
// label, currency and address label.
func (c *Client) UpdateAddressWebhookByLabel(ctx context.Context, walletLabel, currencyID, addressLabel string, request *UpdateWebhookRequest) error {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return err
	}
	if addressLabel == "" {
		return invalidParams("address label is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return &InvalidParametersError{Reason: "webhook request", Err: err}
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/addresses/%s/webhook", walletLabel, currencyID, addressLabel)
	return putNoContent(ctx, c, endpoint, request)
}

// ParseWebhookHeaders extracts the authentication headers from an incoming
// webhook request, naming the first missing header.
func ParseWebhookHeaders(header http.Header) (*WebhookHeaders, error) {
	clientID := header.Get(HeaderClient)
	if clientID == "" {
		return nil, fmt.Errorf("missing %s header", HeaderClient)
	}
	timestamp := header.Get(HeaderTimestamp)
	if timestamp == "" {
		return nil, fmt.Errorf("missing %s header", HeaderTimestamp)
	}
	signature := header.Get(HeaderSignature)
	if signature == "" {
		return nil, fmt.Errorf("missing %s header", HeaderSignature)
	}

	return &WebhookHeaders{
		ClientID:  clientID,
		Timestamp: timestamp,
		Signature: signature,
	}, nil
}

// VerifyWebhookSignature recomputes the webhook signature over
// clientID + timestamp + payload and compares it in constant time.
func VerifyWebhookSignature(clientSecret string, headers *WebhookHeaders, payload []byte) bool {
	if headers == nil {
		return false
	}

	data := make([]byte, 0, len(headers.ClientID)+len(headers.Timestamp)+len(payload))
	data = append(data, headers.ClientID...)
	data = append(data, headers.Timestamp...)
	data = append(data, payload...)

	expected := utils.GenerateHMACSignature(clientSecret, string(data))
	return hmac.Equal([]byte(expected), []byte(headers.Signature))
}

// IsWebhookTimestampValid reports whether the webhook timestamp is no older
// than the tolerance. Timestamps from the future are accepted; clock skew
// between the sender and the receiver must not reject fresh deliveries.
func IsWebhookTimestampValid(timestamp string, tolerance time.Duration) bool {
	return webhookTimestampValidAt(timestamp, tolerance, time.Now())
}

func webhookTimestampValidAt(timestamp string, tolerance time.Duration, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return false
	}
	age := now.Sub(t)
	if age < 0 {
		age = 0
	}
	return age <= tolerance
}
