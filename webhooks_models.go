package coinpayments

import "encoding/json"

// ClientWebhookEvent is an invoice-level notification type.
type ClientWebhookEvent string

const (
	// A new invoice was created.
	ClientEventInvoiceCreated ClientWebhookEvent = "invoiceCreated"
	// Payment detected with at least one confirmation.
	ClientEventInvoicePending ClientWebhookEvent = "invoicePending"
	// The invoice received all required confirmations.
	ClientEventInvoicePaid ClientWebhookEvent = "invoicePaid"
	// Funds are reflected in the merchant's balance.
	ClientEventInvoiceCompleted ClientWebhookEvent = "invoiceCompleted"
	// The merchant cancelled the invoice.
	ClientEventInvoiceCancelled ClientWebhookEvent = "invoiceCancelled"
	// The invoice expired.
	ClientEventInvoiceTimedOut ClientWebhookEvent = "invoiceTimedOut"
	// A temporary payment address was created.
	ClientEventPaymentCreated ClientWebhookEvent = "paymentCreated"
	// A temporary payment address is no longer available.
	ClientEventPaymentTimedOut ClientWebhookEvent = "paymentTimedOut"
)

// ClientWebhook subscribes a URL to invoice events.
type ClientWebhook struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"client_id"`
	URL       string               `json:"url"`
	Events    []ClientWebhookEvent `json:"events"`
	Secret    *string              `json:"secret,omitempty"`
	IsActive  bool                 `json:"is_active"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// WalletWebhook subscribes a URL to one wallet's transaction events.
type WalletWebhook struct {
	WalletID    string               `json:"wallet_id"`
	WalletLabel string               `json:"wallet_label"`
	CurrencyID  string               `json:"currency_id"`
	URL         string               `json:"url"`
	Events      []WalletWebhookEvent `json:"events"`
	Secret      *string              `json:"secret,omitempty"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// AddressWebhook subscribes a URL to one address's transaction events.
type AddressWebhook struct {
	AddressID    string               `json:"address_id"`
	AddressLabel string               `json:"address_label"`
	WalletID     string               `json:"wallet_id"`
	CurrencyID   string               `json:"currency_id"`
	URL          string               `json:"url"`
	Events       []WalletWebhookEvent `json:"events"`
	Secret       *string              `json:"secret,omitempty"`
	IsActive     bool                 `json:"is_active"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

// CreateClientWebhookRequest registers an invoice webhook.
type CreateClientWebhookRequest struct {
	URL      string               `json:"url" validate:"required,url"`
	Events   []ClientWebhookEvent `json:"events" validate:"required,min=1"`
	Secret   *string              `json:"secret,omitempty"`
	IsActive *bool                `json:"is_active,omitempty"`
}

// NewCreateClientWebhookRequest returns an active subscription to completed
// invoices.
func NewCreateClientWebhookRequest(url string) *CreateClientWebhookRequest {
	active := true
	return &CreateClientWebhookRequest{
		URL:      url,
		Events:   []ClientWebhookEvent{ClientEventInvoiceCompleted},
		IsActive: &active,
	}
}

// WithEvents replaces the subscribed event list.
func (r *CreateClientWebhookRequest) WithEvents(events []ClientWebhookEvent) *CreateClientWebhookRequest {
	r.Events = events
	return r
}

// WithSecret sets the verification secret.
func (r *CreateClientWebhookRequest) WithSecret(secret string) *CreateClientWebhookRequest {
	r.Secret = &secret
	return r
}

// Active toggles the subscription.
func (r *CreateClientWebhookRequest) Active(active bool) *CreateClientWebhookRequest {
	r.IsActive = &active
	return r
}

// UpdateWebhookRequest replaces a wallet or address webhook configuration.
// Events carries wire-format event names.
type UpdateWebhookRequest struct {
	URL      string   `json:"url" validate:"required,url"`
	Events   []string `json:"events" validate:"required,min=1"`
	Secret   *string  `json:"secret,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
}

// PaymentData is the payment detail attached to an invoice event.
type PaymentData struct {
	CurrencyID    string  `json:"currency_id"`
	Address       string  `json:"address"`
	Amount        string  `json:"amount"`
	TxID          *string `json:"txid,omitempty"`
	Confirmations *uint32 `json:"confirmations,omitempty"`
	FirstSeen     *string `json:"first_seen,omitempty"`
}

// ClientWebhookPayload is the body delivered for invoice events.
type ClientWebhookPayload struct {
	Event       ClientWebhookEvent         `json:"event"`
	InvoiceID   string                     `json:"invoice_id"`
	MerchantID  string                     `json:"merchant_id"`
	Amount      string                     `json:"amount"`
	Currency    string                     `json:"currency"`
	Status      string                     `json:"status"`
	CreatedAt   string                     `json:"created_at"`
	PaymentData *PaymentData               `json:"payment_data,omitempty"`
	Metadata    map[string]json.RawMessage `json:"metadata,omitempty"`
}

// WalletWebhookPayload is the body delivered for wallet and address events.
type WalletWebhookPayload struct {
	Event         WalletWebhookEvent         `json:"event"`
	WalletID      string                     `json:"wallet_id"`
	WalletLabel   string                     `json:"wallet_label"`
	AddressID     *string                    `json:"address_id,omitempty"`
	Address       string                     `json:"address"`
	CurrencyID    string                     `json:"currency_id"`
	TransactionID string                     `json:"transaction_id"`
	Amount        string                     `json:"amount"`
	Fee           *string                    `json:"fee,omitempty"`
	TxID          *string                    `json:"txid,omitempty"`
	Confirmations uint32                     `json:"confirmations"`
	Status        string                     `json:"status"`
	CreatedAt     string                     `json:"created_at"`
	Metadata      map[string]json.RawMessage `json:"metadata,omitempty"`
}

// WebhookHeaders are the authentication headers delivered with every
// webhook.
type WebhookHeaders struct {
	ClientID  string
	Timestamp string
	Signature string
}
