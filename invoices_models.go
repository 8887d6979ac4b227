package coinpayments

import "encoding/json"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	// Saved as draft.
	InvoiceStatusDraft InvoiceStatus = "draft"
	// Created, waiting to be mailed out on the set date.
	InvoiceStatusScheduled InvoiceStatus = "scheduled"
	// Created, waiting for payment.
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	// Payment detected on chain, waiting to be received.
	InvoiceStatusPending InvoiceStatus = "pending"
	// All confirmations received, scheduled for payout.
	InvoiceStatusPaid InvoiceStatus = "paid"
	// Paid out to the merchant.
	InvoiceStatusCompleted InvoiceStatus = "completed"
	// Cancelled by the merchant.
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	// Expired before payment.
	InvoiceStatusTimedOut InvoiceStatus = "timedout"
	InvoiceStatusDeleted  InvoiceStatus = "deleted"
)

// PaymentURL is a checkout link for one accepted currency.
type PaymentURL struct {
	CurrencyID     string `json:"currency_id"`
	CurrencySymbol string `json:"currency_symbol"`
	URL            string `json:"url"`
}

// Invoice is a payment request issued to a buyer.
type Invoice struct {
	ID            string        `json:"id"`
	MerchantID    string        `json:"merchant_id"`
	InvoiceNumber *string       `json:"invoice_number,omitempty"`
	Amount        string        `json:"amount"`
	AmountF       float64       `json:"amount_f"`
	Currency      string        `json:"currency"`
	Description   string        `json:"description"`
	ItemName      *string       `json:"item_name,omitempty"`
	ItemNumber    *string       `json:"item_number,omitempty"`
	BuyerEmail    *string       `json:"buyer_email,omitempty"`
	BuyerName     *string       `json:"buyer_name,omitempty"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	ExpiresAt     string        `json:"expires_at"`
	PaidAt        *string       `json:"paid_at,omitempty"`
	CompletedAt   *string       `json:"completed_at,omitempty"`
	InvoiceURL    string        `json:"invoice_url"`
	PaymentURLs   []PaymentURL  `json:"payment_urls,omitempty"`
}

// CreateInvoiceRequest creates an invoice. Amount is expressed in the fiat
// or crypto currency named by Currency.
type CreateInvoiceRequest struct {
	Amount             string   `json:"amount" validate:"required,amount"`
	Currency           string   `json:"currency" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	InvoiceNumber      *string  `json:"invoice_number,omitempty"`
	ItemName           *string  `json:"item_name,omitempty"`
	ItemNumber         *string  `json:"item_number,omitempty"`
	BuyerEmail         *string  `json:"buyer_email,omitempty" validate:"omitempty,email"`
	BuyerName          *string  `json:"buyer_name,omitempty"`
	SuccessURL         *string  `json:"success_url,omitempty" validate:"omitempty,url"`
	CancelURL          *string  `json:"cancel_url,omitempty" validate:"omitempty,url"`
	IPNURL             *string  `json:"ipn_url,omitempty" validate:"omitempty,url"`
	ExpiresIn          *uint32  `json:"expires_in,omitempty"` // seconds
	PaymentCurrencies  []string `json:"payment_currencies,omitempty"`
	AutoAcceptPayments *bool    `json:"auto_accept_payments,omitempty"`
}

// NewCreateInvoiceRequest returns a request that expires in one hour and
// accepts payments automatically.
func NewCreateInvoiceRequest(amount, currency, description string) *CreateInvoiceRequest {
	expiresIn := uint32(3600)
	autoAccept := true
	return &CreateInvoiceRequest{
		Amount:             amount,
		Currency:           currency,
		Description:        description,
		ExpiresIn:          &expiresIn,
		AutoAcceptPayments: &autoAccept,
	}
}

// WithInvoiceNumber sets the merchant's own invoice number.
func (r *CreateInvoiceRequest) WithInvoiceNumber(number string) *CreateInvoiceRequest {
	r.InvoiceNumber = &number
	return r
}

// WithItem sets the item name and optional item number.
func (r *CreateInvoiceRequest) WithItem(name string, number *string) *CreateInvoiceRequest {
	r.ItemName = &name
	r.ItemNumber = number
	return r
}

// WithBuyer sets the buyer email and optional name.
func (r *CreateInvoiceRequest) WithBuyer(email string, name *string) *CreateInvoiceRequest {
	r.BuyerEmail = &email
	r.BuyerName = name
	return r
}

// WithSuccessURL sets the redirect target after a completed payment.
func (r *CreateInvoiceRequest) WithSuccessURL(url string) *CreateInvoiceRequest {
	r.SuccessURL = &url
	return r
}

// WithCancelURL sets the redirect target after a cancelled payment.
func (r *CreateInvoiceRequest) WithCancelURL(url string) *CreateInvoiceRequest {
	r.CancelURL = &url
	return r
}

// WithIPNURL sets the payment notification endpoint.
func (r *CreateInvoiceRequest) WithIPNURL(url string) *CreateInvoiceRequest {
	r.IPNURL = &url
	return r
}

// ExpiresInSeconds sets the invoice lifetime.
func (r *CreateInvoiceRequest) ExpiresInSeconds(seconds uint32) *CreateInvoiceRequest {
	r.ExpiresIn = &seconds
	return r
}

// ExpiresInMinutes sets the invoice lifetime.
func (r *CreateInvoiceRequest) ExpiresInMinutes(minutes uint32) *CreateInvoiceRequest {
	seconds := minutes * 60
	r.ExpiresIn = &seconds
	return r
}

// WithPaymentCurrencies restricts the currencies the buyer may pay in.
func (r *CreateInvoiceRequest) WithPaymentCurrencies(currencies []string) *CreateInvoiceRequest {
	r.PaymentCurrencies = currencies
	return r
}

// AutoAccept toggles automatic acceptance of incoming payments.
func (r *CreateInvoiceRequest) AutoAccept(autoAccept bool) *CreateInvoiceRequest {
	r.AutoAcceptPayments = &autoAccept
	return r
}

// PaymentInfo is the deposit target for paying one invoice in one currency.
type PaymentInfo struct {
	CurrencyID            string  `json:"currency_id"`
	CurrencySymbol        string  `json:"currency_symbol"`
	Address               string  `json:"address"`
	Amount                string  `json:"amount"`
	AmountF               float64 `json:"amount_f"`
	QRCodeURL             string  `json:"qr_code_url"`
	PaymentURL            string  `json:"payment_url"`
	Timeout               uint32  `json:"timeout"`
	RequiredConfirmations uint32  `json:"required_confirmations"`
}

// CreateInvoiceResponse pairs the created invoice with per-currency payment
// targets when payment currencies were requested.
type CreateInvoiceResponse struct {
	Invoice     Invoice       `json:"invoice"`
	PaymentInfo []PaymentInfo `json:"payment_info,omitempty"`
}

// PaymentStatusType is the state of one in-flight invoice payment.
type PaymentStatusType string

const (
	PaymentStatusWaiting   PaymentStatusType = "waiting"
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusConfirmed PaymentStatusType = "confirmed"
	PaymentStatusCompleted PaymentStatusType = "completed"
	PaymentStatusFailed    PaymentStatusType = "failed"
	PaymentStatusExpired   PaymentStatusType = "expired"
)

// PaymentStatus tracks an incoming payment against an invoice.
type PaymentStatus struct {
	CurrencyID            string            `json:"currency_id"`
	AmountPaid            string            `json:"amount_paid"`
	AmountPaidF           float64           `json:"amount_paid_f"`
	AmountReceived        string            `json:"amount_received"`
	AmountReceivedF       float64           `json:"amount_received_f"`
	Confirmations         uint32            `json:"confirmations"`
	RequiredConfirmations uint32            `json:"required_confirmations"`
	Status                PaymentStatusType `json:"status"`
	TxID                  *string           `json:"txid,omitempty"`
	FirstSeen             *string           `json:"first_seen,omitempty"`
	LastUpdated           string            `json:"last_updated"`
}

// GetInvoicesResponse lists invoices.
type GetInvoicesResponse struct {
	Invoices   []Invoice           `json:"invoices"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// PayoutStatus is the state of a merchant payout.
type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusCompleted  PayoutStatus = "completed"
	PayoutStatusFailed     PayoutStatus = "failed"
	PayoutStatusCancelled  PayoutStatus = "cancelled"
)

// InvoicePayout is a settlement of invoice funds to the merchant.
type InvoicePayout struct {
	ID                 string       `json:"id"`
	InvoiceID          string       `json:"invoice_id"`
	Amount             string       `json:"amount"`
	AmountF            float64      `json:"amount_f"`
	Currency           string       `json:"currency"`
	DestinationAddress string       `json:"destination_address"`
	TxID               *string      `json:"txid,omitempty"`
	Status             PayoutStatus `json:"status"`
	Fee                *string      `json:"fee,omitempty"`
	FeeF               *float64     `json:"fee_f,omitempty"`
	CreatedAt          string       `json:"created_at"`
	CompletedAt        *string      `json:"completed_at,omitempty"`
}

// GetInvoicePayoutsResponse lists the payouts of one invoice.
type GetInvoicePayoutsResponse struct {
	Payouts []InvoicePayout `json:"payouts"`
}

// InvoiceEventType categorizes an invoice history entry.
type InvoiceEventType string

const (
	InvoiceEventCreated          InvoiceEventType = "created"
	InvoiceEventUpdated          InvoiceEventType = "updated"
	InvoiceEventPaymentCreated   InvoiceEventType = "paymentCreated"
	InvoiceEventPaymentReceived  InvoiceEventType = "paymentReceived"
	InvoiceEventPaymentConfirmed InvoiceEventType = "paymentConfirmed"
	InvoiceEventPaid             InvoiceEventType = "paid"
	InvoiceEventCompleted        InvoiceEventType = "completed"
	InvoiceEventCancelled        InvoiceEventType = "cancelled"
	InvoiceEventExpired          InvoiceEventType = "expired"
	InvoiceEventPayoutCreated    InvoiceEventType = "payoutCreated"
	InvoiceEventPayoutCompleted  InvoiceEventType = "payoutCompleted"
)

// InvoiceHistoryEntry is one audit event in an invoice's timeline.
type InvoiceHistoryEntry struct {
	ID          string           `json:"id"`
	InvoiceID   string           `json:"invoice_id"`
	EventType   InvoiceEventType `json:"event_type"`
	Description string           `json:"description"`
	Metadata    json.RawMessage  `json:"metadata,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

// GetInvoiceHistoryResponse lists an invoice's audit events.
type GetInvoiceHistoryResponse struct {
	History []InvoiceHistoryEntry `json:"history"`
}
