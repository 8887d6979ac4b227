package coinpayments

// WalletStatus is the lifecycle state of a merchant wallet.
type WalletStatus string

const (
	WalletStatusActive   WalletStatus = "active"
	WalletStatusInactive WalletStatus = "inactive"
	WalletStatusFrozen   WalletStatus = "frozen"
	WalletStatusClosed   WalletStatus = "closed"
)

// AddressType distinguishes recycled temporary addresses from persistent
// permanent ones.
type AddressType string

const (
	AddressTypeTemporary AddressType = "temporary"
	AddressTypePermanent AddressType = "permanent"
)

// Wallet is a merchant wallet for a single currency.
type Wallet struct {
	ID                string       `json:"id"`
	Label             string       `json:"label"`
	CurrencyID        string       `json:"currency_id"`
	CurrencySymbol    string       `json:"currency_symbol"`
	Balance           string       `json:"balance"`
	BalanceF          float64      `json:"balance_f"`
	AvailableBalance  string       `json:"available_balance"`
	AvailableBalanceF float64      `json:"available_balance_f"`
	PendingBalance    string       `json:"pending_balance"`
	PendingBalanceF   float64      `json:"pending_balance_f"`
	AddressType       AddressType  `json:"address_type"`
	Status            WalletStatus `json:"status"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

// WalletAddress is a deposit address belonging to a wallet.
type WalletAddress struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Address     string      `json:"address"`
	WalletID    string      `json:"wallet_id"`
	CurrencyID  string      `json:"currency_id"`
	AddressType AddressType `json:"address_type"`
	Balance     string      `json:"balance"`
	BalanceF    float64     `json:"balance_f"`
	IsActivated bool        `json:"is_activated"`
	WebhookURL  *string     `json:"webhook_url,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// CreateWalletRequest creates or retrieves a wallet by label and currency.
type CreateWalletRequest struct {
	Label                 string  `json:"label" validate:"required,wallet_label"`
	CurrencyID            string  `json:"currency_id" validate:"required,currency_id"`
	UsePermanentAddresses *bool   `json:"use_permanent_addresses,omitempty"`
	WebhookURL            *string `json:"webhook_url,omitempty" validate:"omitempty,url"`
	AutoCreateAddress     *bool   `json:"auto_create_address,omitempty"`
}

// NewCreateWalletRequest returns a request with temporary addresses and
// automatic first-address creation.
func NewCreateWalletRequest(label, currencyID string) *CreateWalletRequest {
	permanent := false
	autoCreate := true
	return &CreateWalletRequest{
		Label:                 label,
		CurrencyID:            currencyID,
		UsePermanentAddresses: &permanent,
		AutoCreateAddress:     &autoCreate,
	}
}

// WithPermanentAddresses toggles persistent deposit addresses.
func (r *CreateWalletRequest) WithPermanentAddresses(permanent bool) *CreateWalletRequest {
	r.UsePermanentAddresses = &permanent
	return r
}

// WithWebhook sets the notification URL for wallet events.
func (r *CreateWalletRequest) WithWebhook(url string) *CreateWalletRequest {
	r.WebhookURL = &url
	return r
}

// WithAutoCreateAddress toggles creation of an initial address.
func (r *CreateWalletRequest) WithAutoCreateAddress(autoCreate bool) *CreateWalletRequest {
	r.AutoCreateAddress = &autoCreate
	return r
}

// WalletResponse is returned by wallet create and retrieve operations.
type WalletResponse struct {
	Wallet    Wallet          `json:"wallet"`
	Addresses []WalletAddress `json:"addresses,omitempty"`
}

// GetWalletsResponse lists merchant wallets.
type GetWalletsResponse struct {
	Wallets    []Wallet            `json:"wallets"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// WalletCountResponse summarizes wallet counts by state.
type WalletCountResponse struct {
	Count         uint32 `json:"count"`
	ActiveCount   uint32 `json:"active_count"`
	InactiveCount uint32 `json:"inactive_count"`
}

// GetAddressesResponse lists addresses for a wallet.
type GetAddressesResponse struct {
	Addresses  []WalletAddress     `json:"addresses"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// AddressCountResponse summarizes address counts by activation state.
type AddressCountResponse struct {
	Count            uint32 `json:"count"`
	ActivatedCount   uint32 `json:"activated_count"`
	UnactivatedCount uint32 `json:"unactivated_count"`
}

// WalletWebhookEvent is a wallet or address level notification type.
type WalletWebhookEvent string

const (
	WalletEventInternalReceive                  WalletWebhookEvent = "internalReceive"
	WalletEventUtxoExternalReceive              WalletWebhookEvent = "utxoExternalReceive"
	WalletEventAccountBasedExternalReceive      WalletWebhookEvent = "accountBasedExternalReceive"
	WalletEventInternalSpend                    WalletWebhookEvent = "internalSpend"
	WalletEventExternalSpend                    WalletWebhookEvent = "externalSpend"
	WalletEventSameUserReceive                  WalletWebhookEvent = "sameUserReceive"
	WalletEventAccountBasedExternalTokenReceive WalletWebhookEvent = "accountBasedExternalTokenReceive"
	WalletEventAccountBasedTokenSpend           WalletWebhookEvent = "accountBasedTokenSpend"
)

// WebhookConfig configures notifications for a wallet or address.
type WebhookConfig struct {
	URL    string               `json:"url" validate:"required,url"`
	Events []WalletWebhookEvent `json:"events" validate:"required,min=1"`
	Secret *string              `json:"secret,omitempty"`
}
