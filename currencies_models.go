package coinpayments

// CurrencyStatus is the lifecycle state of a supported currency.
type CurrencyStatus string

const (
	CurrencyStatusActive      CurrencyStatus = "active"
	CurrencyStatusInactive    CurrencyStatus = "inactive"
	CurrencyStatusMaintenance CurrencyStatus = "maintenance"
)

// CurrencyCapability is an operation a currency supports.
type CurrencyCapability string

const (
	CapabilityDeposit        CurrencyCapability = "deposit"
	CapabilityWithdrawal     CurrencyCapability = "withdrawal"
	CapabilityConversion     CurrencyCapability = "conversion"
	CapabilityInvoicePayment CurrencyCapability = "invoicePayment"
	CapabilityWalletCreation CurrencyCapability = "walletCreation"
)

// Currency is a supported currency from the v2 API.
type Currency struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Symbol               string               `json:"symbol"`
	BlockchainID         *string              `json:"blockchain_id,omitempty"`
	SmartContractAddress *string              `json:"smart_contract_address,omitempty"`
	Decimals             uint8                `json:"decimals"`
	IsFiat               bool                 `json:"is_fiat"`
	Status               CurrencyStatus       `json:"status"`
	Capabilities         []CurrencyCapability `json:"capabilities"`
	CreatedAt            string               `json:"created_at"`
	UpdatedAt            string               `json:"updated_at"`
}

// GetCurrenciesResponse is the paged currency listing.
type GetCurrenciesResponse struct {
	Currencies []Currency          `json:"currencies"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// MerchantCurrency is a currency the merchant currently accepts.
type MerchantCurrency struct {
	CurrencyID string  `json:"currency_id"`
	Rank       *uint32 `json:"rank,omitempty"`
	Enabled    bool    `json:"enabled"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// GetMerchantCurrenciesResponse lists the merchant's accepted currencies.
type GetMerchantCurrenciesResponse struct {
	Currencies []MerchantCurrency `json:"currencies"`
}

// BlockchainNodeInfo is the node sync state for one currency.
type BlockchainNodeInfo struct {
	CurrencyID        string `json:"currency_id"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
	Synced            bool   `json:"synced"`
	Network           string `json:"network"`
}

// RequiredConfirmations is the confirmation threshold for one currency.
type RequiredConfirmations struct {
	CurrencyID    string `json:"currency_id"`
	Confirmations uint32 `json:"confirmations"`
	Network       string `json:"network"`
}

// GetRequiredConfirmationsResponse lists confirmation thresholds.
type GetRequiredConfirmationsResponse struct {
	Confirmations []RequiredConfirmations `json:"confirmations"`
}

// CurrencyConversion describes one available conversion pair.
type CurrencyConversion struct {
	FromCurrencyID string  `json:"from_currency_id"`
	ToCurrencyID   string  `json:"to_currency_id"`
	Available      bool    `json:"available"`
	MinAmount      *string `json:"min_amount,omitempty"`
	MaxAmount      *string `json:"max_amount,omitempty"`
}

// GetCurrencyConversionsResponse lists available conversion pairs.
type GetCurrencyConversionsResponse struct {
	Conversions []CurrencyConversion `json:"conversions"`
}

// CurrencyLimits are the conversion limits for a currency pair.
type CurrencyLimits struct {
	FromCurrencyID string  `json:"from_currency_id"`
	ToCurrencyID   string  `json:"to_currency_id"`
	MinAmount      string  `json:"min_amount"`
	MaxAmount      string  `json:"max_amount"`
	DailyLimit     *string `json:"daily_limit,omitempty"`
	MonthlyLimit   *string `json:"monthly_limit,omitempty"`
}
