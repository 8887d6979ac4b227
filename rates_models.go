package coinpayments

// ExchangeRate is one conversion rate with optional market data.
type ExchangeRate struct {
	FromCurrencyID     string   `json:"from_currency_id"`
	ToCurrencyID       string   `json:"to_currency_id"`
	Rate               string   `json:"rate"`
	RateF              float64  `json:"rate_f"`
	LastUpdated        string   `json:"last_updated"`
	MarketCap          *string  `json:"market_cap,omitempty"`
	Volume24h          *string  `json:"volume_24h,omitempty"`
	Change24h          *string  `json:"change_24h,omitempty"`
	ChangePercentage24 *float64 `json:"change_percentage_24h,omitempty"`
}

// GetRatesResponse is the rate listing.
type GetRatesResponse struct {
	Rates        []ExchangeRate      `json:"rates"`
	BaseCurrency *string             `json:"base_currency,omitempty"`
	LastUpdated  string              `json:"last_updated"`
	Pagination   *PaginationMetadata `json:"pagination,omitempty"`
}
