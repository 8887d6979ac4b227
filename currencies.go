package coinpayments

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/coinpayments/coinpayments-go/utils"
)

// GetCurrencies returns the supported currencies. Pass 0 for page or perPage
// to use the server defaults.
func (c *Client) GetCurrencies(ctx context.Context, page, perPage uint32) (*GetCurrenciesResponse, error) {
	var params []utils.QueryParam
	if page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(page), 10)})
	}
	if perPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(perPage), 10)})
	}

	return getRequest[*GetCurrenciesResponse](ctx, c, "v2/currencies", params)
}

// GetCurrencyByID returns a single currency, e.g. "4" for Bitcoin.
func (c *Client) GetCurrencyByID(ctx context.Context, currencyID string) (*Currency, error) {
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v2/currencies/%s", currencyID)
	return getRequest[*Currency](ctx, c, endpoint, nil)
}

// GetMerchantCurrencies returns the merchant's currently accepted currencies.
func (c *Client) GetMerchantCurrencies(ctx context.Context) (*GetMerchantCurrenciesResponse, error) {
	return getRequest[*GetMerchantCurrenciesResponse](ctx, c, "v1/merchant/currencies", nil)
}

// GetLatestBlockNumber returns the latest block the currency's node has seen.
func (c *Client) GetLatestBlockNumber(ctx context.Context, currencyID string) (*BlockchainNodeInfo, error) {
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v2/currencies/blockchain-nodes/%s/latest-block-number", currencyID)
	return getRequest[*BlockchainNodeInfo](ctx, c, endpoint, nil)
}

// GetRequiredConfirmations returns the confirmation thresholds per currency.
func (c *Client) GetRequiredConfirmations(ctx context.Context) (*GetRequiredConfirmationsResponse, error) {
	return getRequest[*GetRequiredConfirmationsResponse](ctx, c, "v2/currencies/required-confirmations", nil)
}

// GetCurrencyConversions lists all possible currency conversions.
func (c *Client) GetCurrencyConversions(ctx context.Context) (*GetCurrencyConversionsResponse, error) {
	return getRequest[*GetCurrencyConversionsResponse](ctx, c, "v2/currencies/conversions", nil)
}

// GetCurrencyLimits returns the conversion limits for a currency pair.
func (c *Client) GetCurrencyLimits(ctx context.Context, fromCurrency, toCurrency string) (*CurrencyLimits, error) {
	if !utils.IsValidCurrencyID(fromCurrency) || !utils.IsValidCurrencyID(toCurrency) {
		return nil, invalidParams("currency pair %q/%q", fromCurrency, toCurrency)
	}
	endpoint := fmt.Sprintf("v2/currencies/limits/%s/%s", fromCurrency, toCurrency)
	return getRequest[*CurrencyLimits](ctx, c, endpoint, nil)
}

// SupportsCapability reports whether the currency supports an operation.
func (cur *Currency) SupportsCapability(capability CurrencyCapability) bool {
	for _, c := range cur.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// IsToken reports whether the currency is a smart-contract token.
func (cur *Currency) IsToken() bool {
	return cur.SmartContractAddress != nil
}

// FilterCurrenciesByStatus returns the currencies in the given status.
func FilterCurrenciesByStatus(currencies []Currency, status CurrencyStatus) []Currency {
	var out []Currency
	for _, c := range currencies {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// CurrenciesWithCapability returns the currencies supporting an operation.
func CurrenciesWithCapability(currencies []Currency, capability CurrencyCapability) []Currency {
	var out []Currency
	for _, c := range currencies {
		if c.SupportsCapability(capability) {
			out = append(out, c)
		}
	}
	return out
}

// ParseTokenCurrencyID splits a token currency id ("4:0xcontract") into the
// base currency id and contract address. ok is false for plain coin ids.
func ParseTokenCurrencyID(currencyID string) (baseID, contract string, ok bool) {
	baseID, contract, ok = strings.Cut(currencyID, ":")
	if !ok {
		return "", "", false
	}
	return baseID, contract, true
}

// BaseCurrencyID returns the base currency id for tokens, or the id itself
// for plain coins.
func BaseCurrencyID(currencyID string) string {
	if baseID, _, ok := ParseTokenCurrencyID(currencyID); ok {
		return baseID
	}
	return currencyID
}
