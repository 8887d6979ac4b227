package coinpayments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/coinpayments/coinpayments-go/utils"
)

// WalletFilter narrows the wallet listing. Zero values are omitted.
type WalletFilter struct {
	Page       uint32
	PerPage    uint32
	CurrencyID string
	Status     WalletStatus
}

func (f *WalletFilter) queryParams() []utils.QueryParam {
	if f == nil {
		return nil
	}
	var params []utils.QueryParam
	if f.Page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(f.Page), 10)})
	}
	if f.PerPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(f.PerPage), 10)})
	}
	if f.CurrencyID != "" {
		params = append(params, utils.QueryParam{Key: "currency_id", Value: f.CurrencyID})
	}
	if f.Status != "" {
		params = append(params, utils.QueryParam{Key: "status", Value: string(f.Status)})
	}
	return params
}

// GetWallets lists the merchant's wallets. A nil filter returns everything
// with server-side pagination defaults.
func (c *Client) GetWallets(ctx context.Context, filter *WalletFilter) (*GetWalletsResponse, error) {
	if filter != nil && filter.CurrencyID != "" && !utils.IsValidCurrencyID(filter.CurrencyID) {
		return nil, invalidParams("currency id %q", filter.CurrencyID)
	}
	return getRequest[*GetWalletsResponse](ctx, c, "v3/merchant/wallets", filter.queryParams())
}

// CreateWallet creates a wallet, or returns the existing one when the label
// and currency already match.
func (c *Client) CreateWallet(ctx context.Context, request *CreateWalletRequest) (*WalletResponse, error) {
	if request == nil {
		return nil, invalidParams("wallet request is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "wallet request", Err: err}
	}
	return putRequest[*WalletResponse](ctx, c, "v3/merchant/wallets", request)
}

// GetWalletCount returns wallet totals broken down by state.
func (c *Client) GetWalletCount(ctx context.Context) (*WalletCountResponse, error) {
	return getRequest[*WalletCountResponse](ctx, c, "v3/merchant/wallets/count", nil)
}

// GetWalletAddresses lists the addresses of one wallet. Pass 0 for page or
// perPage to use the server defaults.
func (c *Client) GetWalletAddresses(ctx context.Context, walletLabel, currencyID string, page, perPage uint32) (*GetAddressesResponse, error) {
	if !utils.IsValidWalletLabel(walletLabel) {
		return nil, invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}

	var params []utils.QueryParam
	if page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(page), 10)})
	}
	if perPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(perPage), 10)})
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/addresses", walletLabel, currencyID)
	return getRequest[*GetAddressesResponse](ctx, c, endpoint, params)
}

// GetWalletAddressCount returns address totals for one wallet.
func (c *Client) GetWalletAddressCount(ctx context.Context, walletLabel, currencyID string) (*AddressCountResponse, error) {
	if !utils.IsValidWalletLabel(walletLabel) {
		return nil, invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/addresses/count", walletLabel, currencyID)
	return getRequest[*AddressCountResponse](ctx, c, endpoint, nil)
}

// GetAddressByLabel returns a single address within a wallet.
func (c *Client) GetAddressByLabel(ctx context.Context, walletLabel, currencyID, addressLabel string) (*WalletAddress, error) {
	if !utils.IsValidWalletLabel(walletLabel) {
		return nil, invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	if addressLabel == "" {
		return nil, invalidParams("address label is required")
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/addresses/%s", walletLabel, currencyID, addressLabel)
	return getRequest[*WalletAddress](ctx, c, endpoint, nil)
}

// UpdateWalletWebhook replaces the notification settings for a wallet.
func (c *Client) UpdateWalletWebhook(ctx context.Context, walletLabel, currencyID string, config *WebhookConfig) error {
	if !utils.IsValidWalletLabel(walletLabel) {
		return invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return invalidParams("currency id %q", currencyID)
	}
	if err := utils.Validator.Struct(config); err != nil {
		return &InvalidParametersError{Reason: "webhook config", Err: err}
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/webhook", walletLabel, currencyID)
	return putNoContent(ctx, c, endpoint, config)
}

// UpdateAddressWebhook replaces the notification settings for a single
// address.
func (c *Client) UpdateAddressWebhook(ctx context.Context, walletLabel, currencyID, addressLabel string, config *WebhookConfig) error {
	if !utils.IsValidWalletLabel(walletLabel) {
		return invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return invalidParams("currency id %q", currencyID)
	}
	if addressLabel == "" {
		return invalidParams("address label is required")
	}
	if err := utils.Validator.Struct(config); err != nil {
		return &InvalidParametersError{Reason: "webhook config", Err: err}
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/addresses/%s/webhook", walletLabel, currencyID, addressLabel)
	return putNoContent(ctx, c, endpoint, config)
}

// HasSufficientBalance reports whether the wallet can spend the amount.
func (w *Wallet) HasSufficientBalance(amount float64) bool {
	return w.AvailableBalanceF >= amount
}

// TotalWalletValue sums the balances of the given wallets. The values are in
// each wallet's own currency, so this is only meaningful for wallets of the
// same currency.
func TotalWalletValue(wallets []Wallet) float64 {
	var total float64
	for i := range wallets {
		total += wallets[i].BalanceF
	}
	return total
}

// FilterWalletsByStatus returns the wallets in the given state.
func FilterWalletsByStatus(wallets []Wallet, status WalletStatus) []Wallet {
	var filtered []Wallet
	for _, w := range wallets {
		if w.Status == status {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// FilterWalletsByCurrency returns the wallets holding the given currency.
func FilterWalletsByCurrency(wallets []Wallet, currencyID string) []Wallet {
	var filtered []Wallet
	for _, w := range wallets {
		if w.CurrencyID == currencyID {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// FindWalletByLabel returns the wallet with the given label, or nil.
func FindWalletByLabel(wallets []Wallet, label string) *Wallet {
	for i := range wallets {
		if wallets[i].Label == label {
			return &wallets[i]
		}
	}
	return nil
}

// AddressesWithBalance returns the addresses holding a positive balance.
func AddressesWithBalance(addresses []WalletAddress) []WalletAddress {
	var funded []WalletAddress
	for _, a := range addresses {
		if a.BalanceF > 0 {
			funded = append(funded, a)
		}
	}
	return funded
}

// TotalAddressBalance sums the balances of the given addresses.
func TotalAddressBalance(addresses []WalletAddress) float64 {
	var total float64
	for i := range addresses {
		total += addresses[i].BalanceF
	}
	return total
}
