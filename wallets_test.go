package coinpayments

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWallet(label, currencyID string, balance float64) Wallet {
	return Wallet{
		ID:                "wallet_123",
		Label:             label,
		CurrencyID:        currencyID,
		CurrencySymbol:    "BTC",
		BalanceF:          balance,
		AvailableBalanceF: balance,
		AddressType:       AddressTypeTemporary,
		Status:            WalletStatusActive,
	}
}

func testAddress(label string, balance float64, activated bool) WalletAddress {
	return WalletAddress{
		ID:          "addr_123",
		Label:       label,
		Address:     "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		WalletID:    "wallet_123",
		CurrencyID:  "4",
		AddressType: AddressTypePermanent,
		BalanceF:    balance,
		IsActivated: activated,
	}
}

func TestGetWallets(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"wallets":[{"id":"w1","label":"main","currency_id":"4","currency_symbol":"BTC","balance":"0.5","balance_f":0.5,"available_balance":"0.5","available_balance_f":0.5,"pending_balance":"0","pending_balance_f":0,"address_type":"temporary","status":"active","created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z"}]}`))
	})

	resp, err := c.GetWallets(context.Background(), &WalletFilter{Page: 1, PerPage: 25, CurrencyID: "4", Status: WalletStatusActive})
	require.NoError(t, err)

	assert.Equal(t, "/v3/merchant/wallets", gotPath)
	assert.Equal(t, "page=1&per_page=25&currency_id=4&status=active", gotQuery)
	require.Len(t, resp.Wallets, 1)
	assert.Equal(t, "main", resp.Wallets[0].Label)
}

func TestCreateWallet(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"wallet":{"id":"w1","label":"my-btc-wallet","currency_id":"4","currency_symbol":"BTC","balance":"0","balance_f":0,"available_balance":"0","available_balance_f":0,"pending_balance":"0","pending_balance_f":0,"address_type":"temporary","status":"active","created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z"}}`))
	})

	request := NewCreateWalletRequest("my-btc-wallet", "4")
	resp, err := c.CreateWallet(context.Background(), request)
	require.NoError(t, err)

	// Wallet creation is idempotent by label, hence PUT.
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/v3/merchant/wallets", gotPath)
	assert.Equal(t, "my-btc-wallet", resp.Wallet.Label)

	var sent CreateWalletRequest
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	require.NotNil(t, sent.UsePermanentAddresses)
	assert.False(t, *sent.UsePermanentAddresses)
	require.NotNil(t, sent.AutoCreateAddress)
	assert.True(t, *sent.AutoCreateAddress)
}

func TestCreateWalletValidation(t *testing.T) {
	c := New(testClientID, testSecret)
	var invalid *InvalidParametersError

	_, err := c.CreateWallet(context.Background(), nil)
	require.ErrorAs(t, err, &invalid)

	_, err = c.CreateWallet(context.Background(), &CreateWalletRequest{Label: "bad label!", CurrencyID: "4"})
	require.ErrorAs(t, err, &invalid)

	_, err = c.CreateWallet(context.Background(), &CreateWalletRequest{Label: "ok", CurrencyID: ""})
	require.ErrorAs(t, err, &invalid)
}

func TestGetWalletAddresses(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"addresses":[]}`))
	})

	_, err := c.GetWalletAddresses(context.Background(), "my-btc-wallet", "4", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "/v3/merchant/wallets/my-btc-wallet/4/addresses", gotPath)
	assert.Equal(t, "page=2&per_page=10", gotQuery)
}

func TestGetWalletAddressCount(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"count":5,"activated_count":3,"unactivated_count":2}`))
	})

	count, err := c.GetWalletAddressCount(context.Background(), "my-btc-wallet", "4")
	require.NoError(t, err)
	assert.Equal(t, "/v3/merchant/wallets/my-btc-wallet/4/addresses/count", gotPath)
	assert.Equal(t, uint32(3), count.ActivatedCount)
}

func TestGetAddressByLabel(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"a1","label":"deposit-1","address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","wallet_id":"w1","currency_id":"4","address_type":"permanent","balance":"0","balance_f":0,"is_activated":true,"created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z"}`))
	})

	addr, err := c.GetAddressByLabel(context.Background(), "my-btc-wallet", "4", "deposit-1")
	require.NoError(t, err)
	assert.Equal(t, "/v3/merchant/wallets/my-btc-wallet/4/addresses/deposit-1", gotPath)
	assert.Equal(t, AddressTypePermanent, addr.AddressType)
}

func TestUpdateWalletWebhook(t *testing.T) {
	var gotPath, gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateWalletWebhook(context.Background(), "my-btc-wallet", "4", &WebhookConfig{
		URL:    "https://example.com/hook",
		Events: []WalletWebhookEvent{WalletEventUtxoExternalReceive},
	})
	require.NoError(t, err)
	assert.Equal(t, "/v3/merchant/wallets/my-btc-wallet/4/webhook", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestCreateWalletRequestBuilder(t *testing.T) {
	request := NewCreateWalletRequest("my-wallet", "4").
		WithPermanentAddresses(true).
		WithWebhook("https://example.com/hook").
		WithAutoCreateAddress(false)

	assert.Equal(t, "my-wallet", request.Label)
	assert.Equal(t, "4", request.CurrencyID)
	assert.True(t, *request.UsePermanentAddresses)
	assert.Equal(t, "https://example.com/hook", *request.WebhookURL)
	assert.False(t, *request.AutoCreateAddress)
}

func TestHasSufficientBalance(t *testing.T) {
	w := testWallet("test", "4", 0.01)
	assert.True(t, w.HasSufficientBalance(0.005))
	assert.False(t, w.HasSufficientBalance(0.02))
}

func TestTotalWalletValue(t *testing.T) {
	wallets := []Wallet{
		testWallet("w1", "4", 0.01),
		testWallet("w2", "4", 0.5),
		testWallet("w3", "4", 0.1),
	}
	assert.InDelta(t, 0.61, TotalWalletValue(wallets), 1e-9)
}

func TestFilterWallets(t *testing.T) {
	wallets := []Wallet{
		testWallet("active1", "4", 0.01),
		testWallet("inactive1", "61", 0.5),
	}
	wallets[1].Status = WalletStatusInactive

	active := FilterWalletsByStatus(wallets, WalletStatusActive)
	require.Len(t, active, 1)
	assert.Equal(t, "active1", active[0].Label)

	eth := FilterWalletsByCurrency(wallets, "61")
	require.Len(t, eth, 1)
	assert.Equal(t, "inactive1", eth[0].Label)
}

func TestFindWalletByLabel(t *testing.T) {
	wallets := []Wallet{
		testWallet("wallet1", "4", 0.01),
		testWallet("wallet2", "61", 0.5),
	}

	found := FindWalletByLabel(wallets, "wallet2")
	require.NotNil(t, found)
	assert.Equal(t, "61", found.CurrencyID)

	assert.Nil(t, FindWalletByLabel(wallets, "nonexistent"))
}

func TestAddressHelpers(t *testing.T) {
	addresses := []WalletAddress{
		testAddress("addr1", 0.001, true),
		testAddress("addr2", 0.0, true),
		testAddress("addr3", 0.005, false),
	}

	funded := AddressesWithBalance(addresses)
	assert.Len(t, funded, 2)

	assert.InDelta(t, 0.006, TotalAddressBalance(addresses), 1e-9)
}
