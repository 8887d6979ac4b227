package coinpayments

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrencies(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"currencies":[{"id":"4","name":"Bitcoin","symbol":"BTC","decimals":8,"is_fiat":false,"status":"active","capabilities":["deposit","withdrawal"],"created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z"}],"pagination":{"page":2,"per_page":10,"total":25,"total_pages":3}}`))
	})

	resp, err := c.GetCurrencies(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, "/v2/currencies", gotPath)
	assert.Equal(t, "page=2&per_page=10", gotQuery)
	require.Len(t, resp.Currencies, 1)
	assert.Equal(t, "Bitcoin", resp.Currencies[0].Name)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, uint32(3), resp.Pagination.TotalPages)
}

func TestGetCurrenciesDefaultPaging(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"currencies":[]}`))
	})

	_, err := c.GetCurrencies(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestGetCurrencyByID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"4","name":"Bitcoin","symbol":"BTC","decimals":8,"is_fiat":false,"status":"active","capabilities":[],"created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z"}`))
	})

	cur, err := c.GetCurrencyByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "/v2/currencies/4", gotPath)
	assert.Equal(t, "BTC", cur.Symbol)
}

func TestGetCurrencyByIDRejectsInvalid(t *testing.T) {
	c := New(testClientID, testSecret)

	_, err := c.GetCurrencyByID(context.Background(), "not a currency id!")
	var invalid *InvalidParametersError
	require.ErrorAs(t, err, &invalid)
}

func TestGetLatestBlockNumber(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"currency_id":"4","latest_block_number":810000,"synced":true,"network":"mainnet"}`))
	})

	info, err := c.GetLatestBlockNumber(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "/v2/currencies/blockchain-nodes/4/latest-block-number", gotPath)
	assert.Equal(t, uint64(810000), info.LatestBlockNumber)
	assert.True(t, info.Synced)
}

func TestGetCurrencyLimits(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"from_currency_id":"4","to_currency_id":"61","min_amount":"0.0001","max_amount":"10"}`))
	})

	limits, err := c.GetCurrencyLimits(context.Background(), "4", "61")
	require.NoError(t, err)
	assert.Equal(t, "/v2/currencies/limits/4/61", gotPath)
	assert.Equal(t, "0.0001", limits.MinAmount)
}

func testCurrency(id string, status CurrencyStatus, capabilities ...CurrencyCapability) Currency {
	return Currency{
		ID:           id,
		Name:         "Currency " + id,
		Symbol:       "C" + id,
		Decimals:     8,
		Status:       status,
		Capabilities: capabilities,
	}
}

func TestSupportsCapability(t *testing.T) {
	cur := testCurrency("4", CurrencyStatusActive, CapabilityDeposit, CapabilityWithdrawal)

	assert.True(t, cur.SupportsCapability(CapabilityDeposit))
	assert.False(t, cur.SupportsCapability(CapabilityInvoicePayment))
}

func TestIsToken(t *testing.T) {
	plain := testCurrency("4", CurrencyStatusActive)
	assert.False(t, plain.IsToken())

	contract := "0xdac17f958d2ee523a2206206994597c13d831ec7"
	token := plain
	token.SmartContractAddress = &contract
	assert.True(t, token.IsToken())
}

func TestFilterCurrenciesByStatus(t *testing.T) {
	currencies := []Currency{
		testCurrency("4", CurrencyStatusActive),
		testCurrency("61", CurrencyStatusMaintenance),
		testCurrency("3", CurrencyStatusActive),
	}

	active := FilterCurrenciesByStatus(currencies, CurrencyStatusActive)
	assert.Len(t, active, 2)

	maintenance := FilterCurrenciesByStatus(currencies, CurrencyStatusMaintenance)
	require.Len(t, maintenance, 1)
	assert.Equal(t, "61", maintenance[0].ID)
}

func TestCurrenciesWithCapability(t *testing.T) {
	currencies := []Currency{
		testCurrency("4", CurrencyStatusActive, CapabilityDeposit),
		testCurrency("61", CurrencyStatusActive, CapabilityDeposit, CapabilityConversion),
		testCurrency("3", CurrencyStatusActive),
	}

	withDeposit := CurrenciesWithCapability(currencies, CapabilityDeposit)
	assert.Len(t, withDeposit, 2)
}

func TestParseTokenCurrencyID(t *testing.T) {
	base, contract, ok := ParseTokenCurrencyID("61:0xdac17f958d2ee523a2206206994597c13d831ec7")
	require.True(t, ok)
	assert.Equal(t, "61", base)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", contract)

	_, _, ok = ParseTokenCurrencyID("4")
	assert.False(t, ok)
}

func TestBaseCurrencyID(t *testing.T) {
	assert.Equal(t, "61", BaseCurrencyID("61:0xdac17f958d2ee523a2206206994597c13d831ec7"))
	assert.Equal(t, "4", BaseCurrencyID("4"))
}
