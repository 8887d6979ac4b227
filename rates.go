package coinpayments

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/coinpayments/coinpayments-go/utils"
)

// RateQuery filters the v2/rates listing. The zero value requests all rates
// for active currencies. IncludeInactive is tri-state: the key is only sent
// when explicitly set.
type RateQuery struct {
	FromCurrency    string
	ToCurrency      string
	Currencies      []string
	Page            uint32
	PerPage         uint32
	IncludeInactive *bool
}

func (q *RateQuery) queryParams() []utils.QueryParam {
	var params []utils.QueryParam

	if q.FromCurrency != "" {
		params = append(params, utils.QueryParam{Key: "from", Value: q.FromCurrency})
	}
	if q.ToCurrency != "" {
		params = append(params, utils.QueryParam{Key: "to", Value: q.ToCurrency})
	}
	if len(q.Currencies) > 0 {
		params = append(params, utils.QueryParam{Key: "currencies", Value: strings.Join(q.Currencies, ",")})
	}
	if q.Page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(q.Page), 10)})
	}
	if q.PerPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(q.PerPage), 10)})
	}
	if q.IncludeInactive != nil {
		params = append(params, utils.QueryParam{Key: "include_inactive", Value: strconv.FormatBool(*q.IncludeInactive)})
	}

	return params
}

// GetRates returns current conversion rates, optionally filtered. A nil
// query returns all rates.
func (c *Client) GetRates(ctx context.Context, query *RateQuery) (*GetRatesResponse, error) {
	var params []utils.QueryParam
	if query != nil {
		params = query.queryParams()
	}

	return getRequest[*GetRatesResponse](ctx, c, "v2/rates", params)
}

// GetRate returns the rate for one currency pair.
func (c *Client) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*ExchangeRate, error) {
	resp, err := c.GetRates(ctx, &RateQuery{FromCurrency: fromCurrency, ToCurrency: toCurrency})
	if err != nil {
		return nil, err
	}

	for i := range resp.Rates {
		r := &resp.Rates[i]
		if r.FromCurrencyID == fromCurrency && r.ToCurrencyID == toCurrency {
			return r, nil
		}
	}
	return nil, &APIError{Message: "rate not found for " + fromCurrency + " to " + toCurrency}
}

// GetCurrencyRates returns all rates for one currency. With asBase true the
// currency is the source of each pair, otherwise the target.
func (c *Client) GetCurrencyRates(ctx context.Context, currencyID string, asBase bool) ([]ExchangeRate, error) {
	query := &RateQuery{}
	if asBase {
		query.FromCurrency = currencyID
	} else {
		query.ToCurrency = currencyID
	}

	resp, err := c.GetRates(ctx, query)
	if err != nil {
		return nil, err
	}
	return resp.Rates, nil
}

// GetMultipleCurrencyRates returns rates for a specific set of currencies.
func (c *Client) GetMultipleCurrencyRates(ctx context.Context, currencyIDs []string) ([]ExchangeRate, error) {
	resp, err := c.GetRates(ctx, &RateQuery{Currencies: currencyIDs})
	if err != nil {
		return nil, err
	}
	return resp.Rates, nil
}

// CalculateConversion applies a rate to an amount.
func CalculateConversion(amount float64, rate *ExchangeRate) float64 {
	return amount * rate.RateF
}

// FindRate looks up a currency pair in a rate listing.
func FindRate(rates []ExchangeRate, fromCurrency, toCurrency string) *ExchangeRate {
	for i := range rates {
		if rates[i].FromCurrencyID == fromCurrency && rates[i].ToCurrencyID == toCurrency {
			return &rates[i]
		}
	}
	return nil
}

// BaseCurrencyRates returns the rates whose source is baseCurrency.
func BaseCurrencyRates(rates []ExchangeRate, baseCurrency string) []ExchangeRate {
	var out []ExchangeRate
	for _, r := range rates {
		if r.FromCurrencyID == baseCurrency {
			out = append(out, r)
		}
	}
	return out
}

// TargetCurrencyRates returns the rates whose target is targetCurrency.
func TargetCurrencyRates(rates []ExchangeRate, targetCurrency string) []ExchangeRate {
	var out []ExchangeRate
	for _, r := range rates {
		if r.ToCurrencyID == targetCurrency {
			out = append(out, r)
		}
	}
	return out
}

// RateChangedSignificantly reports whether the 24h change exceeds the
// threshold percentage in either direction.
func RateChangedSignificantly(rate *ExchangeRate, thresholdPercent float64) bool {
	if rate.ChangePercentage24 == nil {
		return false
	}
	change := *rate.ChangePercentage24
	if change < 0 {
		change = -change
	}
	return change > thresholdPercent
}

// SortRatesByChange orders rates by 24h change percentage; rates without
// change data sort as zero.
func SortRatesByChange(rates []ExchangeRate, descending bool) {
	change := func(r *ExchangeRate) float64 {
		if r.ChangePercentage24 == nil {
			return 0
		}
		return *r.ChangePercentage24
	}

	sort.SliceStable(rates, func(i, j int) bool {
		if descending {
			return change(&rates[i]) > change(&rates[j])
		}
		return change(&rates[i]) < change(&rates[j])
	})
}
