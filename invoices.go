package coinpayments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/coinpayments/coinpayments-go/utils"
)

// InvoiceFilter narrows the invoice listing. Zero values are omitted.
type InvoiceFilter struct {
	Page     uint32
	PerPage  uint32
	Status   InvoiceStatus
	Currency string
}

func (f *InvoiceFilter) queryParams() []utils.QueryParam {
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
	if f.Status != "" {
		// The listing endpoint expects "timedOut" even though the invoice
		// body spells the status "timedout".
		value := string(f.Status)
		if f.Status == InvoiceStatusTimedOut {
			value = "timedOut"
		}
		params = append(params, utils.QueryParam{Key: "status", Value: value})
	}
	if f.Currency != "" {
		params = append(params, utils.QueryParam{Key: "currency", Value: f.Currency})
	}
	return params
}

// CreateInvoice creates an invoice and returns it together with payment
// targets for any requested payment currencies.
func (c *Client) CreateInvoice(ctx context.Context, request *CreateInvoiceRequest) (*CreateInvoiceResponse, error) {
	if request == nil {
		return nil, invalidParams("invoice request is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "invoice request", Err: err}
	}
	return postRequest[*CreateInvoiceResponse](ctx, c, "v2/merchant/invoices", request)
}

// CancelInvoice cancels an unpaid invoice.
func (c *Client) CancelInvoice(ctx context.Context, invoiceID string) error {
	if invoiceID == "" {
		return invalidParams("invoice id is required")
	}
	endpoint := fmt.Sprintf("v1/merchant/invoices/%s/cancel", invoiceID)
	return postNoContent[any](ctx, c, endpoint, nil)
}

// GetInvoices lists the merchant's invoices. A nil filter returns everything
// with server-side pagination defaults.
func (c *Client) GetInvoices(ctx context.Context, filter *InvoiceFilter) (*GetInvoicesResponse, error) {
	return getRequest[*GetInvoicesResponse](ctx, c, "v2/merchant/invoices", filter.queryParams())
}

// GetInvoice returns a single invoice, optionally with its payment details.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string, includePayments bool) (*Invoice, error) {
	if invoiceID == "" {
		return nil, invalidParams("invoice id is required")
	}

	var params []utils.QueryParam
	if includePayments {
		params = append(params, utils.QueryParam{Key: "include_payments", Value: "true"})
	}

	endpoint := fmt.Sprintf("v2/merchant/invoices/%s", invoiceID)
	return getRequest[*Invoice](ctx, c, endpoint, params)
}

// GetInvoicePaymentInfo returns the deposit address and amount for paying an
// invoice in one currency.
func (c *Client) GetInvoicePaymentInfo(ctx context.Context, invoiceID, currencyID string) (*PaymentInfo, error) {
	if invoiceID == "" {
		return nil, invalidParams("invoice id is required")
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v1/invoices/%s/payment-currencies/%s", invoiceID, currencyID)
	return getRequest[*PaymentInfo](ctx, c, endpoint, nil)
}

// GetInvoicePaymentStatus returns the state of an incoming payment for one
// currency.
func (c *Client) GetInvoicePaymentStatus(ctx context.Context, invoiceID, currencyID string) (*PaymentStatus, error) {
	if invoiceID == "" {
		return nil, invalidParams("invoice id is required")
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v1/invoices/%s/payment-currencies/%s/status", invoiceID, currencyID)
	return getRequest[*PaymentStatus](ctx, c, endpoint, nil)
}

// GetInvoicePayouts lists the merchant settlements for one invoice.
func (c *Client) GetInvoicePayouts(ctx context.Context, invoiceID string) (*GetInvoicePayoutsResponse, error) {
	if invoiceID == "" {
		return nil, invalidParams("invoice id is required")
	}
	endpoint := fmt.Sprintf("v2/merchant/invoices/%s/payouts", invoiceID)
	return getRequest[*GetInvoicePayoutsResponse](ctx, c, endpoint, nil)
}

// GetInvoiceHistory lists the audit events of one invoice.
func (c *Client) GetInvoiceHistory(ctx context.Context, invoiceID string) (*GetInvoiceHistoryResponse, error) {
	if invoiceID == "" {
		return nil, invalidParams("invoice id is required")
	}
	endpoint := fmt.Sprintf("v2/merchant/invoices/%s/history", invoiceID)
	return getRequest[*GetInvoiceHistoryResponse](ctx, c, endpoint, nil)
}

// IsPaid reports whether the invoice has been paid or completed.
func (inv *Invoice) IsPaid() bool {
	return inv.Status == InvoiceStatusPaid || inv.Status == InvoiceStatusCompleted
}

// IsActive reports whether the invoice can still receive payments.
func (inv *Invoice) IsActive() bool {
	return inv.Status == InvoiceStatusUnpaid || inv.Status == InvoiceStatusPending
}

// IsExpired reports whether the invoice timed out before payment.
func (inv *Invoice) IsExpired() bool {
	return inv.Status == InvoiceStatusTimedOut
}

// IsCancelled reports whether the merchant cancelled the invoice.
func (inv *Invoice) IsCancelled() bool {
	return inv.Status == InvoiceStatusCancelled
}

// FilterInvoicesByStatus returns the invoices in the given state.
func FilterInvoicesByStatus(invoices []Invoice, status InvoiceStatus) []Invoice {
	var filtered []Invoice
	for _, inv := range invoices {
		if inv.Status == status {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// TotalInvoiceAmount sums the amounts of the given invoices.
func TotalInvoiceAmount(invoices []Invoice) float64 {
	var total float64
	for i := range invoices {
		total += invoices[i].AmountF
	}
	return total
}

// FilterInvoicesByDateRange returns the invoices created within the
// inclusive range. Timestamps compare lexically, which is correct for the
// ISO 8601 strings the API returns.
func FilterInvoicesByDateRange(invoices []Invoice, startDate, endDate string) []Invoice {
	var filtered []Invoice
	for _, inv := range invoices {
		if inv.CreatedAt >= startDate && inv.CreatedAt <= endDate {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// FindInvoiceByNumber returns the invoice carrying the merchant's invoice
// number, or nil.
func FindInvoiceByNumber(invoices []Invoice, invoiceNumber string) *Invoice {
	for i := range invoices {
		if invoices[i].InvoiceNumber != nil && *invoices[i].InvoiceNumber == invoiceNumber {
			return &invoices[i]
		}
	}
	return nil
}
