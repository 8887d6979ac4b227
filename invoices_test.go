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

func testInvoice(id string, status InvoiceStatus, amount float64) *Invoice {
	number := "INV-001"
	return &Invoice{
		ID:            id,
		MerchantID:    "merchant_123",
		InvoiceNumber: &number,
		AmountF:       amount,
		Currency:      "USD",
		Description:   "Test invoice",
		Status:        status,
		CreatedAt:     "2023-01-01T00:00:00Z",
		InvoiceURL:    "https://checkout.coinpayments.net/inv_123",
	}
}

func TestCreateInvoice(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"invoice":{"id":"inv_1","merchant_id":"m1","amount":"10.00","amount_f":10,"currency":"USD","description":"Services","status":"unpaid","created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z","expires_at":"2023-01-01T01:00:00Z","invoice_url":"https://checkout.coinpayments.net/inv_1"}}`))
	})

	request := NewCreateInvoiceRequest("10.00", "USD", "Services")
	resp, err := c.CreateInvoice(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, "/v2/merchant/invoices", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, InvoiceStatusUnpaid, resp.Invoice.Status)

	var sent CreateInvoiceRequest
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	require.NotNil(t, sent.ExpiresIn)
	assert.Equal(t, uint32(3600), *sent.ExpiresIn)
	require.NotNil(t, sent.AutoAcceptPayments)
	assert.True(t, *sent.AutoAcceptPayments)
}

func TestCreateInvoiceValidation(t *testing.T) {
	c := New(testClientID, testSecret)
	var invalid *InvalidParametersError

	_, err := c.CreateInvoice(context.Background(), nil)
	require.ErrorAs(t, err, &invalid)

	_, err = c.CreateInvoice(context.Background(), &CreateInvoiceRequest{Amount: "-5", Currency: "USD", Description: "x"})
	require.ErrorAs(t, err, &invalid)

	bad := "not-an-email"
	request := NewCreateInvoiceRequest("10.00", "USD", "Services")
	request.BuyerEmail = &bad
	_, err = c.CreateInvoice(context.Background(), request)
	require.ErrorAs(t, err, &invalid)
}

func TestCancelInvoice(t *testing.T) {
	var gotPath, gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.CancelInvoice(context.Background(), "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "/v1/merchant/invoices/inv_1/cancel", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestGetInvoicesStatusQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"invoices":[]}`))
	})

	_, err := c.GetInvoices(context.Background(), &InvoiceFilter{Status: InvoiceStatusUnpaid, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "status=unpaid&currency=USD", gotQuery)

	// The listing filter spells the expired status differently from the
	// invoice body.
	_, err = c.GetInvoices(context.Background(), &InvoiceFilter{Status: InvoiceStatusTimedOut})
	require.NoError(t, err)
	assert.Equal(t, "status=timedOut", gotQuery)
}

func TestGetInvoice(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"id":"inv_1","merchant_id":"m1","amount":"10.00","amount_f":10,"currency":"USD","description":"Services","status":"paid","created_at":"2023-01-01T00:00:00Z","updated_at":"2023-01-01T00:00:00Z","expires_at":"2023-01-01T01:00:00Z","invoice_url":"https://checkout.coinpayments.net/inv_1"}`))
	})

	inv, err := c.GetInvoice(context.Background(), "inv_1", true)
	require.NoError(t, err)
	assert.Equal(t, "/v2/merchant/invoices/inv_1", gotPath)
	assert.Equal(t, "include_payments=true", gotQuery)
	assert.True(t, inv.IsPaid())
}

func TestGetInvoicePaymentInfo(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"currency_id":"4","currency_symbol":"BTC","address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","amount":"0.00023","amount_f":0.00023,"qr_code_url":"https://example.com/qr.png","payment_url":"https://example.com/pay","timeout":3600,"required_confirmations":2}`))
	})

	info, err := c.GetInvoicePaymentInfo(context.Background(), "inv_1", "4")
	require.NoError(t, err)
	assert.Equal(t, "/v1/invoices/inv_1/payment-currencies/4", gotPath)
	assert.Equal(t, uint32(2), info.RequiredConfirmations)
}

func TestGetInvoicePaymentStatus(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"currency_id":"4","amount_paid":"0.00023","amount_paid_f":0.00023,"amount_received":"0.00023","amount_received_f":0.00023,"confirmations":1,"required_confirmations":2,"status":"pending","last_updated":"2023-01-01T00:10:00Z"}`))
	})

	status, err := c.GetInvoicePaymentStatus(context.Background(), "inv_1", "4")
	require.NoError(t, err)
	assert.Equal(t, "/v1/invoices/inv_1/payment-currencies/4/status", gotPath)
	assert.Equal(t, PaymentStatusPending, status.Status)
}

func TestGetInvoicePayoutsAndHistory(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		switch r.URL.Path {
		case "/v2/merchant/invoices/inv_1/payouts":
			w.Write([]byte(`{"payouts":[{"id":"p1","invoice_id":"inv_1","amount":"10","amount_f":10,"currency":"USD","destination_address":"addr","status":"completed","created_at":"2023-01-01T00:00:00Z"}]}`))
		default:
			w.Write([]byte(`{"history":[{"id":"h1","invoice_id":"inv_1","event_type":"paymentReceived","description":"payment received","created_at":"2023-01-01T00:00:00Z"}]}`))
		}
	})

	payouts, err := c.GetInvoicePayouts(context.Background(), "inv_1")
	require.NoError(t, err)
	require.Len(t, payouts.Payouts, 1)
	assert.Equal(t, PayoutStatusCompleted, payouts.Payouts[0].Status)

	history, err := c.GetInvoiceHistory(context.Background(), "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "/v2/merchant/invoices/inv_1/history", gotPath)
	require.Len(t, history.History, 1)
	assert.Equal(t, InvoiceEventPaymentReceived, history.History[0].EventType)
}

func TestInvoiceRequestBuilder(t *testing.T) {
	name := "Jane Doe"
	sku := "SKU-001"
	request := NewCreateInvoiceRequest("100.00", "USD", "Payment for services").
		WithInvoiceNumber("INV-123").
		WithBuyer("customer@example.com", &name).
		WithItem("Product A", &sku).
		ExpiresInMinutes(30).
		AutoAccept(false)

	assert.Equal(t, "100.00", request.Amount)
	assert.Equal(t, "INV-123", *request.InvoiceNumber)
	assert.Equal(t, "customer@example.com", *request.BuyerEmail)
	assert.Equal(t, "Jane Doe", *request.BuyerName)
	assert.Equal(t, "Product A", *request.ItemName)
	assert.Equal(t, "SKU-001", *request.ItemNumber)
	assert.Equal(t, uint32(1800), *request.ExpiresIn)
	assert.False(t, *request.AutoAcceptPayments)
}

func TestInvoicePredicates(t *testing.T) {
	assert.True(t, testInvoice("i1", InvoiceStatusPaid, 10).IsPaid())
	assert.True(t, testInvoice("i2", InvoiceStatusCompleted, 10).IsPaid())
	assert.False(t, testInvoice("i3", InvoiceStatusUnpaid, 10).IsPaid())

	assert.True(t, testInvoice("i4", InvoiceStatusUnpaid, 10).IsActive())
	assert.True(t, testInvoice("i5", InvoiceStatusPending, 10).IsActive())
	assert.False(t, testInvoice("i6", InvoiceStatusCancelled, 10).IsActive())

	assert.True(t, testInvoice("i7", InvoiceStatusTimedOut, 10).IsExpired())
	assert.True(t, testInvoice("i8", InvoiceStatusCancelled, 10).IsCancelled())
}

func TestInvoiceHelpers(t *testing.T) {
	invoices := []Invoice{
		*testInvoice("inv1", InvoiceStatusPaid, 10.0),
		*testInvoice("inv2", InvoiceStatusUnpaid, 20.0),
		*testInvoice("inv3", InvoiceStatusPaid, 15.0),
	}

	paid := FilterInvoicesByStatus(invoices, InvoiceStatusPaid)
	assert.Len(t, paid, 2)

	assert.InDelta(t, 45.0, TotalInvoiceAmount(invoices), 1e-9)

	found := FindInvoiceByNumber(invoices, "INV-001")
	require.NotNil(t, found)
	assert.Equal(t, "inv1", found.ID)

	assert.Nil(t, FindInvoiceByNumber(invoices, "INV-999"))
}

func TestFilterInvoicesByDateRange(t *testing.T) {
	early := testInvoice("inv1", InvoiceStatusPaid, 10)
	early.CreatedAt = "2023-01-15T00:00:00Z"
	late := testInvoice("inv2", InvoiceStatusPaid, 10)
	late.CreatedAt = "2023-03-15T00:00:00Z"

	inRange := FilterInvoicesByDateRange([]Invoice{*early, *late}, "2023-01-01T00:00:00Z", "2023-02-01T00:00:00Z")
	require.Len(t, inRange, 1)
	assert.Equal(t, "inv1", inRange[0].ID)
}
