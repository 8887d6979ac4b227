package coinpayments

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/coinpayments/coinpayments-go/logging"
	"github.com/coinpayments/coinpayments-go/utils"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://a-api.coinpayments.net/api"

// Authentication header names shared by outbound requests and inbound
// webhooks.
const (
	HeaderClient    = "X-CoinPayments-Client"
	HeaderTimestamp = "X-CoinPayments-Timestamp"
	HeaderSignature = "X-CoinPayments-Signature"
)

// Client is a CoinPayments API client. All fields are fixed at construction,
// so a single Client is safe for concurrent use without locking.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	baseURL      string
	logger       *logging.Logger
	now          func() time.Time
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to tune timeouts or
// connection pooling.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API host, primarily for test harnesses.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithLogger replaces the default logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock overrides the timestamp source. Tests use this to sign with a
// fixed clock.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client with the given credential pair. The secret is used
// only as an HMAC key and never transmitted.
func New(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      DefaultBaseURL,
		logger:       logging.NewLogger(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromEnv builds a client from COINPAYMENTS_* environment variables or a
// .env file at path.
func NewFromEnv(path string, opts ...Option) (*Client, error) {
	cfg, err := utils.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if cfg.BaseURL != "" {
		opts = append([]Option{WithBaseURL(cfg.BaseURL)}, opts...)
	}

	return New(cfg.ClientID, cfg.ClientSecret, opts...), nil
}

// timestamp returns the current time in the wire layout the API signs over.
func (c *Client) timestamp() string {
	return utils.FormatISO8601(c.now())
}

// sign computes the request signature. The signed material is the exact
// concatenation clientID + timestamp + METHOD + endpoint + body with no
// separators; the body is appended only when non-empty.
func (c *Client) sign(timestamp, method, endpoint, body string) string {
	data := c.clientID + timestamp + strings.ToUpper(method) + endpoint
	if body != "" {
		data += body
	}
	return utils.GenerateHMACSignature(c.clientSecret, data)
}

// authHeaders builds the three authentication headers for one request.
func (c *Client) authHeaders(method, endpoint, body string) map[string]string {
	timestamp := c.timestamp()
	signature := c.sign(timestamp, method, endpoint, body)

	return map[string]string{
		HeaderClient:    c.clientID,
		HeaderTimestamp: timestamp,
		HeaderSignature: signature,
	}
}

// Ping tests API connectivity and authentication.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	return getRequest[*PingResponse](ctx, c, "v1/ping", nil)
}

// GetClientInfo returns information about the authenticated integration.
func (c *Client) GetClientInfo(ctx context.Context) (*ClientInfo, error) {
	return getRequest[*ClientInfo](ctx, c, "v1/client/info", nil)
}
