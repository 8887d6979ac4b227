package coinpayments

import "encoding/json"

// envelope is the generic wrapper some endpoints respond with instead of the
// bare payload. The decoder only tries it when the direct shape fails.
type envelope[T any] struct {
	Data       *T                  `json:"data,omitempty"`
	Error      *apiErrorBody       `json:"error,omitempty"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// apiErrorBody is the error object carried inside the envelope.
type apiErrorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// PaginationMetadata is the page info the envelope may carry.
type PaginationMetadata struct {
	Page       uint32 `json:"page"`
	PerPage    uint32 `json:"per_page"`
	Total      uint32 `json:"total"`
	TotalPages uint32 `json:"total_pages"`
}

// ClientInfo describes the authenticated integration.
type ClientInfo struct {
	ClientID    string     `json:"client_id"`
	Name        string     `json:"name"`
	Permissions []string   `json:"permissions"`
	RateLimits  RateLimits `json:"rate_limits"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// RateLimits are the integration's request quotas.
type RateLimits struct {
	RequestsPerMinute uint32 `json:"requests_per_minute"`
	RequestsPerHour   uint32 `json:"requests_per_hour"`
	RequestsPerDay    uint32 `json:"requests_per_day"`
}

// PingResponse is the v1/ping payload.
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
