package utils

import (
	"net/http"
	"strconv"
)

// RateLimitInfo summarizes the X-RateLimit-* response headers.
type RateLimitInfo struct {
	CallsMade uint32 `json:"calls_made"`
	CallsLeft uint32 `json:"calls_left"`
	ResetTime int64  `json:"reset_time"`
}

// ExtractRateLimitInfo parses the rate limit headers from a response. Returns
// nil when any of the three headers is missing or malformed.
func ExtractRateLimitInfo(headers http.Header) *RateLimitInfo {
	remaining, err := strconv.ParseUint(headers.Get("X-RateLimit-Remaining"), 10, 32)
	if err != nil {
		return nil
	}
	limit, err := strconv.ParseUint(headers.Get("X-RateLimit-Limit"), 10, 32)
	if err != nil {
		return nil
	}
	reset, err := strconv.ParseInt(headers.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return nil
	}

	return &RateLimitInfo{
		CallsMade: uint32(limit - remaining),
		CallsLeft: uint32(remaining),
		ResetTime: reset,
	}
}
