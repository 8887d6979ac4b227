package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateHMACSignature computes an HMAC-SHA512 tag over data and returns it
// as lowercase hex. The key may be any length; HMAC hashes oversized keys
// down internally.
func GenerateHMACSignature(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateTimestamp returns the current unix time in seconds.
func GenerateTimestamp() int64 {
	return time.Now().Unix()
}

// GenerateNonce returns a unique nonce for API requests.
func GenerateNonce() string {
	return uuid.NewString()
}

// GenerateRandomString returns a random alphanumeric string of the given
// length, suitable for webhook secrets.
func GenerateRandomString(length int) string {
	var b strings.Builder
	for b.Len() < length {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return b.String()[:length]
}

// iso8601Millis is the timestamp layout the API signs and transmits:
// millisecond-precision UTC.
const iso8601Millis = "2006-01-02T15:04:05.000Z"

// TimestampToISO8601 formats a unix timestamp in the API's wire layout.
func TimestampToISO8601(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(iso8601Millis)
}

// FormatISO8601 formats a time in the API's wire layout.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(iso8601Millis)
}

// ISO8601ToTimestamp parses an ISO 8601 / RFC 3339 string to a unix timestamp.
func ISO8601ToTimestamp(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO 8601 date %q: %w", s, err)
	}
	return t.Unix(), nil
}
