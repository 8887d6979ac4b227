package coinpayments

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResponseDirectPayload(t *testing.T) {
	body := []byte(`{"message":"pong","timestamp":"2023-06-15T12:30:45.123Z","version":"1.0"}`)

	resp, err := handleResponse[*PingResponse](http.StatusOK, body)
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Message)
	assert.Equal(t, "1.0", resp.Version)
}

func TestHandleResponseEnvelopeData(t *testing.T) {
	body := []byte(`{"data":{"message":"pong","timestamp":"2023-06-15T12:30:45.123Z","version":"1.0"}}`)

	resp, err := handleResponse[*PingResponse](http.StatusOK, body)
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Message)
}

func TestHandleResponseEnvelopeError(t *testing.T) {
	body := []byte(`{"error":{"code":"bad","message":"something went wrong"}}`)

	_, err := handleResponse[*PingResponse](http.StatusOK, body)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad", apiErr.Code)
	assert.Equal(t, "something went wrong", apiErr.Message)
	assert.Zero(t, apiErr.StatusCode)
}

func TestHandleResponseEmptyEnvelope(t *testing.T) {
	body := []byte(`{"data":null}`)

	_, err := handleResponse[*PingResponse](http.StatusOK, body)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestHandleResponseNullBody(t *testing.T) {
	// A 2xx with a body of JSON null must never surface as a nil success.
	resp, err := handleResponse[*PingResponse](http.StatusOK, []byte(`null`))
	require.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, resp)

	infos, err := handleResponse[[]ConsolidationInfo](http.StatusOK, []byte(`null`))
	require.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, infos)
}

func TestHandleResponseUnmatchedShape(t *testing.T) {
	// Matches neither the payload nor the envelope; success status must not
	// be mistaken for a zero-valued result.
	body := []byte(`{"unexpected_field":42}`)

	_, err := handleResponse[*PingResponse](http.StatusOK, body)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Body, "unexpected_field")
}

func TestHandleResponseArrayPayload(t *testing.T) {
	body := []byte(`[{"id":"c1","wallet_label":"main","currency_id":"4","source_addresses":["a"],"target_address":"b","amount":"1","amount_f":1,"fee":"0.1","fee_f":0.1,"status":"completed","created_at":"2023-01-01T00:00:00Z"}]`)

	infos, err := handleResponse[[]ConsolidationInfo](http.StatusOK, body)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, ConsolidationCompleted, infos[0].Status)
}

func TestStatusErrorMapping(t *testing.T) {
	_, err := handleResponse[*PingResponse](http.StatusUnauthorized, []byte(`{}`))
	assert.ErrorIs(t, err, ErrAuthentication)

	_, err = handleResponse[*PingResponse](http.StatusNotFound, []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = handleResponse[*PingResponse](http.StatusTooManyRequests, []byte(`{}`))
	assert.ErrorIs(t, err, ErrRateLimit)
}

func TestStatusErrorGenericAPIError(t *testing.T) {
	body := []byte(`{"error":{"code":"internal","message":"server exploded"}}`)

	_, err := handleResponse[*PingResponse](http.StatusInternalServerError, body)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "server exploded", apiErr.Message)
}

func TestInsufficientFundsMatching(t *testing.T) {
	err := &APIError{Code: "insufficient_funds", Message: "balance too low"}
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	other := &APIError{Code: "other", Message: "nope"}
	assert.NotErrorIs(t, other, ErrInsufficientFunds)
}

func TestExtractAPIError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    string
		wantMessage string
	}{
		{"string error", `{"error":"plain failure"}`, "", "plain failure"},
		{"object error", `{"error":{"code":"bad_request","message":"invalid input"}}`, "bad_request", "invalid input"},
		{"message field", `{"message":"top level message"}`, "", "top level message"},
		{"raw fallback", `not even json`, "", "not even json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := extractAPIError([]byte(tt.body))
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestHandleNoContent(t *testing.T) {
	assert.NoError(t, handleNoContent(http.StatusOK, nil))
	assert.NoError(t, handleNoContent(http.StatusNoContent, []byte("")))
	assert.NoError(t, handleNoContent(http.StatusOK, []byte(`{"data":{"ok":true}}`)))

	err := handleNoContent(http.StatusOK, []byte(`{"error":{"code":"late","message":"failed after all"}}`))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "late", apiErr.Code)

	assert.ErrorIs(t, handleNoContent(http.StatusNotFound, []byte(`{}`)), ErrNotFound)
}

func TestBodySnippetTruncation(t *testing.T) {
	long := make([]byte, maxSnippetLen*2)
	for i := range long {
		long[i] = 'x'
	}
	snippet := bodySnippet(long)
	assert.Len(t, snippet, maxSnippetLen+3)
	assert.Contains(t, snippet, "...")

	short := []byte("short body")
	assert.Equal(t, "short body", bodySnippet(short))
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	_, err := decodeStrict[PingResponse]([]byte(`{"message":"pong","extra":true}`))
	require.Error(t, err)

	v, err := decodeStrict[PingResponse]([]byte(`{"message":"pong"}`))
	require.NoError(t, err)
	assert.Equal(t, "pong", v.Message)
}

func TestEnvelopeErrorDetailsPreserved(t *testing.T) {
	body := []byte(`{"error":{"code":"validation","message":"bad fields","details":{"field":"amount"}}}`)

	_, err := handleResponse[*PingResponse](http.StatusOK, body)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)

	var details map[string]string
	require.NoError(t, json.Unmarshal(apiErr.Details, &details))
	assert.Equal(t, "amount", details["field"])
}
