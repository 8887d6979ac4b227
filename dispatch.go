package coinpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/coinpayments/coinpayments-go/utils"
)

// getRequest performs a signed GET and decodes the result as T.
func getRequest[T any](ctx context.Context, c *Client, endpoint string, params []utils.QueryParam) (T, error) {
	status, body, err := c.do(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return handleResponse[T](status, body)
}

// postRequest performs a signed POST with a JSON body and decodes the result
// as T.
func postRequest[T any, B any](ctx context.Context, c *Client, endpoint string, reqBody B) (T, error) {
	var zero T
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return zero, &ParseError{Err: err, Body: "<request body>"}
	}

	status, body, err := c.do(ctx, http.MethodPost, endpoint, nil, payload)
	if err != nil {
		return zero, err
	}
	return handleResponse[T](status, body)
}

// putRequest performs a signed PUT with a JSON body and decodes the result
// as T.
func putRequest[T any, B any](ctx context.Context, c *Client, endpoint string, reqBody B) (T, error) {
	var zero T
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return zero, &ParseError{Err: err, Body: "<request body>"}
	}

	status, body, err := c.do(ctx, http.MethodPut, endpoint, nil, payload)
	if err != nil {
		return zero, err
	}
	return handleResponse[T](status, body)
}

// deleteRequest performs a signed DELETE and decodes the result as T.
func deleteRequest[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	status, body, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return handleResponse[T](status, body)
}

// postNoContent performs a signed POST for endpoints whose success response
// carries no payload of interest.
func postNoContent[B any](ctx context.Context, c *Client, endpoint string, reqBody B) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return &ParseError{Err: err, Body: "<request body>"}
	}
	status, body, err := c.do(ctx, http.MethodPost, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return handleNoContent(status, body)
}

// putNoContent performs a signed PUT for endpoints whose success response
// carries no payload of interest.
func putNoContent[B any](ctx context.Context, c *Client, endpoint string, reqBody B) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return &ParseError{Err: err, Body: "<request body>"}
	}
	status, body, err := c.do(ctx, http.MethodPut, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return handleNoContent(status, body)
}

// do sends one authenticated request and returns the raw status and body.
// Transport failures come back as *NetworkError; the caller never sees a
// panic or an unwrapped transport error.
func (c *Client) do(ctx context.Context, method, endpoint string, params []utils.QueryParam, payload []byte) (int, []byte, error) {
	// The signature covers the endpoint path only, not the query string.
	headers := c.authHeaders(method, endpoint, string(payload))

	url := c.baseURL + "/" + endpoint + utils.BuildQueryString(params)

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, &NetworkError{Op: method, URL: url, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.WithField("method", method).WithField("url", url).Debug("External Request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Op: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Op: method, URL: url, Err: err}
	}

	fields := map[string]interface{}{
		"method": method,
		"url":    url,
		"status": resp.StatusCode,
	}
	if rl := utils.ExtractRateLimitInfo(resp.Header); rl != nil {
		fields["rate_limit_left"] = rl.CallsLeft
	}
	c.logger.WithFields(fields).Debug("External Response")

	return resp.StatusCode, body, nil
}

// handleResponse converts a raw response into a typed result: status mapping
// first, then a strict decode of the expected shape, then the envelope
// fallback.
func handleResponse[T any](status int, body []byte) (T, error) {
	var zero T

	if err := statusError(status, body); err != nil {
		return zero, err
	}

	// Strict decode so an envelope (or anything else) never passes as a
	// zero-valued direct payload.
	v, parseErr := decodeStrict[T](body)
	if parseErr == nil {
		// A body of JSON null decodes into a nil pointer or slice; that is
		// never a usable result, so it takes the envelope path instead.
		if !isNilResult(v) {
			return v, nil
		}
		parseErr = errors.New("null payload")
	}

	env, envErr := decodeStrict[envelope[T]](body)
	if envErr != nil {
		return zero, &ParseError{Err: parseErr, Body: bodySnippet(body)}
	}

	if env.Error != nil {
		return zero, &APIError{
			Code:    env.Error.Code,
			Message: env.Error.Message,
			Details: env.Error.Details,
		}
	}
	if env.Data != nil {
		return *env.Data, nil
	}
	return zero, ErrNoData
}

func isNilResult(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// handleNoContent accepts any success status; it still surfaces an error
// envelope the server may have smuggled into a 200.
func handleNoContent(status int, body []byte) error {
	if err := statusError(status, body); err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return &APIError{
			Code:    env.Error.Code,
			Message: env.Error.Message,
			Details: env.Error.Details,
		}
	}
	return nil
}

// statusError maps non-success statuses to the error taxonomy.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	code, message := extractAPIError(body)

	switch status {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimit
	default:
		return &APIError{StatusCode: status, Code: code, Message: message}
	}
}

// decodeStrict unmarshals data into T rejecting unknown fields, which is how
// the dual-shape negotiation tells a direct payload from the envelope.
func decodeStrict[T any](data []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// extractAPIError pulls an error code and message out of a failure body,
// falling back to the raw text.
func extractAPIError(body []byte) (code, message string) {
	var probe struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return "", string(body)
	}

	if len(probe.Error) > 0 && !bytes.Equal(probe.Error, []byte("null")) {
		var s string
		if json.Unmarshal(probe.Error, &s) == nil {
			return "", s
		}
		var obj apiErrorBody
		if json.Unmarshal(probe.Error, &obj) == nil && obj.Message != "" {
			return obj.Code, obj.Message
		}
	}
	if probe.Message != "" {
		return "", probe.Message
	}
	return "", string(body)
}

const maxSnippetLen = 512

func bodySnippet(body []byte) string {
	if len(body) > maxSnippetLen {
		return string(body[:maxSnippetLen]) + "..."
	}
	return string(body)
}
