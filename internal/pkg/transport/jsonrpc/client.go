// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP. Requests carry
// by-name (object) parameters and a UUID id; transient HTTP failures are
// retried by the underlying retryablehttp client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the server answered with a
	// JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned for non-200 HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// request is a JSON-RPC 2.0 request envelope.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// responseError is the JSON-RPC error object.
type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// response is a JSON-RPC 2.0 response envelope.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *responseError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the JSON-RPC error carried by the response, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client calls remote JSON-RPC methods.
type Client interface {
	// Fetch calls method with params (an object, or nil for none) and returns
	// the raw result.
	Fetch(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client is the default Client over a retryablehttp.Client.
type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		JsonRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}
	return data.Result, nil
}

// NewClient returns a Client posting to providerEndpoint through httpClient.
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
