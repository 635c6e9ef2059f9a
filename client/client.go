package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/session"
)

// TokenProvider supplies the persisted bearer credential. Absence of a
// token (session.ErrNoSession) is not an error at this layer; login and
// registration legitimately run unauthenticated.
type TokenProvider interface {
	Load() (string, error)
}

// Client talks to the remote banking service. It is the client-side
// counterpart of a repository: every method is one call against the
// wire API, with no business logic of its own.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

// New creates a Client for the given base URL, e.g.
// "http://localhost:8000/api/v1". No timeout is configured; the
// transport default applies and callers bound calls via context.
func New(baseURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// do performs one request. The payload, when non-nil, is sent as JSON;
// the response body is decoded into out when non-nil. Non-2xx responses
// become *common.APIError carrying whatever detail the body held.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("could not encode request payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Load()
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if err != nil && err != session.ErrNoSession {
		logger.Log.WithError(err).Warn("Could not read session token, sending request unauthenticated")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("could not decode response from %s: %w", path, err)
		}
	}
	return nil
}

// decodeError extracts the server's structured {detail} body. A body
// that cannot be decoded yields an APIError with empty detail, which the
// caller classifies as an unusable response.
func decodeError(resp *http.Response) error {
	apiErr := &common.APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		logger.Log.WithField("status_code", resp.StatusCode).
			Debug("Error response carried no decodable detail")
	}
	return apiErr
}
