// Package ai forwards user prompts to an external completion API and returns
// the generated text.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vkotlyar/homesense/internal/common"
)

const defaultBaseURL = "https://ece140-wi25-api.frosty-sky-f43d.workers.dev/api/v1/ai/complete"

// emptyCompletion is returned when the upstream answers without a result.
const emptyCompletion = "No response found"

// Client calls the completion API. The zero value is not usable; construct
// with New.
type Client struct {
	httpc   *http.Client
	baseURL string
}

// Option adjusts a Client. Used by tests to point at local stand-ins.
type Option func(*Client)

// WithBaseURL overrides the upstream endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New constructs an AI client.
func New(opts ...Option) *Client {
	c := &Client{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type completeRequest struct {
	Prompt string `json:"prompt"`
}

type completeResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
}

// Complete sends a prompt on behalf of a user. The email and pid headers
// identify the caller to the upstream. A slow upstream yields
// common.ErrorUpstreamTimeout; other failures wrap common.ErrorUpstream.
func (c *Client) Complete(ctx context.Context, email, pid, prompt string) (string, error) {
	if prompt == "" {
		return "", common.ErrorInvalidRequest
	}

	body, err := json.Marshal(completeRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("email", email)
	req.Header.Set("pid", pid)

	resp, err := c.httpc.Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return "", fmt.Errorf("%w: %v", common.ErrorUpstreamTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", common.ErrorUpstream, resp.StatusCode)
	}

	var out completeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", common.ErrorUpstream, err)
	}
	if out.Result.Response == "" {
		return emptyCompletion, nil
	}
	return out.Result.Response, nil
}
