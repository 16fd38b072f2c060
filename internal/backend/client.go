// Package backend implements the repository interfaces against the
// managed Wavegram backend's PostgREST-style HTTP interface. All durable
// social state lives there; this client only reads and writes it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twcoffee/wavegram/internal/repository"
)

const restPrefix = "/rest/v1/"

// TokenProvider supplies the current session token for request auth. When
// nil, or when it returns an empty string, the anon key is used instead.
type TokenProvider func() string

// Client is the shared HTTP transport for all table repositories.
type Client struct {
	baseURL string
	apiKey  string
	token   TokenProvider
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a backend client.
func NewClient(baseURL, apiKey string, token TokenProvider, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, table string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, restPrefix+table, params, nil, out)
}

func (c *Client) insert(ctx context.Context, table string, body any) error {
	return c.do(ctx, http.MethodPost, restPrefix+table, nil, body, nil)
}

func (c *Client) patch(ctx context.Context, table string, params url.Values, body any) error {
	return c.do(ctx, http.MethodPatch, restPrefix+table, params, body, nil)
}

func (c *Client) remove(ctx context.Context, table string, params url.Values) error {
	return c.do(ctx, http.MethodDelete, restPrefix+table, params, nil, nil)
}

func (c *Client) rpc(ctx context.Context, fn string, body any) error {
	return c.do(ctx, http.MethodPost, restPrefix+"rpc/"+fn, nil, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) bearer() string {
	if c.token != nil {
		if token := c.token(); token != "" {
			return token
		}
	}
	return c.apiKey
}

func (c *Client) statusError(method, path string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s %s: %w: %s", method, path, repository.ErrUnauthorized, strings.TrimSpace(string(detail)))
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, repository.ErrNotFound)
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
}

// eq builds a PostgREST equality filter value.
func eq(value string) string {
	return "eq." + value
}

// in builds a PostgREST membership filter value. Callers must never pass
// an empty id set: "in.()" matches nothing the caller meant to match.
func in(ids []string) string {
	return "in.(" + strings.Join(ids, ",") + ")"
}
