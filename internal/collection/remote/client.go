// Package remote is a collection provider backed by a QuantumLife server.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/server"
)

const defaultTimeout = 30 * time.Second

var ErrUnauthorized = errors.New("server rejected the API token")

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsURL reports whether s names an HTTP(S) server.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Init has nothing to create remotely; it checks the server is reachable.
func (c *Client) Init() error {
	return c.Load()
}

func (c *Client) Load() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil); err != nil {
		return fmt.Errorf("server %s not reachable: %w", c.baseURL, err)
	}
	return nil
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) GetConfigPath() string {
	return c.baseURL
}

func collectionPath(name string, id ...string) string {
	p := server.APIPrefix + "/" + url.PathEscape(name)
	for _, part := range id {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *Client) ListAll(ctx context.Context, name string, filter collection.Filter, opts collection.Options) (collection.Result, error) {
	q := url.Values{}
	for k, v := range filter {
		q.Set(k, fmt.Sprint(v))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	path := collectionPath(name)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res collection.Result
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return collection.Result{}, err
	}
	if res.Items == nil {
		res.Items = []collection.Document{}
	}
	return res, nil
}

func (c *Client) Create(ctx context.Context, name string, doc collection.Document) (collection.Document, error) {
	var out collection.Document
	if err := c.do(ctx, http.MethodPost, collectionPath(name), doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, name string, partial collection.Document) (collection.Document, error) {
	id := partial.ID()
	if id == "" {
		return nil, collection.ErrMissingID
	}
	var out collection.Document
	if err := c.do(ctx, http.MethodPatch, collectionPath(name, id), partial.Body(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, name string, id string) error {
	if id == "" {
		return collection.ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, collectionPath(name, id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns an error response back into the provider sentinels.
func decodeError(resp *http.Response) error {
	var body server.ErrorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(data))
		if body.Error == "" {
			body.Error = resp.Status
		}
	}

	var sentinel error
	switch body.Code {
	case server.CodeNotFound:
		sentinel = collection.ErrNotFound
	case server.CodeConflict:
		sentinel = collection.ErrConflict
	case server.CodeMissingID:
		sentinel = collection.ErrMissingID
	case server.CodeUnknownCollection:
		sentinel = collection.ErrUnknownCollection
	}
	if sentinel == nil && resp.StatusCode == http.StatusUnauthorized {
		sentinel = ErrUnauthorized
	}
	if sentinel != nil {
		return fmt.Errorf("%w (server: %s)", sentinel, body.Error)
	}
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
}
