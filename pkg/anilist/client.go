package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://graphql.anilist.co"

// Sentinel errors for AniList API responses.
var (
	ErrNotFound    = errors.New("anime not found")
	ErrRateLimited = errors.New("rate limited: too many requests")
)

const searchQuery = `
query ($search: String) {
  Page(page: 1, perPage: 10) {
    media(search: $search, type: ANIME, sort: POPULARITY_DESC) {
      id
      title { romaji english native }
      startDate { year month day }
      format
      episodes
    }
  }
}`

const getQuery = `
query ($id: Int) {
  Media(id: $id, type: ANIME) {
    id
    title { romaji english native }
    startDate { year month day }
    format
    episodes
  }
}`

// Client is an AniList GraphQL client. The API is public and needs no key.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "anilist")
	}
}

// New creates a new AniList client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// post executes one GraphQL request against the API.
func (c *Client) post(ctx context.Context, query string, variables map[string]any) (*graphqlResponse, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &gqlResp, nil
}

// SearchAnime searches for anime by name, most popular first.
func (c *Client) SearchAnime(ctx context.Context, query string) ([]Media, error) {
	start := time.Now()

	resp, err := c.post(ctx, searchQuery, map[string]any{"search": query})
	if err != nil {
		return nil, err
	}

	var results []Media
	if resp.Data.Page != nil {
		results = resp.Data.Page.Media
	}

	if c.log != nil {
		c.log.Debug("search completed", "query", query, "results", len(results), "duration_ms", time.Since(start).Milliseconds())
	}

	return results, nil
}

// GetAnime fetches one anime by AniList ID.
func (c *Client) GetAnime(ctx context.Context, id int) (*Media, error) {
	start := time.Now()

	resp, err := c.post(ctx, getQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if resp.Data.Media == nil {
		return nil, ErrNotFound
	}

	if c.log != nil {
		c.log.Debug("fetched anime", "id", id, "title", resp.Data.Media.DisplayTitle(false), "duration_ms", time.Since(start).Milliseconds())
	}

	return resp.Data.Media, nil
}

// checkResponse checks the HTTP response and returns the matching sentinel error.
// AniList signals a missing Media lookup with a plain 404.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("AniList API error: %s", resp.Status)
	}
}
