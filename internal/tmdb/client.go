package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "zh-CN"
)

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("series not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TMDB API v3 client scoped to the TV endpoints.
type Client struct {
	apiKey     string
	language   string
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

// WithLanguage sets the language for localized titles. The default is
// zh-CN, matching the fansub releases this tool is aimed at.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// New creates a new TMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		language: defaultLanguage,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs one API request with the key and language attached.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// SearchTV searches for TV series by name.
func (c *Client) SearchTV(ctx context.Context, query string) ([]TVShow, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("query", query)
	resp, err := c.get(ctx, "/search/tv", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("search completed", "query", query, "results", len(searchResp.Results), "duration_ms", time.Since(start).Milliseconds())
	}

	return searchResp.Results, nil
}

// GetTVDetails fetches series metadata, including the season list, by TMDB ID.
func (c *Client) GetTVDetails(ctx context.Context, id int) (*TVDetails, error) {
	start := time.Now()

	resp, err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		if c.log != nil && errors.Is(err, ErrNotFound) {
			c.log.Debug("series not found", "id", id)
		}
		return nil, err
	}

	var details TVDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("decode details response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("fetched series", "id", id, "name", details.Name, "seasons", details.NumberOfSeasons, "duration_ms", time.Since(start).Milliseconds())
	}

	return &details, nil
}

// checkResponse checks the HTTP response and returns the matching sentinel error.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}
}
