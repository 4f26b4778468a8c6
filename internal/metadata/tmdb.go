package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/aniren/internal/tmdb"
)

const (
	// Cache TTLs
	searchTTL         = 24 * time.Hour
	defaultDetailsTTL = 7 * 24 * time.Hour // 7 days
)

// Cache key prefixes
const (
	keyPrefixTMDBSearch = "tmdb:search:"
	keyPrefixTMDBTV     = "tmdb:tv:"
)

// TMDBService provides cached access to TMDB metadata.
type TMDBService struct {
	client     *tmdb.Client
	cache      *Cache
	detailsTTL time.Duration
	log        *slog.Logger
}

// NewTMDBService creates a new TMDB service.
// A non-positive detailsTTL falls back to seven days.
func NewTMDBService(client *tmdb.Client, cache *Cache, detailsTTL time.Duration, log *slog.Logger) *TMDBService {
	if detailsTTL <= 0 {
		detailsTTL = defaultDetailsTTL
	}
	return &TMDBService{
		client:     client,
		cache:      cache,
		detailsTTL: detailsTTL,
		log:        log,
	}
}

// SearchTV searches for TV series by name (cached).
func (s *TMDBService) SearchTV(ctx context.Context, query string) ([]tmdb.TVShow, error) {
	key := keyPrefixTMDBSearch + query

	// Check cache first
	data, found, err := s.cache.Get(ctx, key)
	if err != nil && s.log != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		var shows []tmdb.TVShow
		if err := json.Unmarshal(data, &shows); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for search", "query", query, "results", len(shows))
			}
			return shows, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached search results", "query", query)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for search, calling API", "query", query)
	}

	shows, err := s.client.SearchTV(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search tv: %w", err)
	}

	// Cache the results
	data, err = json.Marshal(shows)
	if err != nil {
		// Log but don't fail the operation
		if s.log != nil {
			s.log.Warn("failed to marshal search results for cache", "query", query, "error", err)
		}
		return shows, nil
	}

	if err := s.cache.Set(ctx, key, data, searchTTL); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache search results", "query", query, "error", err)
		}
	}

	return shows, nil
}

// GetTVDetails fetches series details, including seasons, by TMDB ID (cached).
func (s *TMDBService) GetTVDetails(ctx context.Context, id int) (*tmdb.TVDetails, error) {
	key := fmt.Sprintf("%s%d", keyPrefixTMDBTV, id)

	// Check cache first
	data, found, err := s.cache.Get(ctx, key)
	if err != nil && s.log != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		var details tmdb.TVDetails
		if err := json.Unmarshal(data, &details); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for tv details", "tmdb_id", id, "name", details.Name)
			}
			return &details, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached tv details", "tmdb_id", id)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for tv details, calling API", "tmdb_id", id)
	}

	details, err := s.client.GetTVDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tv details: %w", err)
	}

	// Cache the result
	data, err = json.Marshal(details)
	if err != nil {
		// Log but don't fail the operation
		if s.log != nil {
			s.log.Warn("failed to marshal tv details for cache", "tmdb_id", id, "error", err)
		}
		return details, nil
	}

	if err := s.cache.Set(ctx, key, data, s.detailsTTL); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache tv details", "tmdb_id", id, "error", err)
		}
	}

	return details, nil
}

// Invalidate removes cached details for a series.
func (s *TMDBService) Invalidate(ctx context.Context, id int) error {
	key := fmt.Sprintf("%s%d", keyPrefixTMDBTV, id)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate tv %d: %w", id, err)
	}
	if s.log != nil {
		s.log.Debug("invalidated tv details cache", "tmdb_id", id)
	}
	return nil
}
