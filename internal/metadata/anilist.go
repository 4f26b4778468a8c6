package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/aniren/pkg/anilist"
)

// Cache key prefixes
const (
	keyPrefixAniListSearch = "anilist:search:"
	keyPrefixAniListAnime  = "anilist:anime:"
)

// AniListService provides cached access to AniList metadata.
type AniListService struct {
	client     *anilist.Client
	cache      *Cache
	detailsTTL time.Duration
	log        *slog.Logger
}

// NewAniListService creates a new AniList service.
// A non-positive detailsTTL falls back to seven days.
func NewAniListService(client *anilist.Client, cache *Cache, detailsTTL time.Duration, log *slog.Logger) *AniListService {
	if detailsTTL <= 0 {
		detailsTTL = defaultDetailsTTL
	}
	return &AniListService{
		client:     client,
		cache:      cache,
		detailsTTL: detailsTTL,
		log:        log,
	}
}

// SearchAnime searches for anime by name (cached).
func (s *AniListService) SearchAnime(ctx context.Context, query string) ([]anilist.Media, error) {
	key := keyPrefixAniListSearch + query

	// Check cache first
	data, found, err := s.cache.Get(ctx, key)
	if err != nil && s.log != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		var media []anilist.Media
		if err := json.Unmarshal(data, &media); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for anime search", "query", query, "results", len(media))
			}
			return media, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached anime search results", "query", query)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for anime search, calling API", "query", query)
	}

	media, err := s.client.SearchAnime(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search anime: %w", err)
	}

	// Cache the results
	data, err = json.Marshal(media)
	if err != nil {
		// Log but don't fail the operation
		if s.log != nil {
			s.log.Warn("failed to marshal anime search results for cache", "query", query, "error", err)
		}
		return media, nil
	}

	if err := s.cache.Set(ctx, key, data, searchTTL); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache anime search results", "query", query, "error", err)
		}
	}

	return media, nil
}

// GetAnime fetches anime metadata by AniList ID (cached).
func (s *AniListService) GetAnime(ctx context.Context, id int) (*anilist.Media, error) {
	key := fmt.Sprintf("%s%d", keyPrefixAniListAnime, id)

	// Check cache first
	data, found, err := s.cache.Get(ctx, key)
	if err != nil && s.log != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		var media anilist.Media
		if err := json.Unmarshal(data, &media); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for anime", "anilist_id", id)
			}
			return &media, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached anime", "anilist_id", id)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for anime, calling API", "anilist_id", id)
	}

	media, err := s.client.GetAnime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get anime: %w", err)
	}

	// Cache the result
	data, err = json.Marshal(media)
	if err != nil {
		// Log but don't fail the operation
		if s.log != nil {
			s.log.Warn("failed to marshal anime for cache", "anilist_id", id, "error", err)
		}
		return media, nil
	}

	if err := s.cache.Set(ctx, key, data, s.detailsTTL); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache anime", "anilist_id", id, "error", err)
		}
	}

	return media, nil
}
