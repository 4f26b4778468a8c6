package metadata

import (
	"context"

	"github.com/vmunix/aniren/internal/tmdb"
)

//go:generate mockgen -source=provider.go -destination=mocks/provider.go -package=mocks

// Provider is the metadata surface the rename flow depends on.
type Provider interface {
	SearchTV(ctx context.Context, query string) ([]tmdb.TVShow, error)
	GetTVDetails(ctx context.Context, id int) (*tmdb.TVDetails, error)
}
