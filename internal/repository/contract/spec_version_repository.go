package contract

import (
	"context"

	"kb-search-be/internal/entity"
)

// SpecVersionRepository resolves a version-label pattern to a release.
// ResolveLatest returns (nil, nil) when no version matches; that is a
// data condition for the caller, not an error.
type SpecVersionRepository interface {
	ResolveLatest(ctx context.Context, pattern string) (*entity.SpecVersion, error)
}
