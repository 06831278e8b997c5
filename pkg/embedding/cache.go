package embedding

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider memoizes successful embeddings per query text, so
// repeated and paginated searches for the same phrase hit the provider
// once. Failures are not cached; the next request retries the provider.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
}

func NewCachedProvider(inner Provider, ttl time.Duration) Provider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (p *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, found := p.cache.Get(text); found {
		return cached.([]float32), nil
	}

	vec, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	p.cache.SetDefault(text, vec)
	return vec, nil
}
