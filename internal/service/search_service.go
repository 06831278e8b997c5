package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"kb-search-be/internal/dto"
	"kb-search-be/internal/pkg/cache"
	"kb-search-be/internal/pkg/logger"
	"kb-search-be/internal/pkg/serverutils"
	"kb-search-be/internal/repository/contract"
	"kb-search-be/pkg/embedding"
	"kb-search-be/pkg/search"
)

// ISearchService handles one content domain's search requests.
type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

// resultCache is the subset of cache.ResultCache the service uses.
type resultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type searchService[E any] struct {
	domain      search.Domain
	repo        contract.ContentRepository[E]
	versions    contract.SpecVersionRepository
	embedder    embedding.Provider
	assemble    func(*E) any
	resultCache resultCache
	log         logger.ILogger
	maxDistance float64
}

func NewSearchService[E any](
	domain search.Domain,
	repo contract.ContentRepository[E],
	versions contract.SpecVersionRepository,
	embedder embedding.Provider,
	assemble func(*E) any,
	resultCache *cache.ResultCache,
	log logger.ILogger,
	maxDistance float64,
) ISearchService {
	return &searchService[E]{
		domain:      domain,
		repo:        repo,
		versions:    versions,
		embedder:    embedder,
		assemble:    assemble,
		resultCache: resultCache,
		log:         log,
		maxDistance: maxDistance,
	}
}

// Search runs the full pipeline: normalize the raw query, resolve the
// filters, build the mode-specific plan (downgrading semantic to fuzzy
// when the embedding provider fails) and execute count + page against
// the content store.
func (s *searchService[E]) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	parsed := search.ParseQuery(req.Q)

	// Inline tokens win over the explicit filter_* params.
	sender := firstNonEmpty(parsed.Get(search.FilterFrom), req.FilterFrom)
	sinceGp := firstNonEmpty(parsed.Get(search.FilterSinceGp), req.FilterSinceGp)

	before, err := parseDate(firstNonEmpty(parsed.Get(search.FilterBefore), req.FilterBefore))
	if err != nil {
		return nil, serverutils.NewValidationError(err)
	}
	after, err := parseDate(firstNonEmpty(parsed.Get(search.FilterAfter), req.FilterAfter))
	if err != nil {
		return nil, serverutils.NewValidationError(err)
	}

	// An unresolved since_gp version yields an empty, well-formed page
	// with an explanatory error string; the main query is skipped.
	if sinceGp != "" {
		version, err := s.versions.ResolveLatest(ctx, sinceGp)
		if err != nil {
			return nil, err
		}
		if version == nil {
			return &dto.SearchResponse{
				Results:  []any{},
				Total:    0,
				Page:     req.Page,
				PageSize: req.PageSize,
				Error:    fmt.Sprintf("unknown spec version: %s", sinceGp),
			}, nil
		}
		publishedAt := version.PublishedAt
		after = &publishedAt // overrides any explicit after bound
	}

	mode := search.Mode(req.SearchMode)
	var queryEmbedding []float32
	if mode == search.ModeSemantic {
		vec, err := s.embedder.Embed(ctx, parsed.Phrase)
		if err != nil {
			// Mode downgrade, not a retry: the user still gets a
			// lexical result page.
			s.log.Warn("search", "embedding provider failed, downgrading to lexical", map[string]interface{}{
				"domain": s.domain.Name,
				"error":  err.Error(),
			})
		} else {
			queryEmbedding = vec
		}
	}
	effectiveMode := mode
	if mode == search.ModeSemantic && queryEmbedding == nil {
		effectiveMode = search.ModeFuzzy
	}

	// Keying on the effective mode keeps a downgraded lexical page from
	// masking semantic results once the provider recovers.
	cacheKey := s.cacheKey(req, effectiveMode, parsed.Phrase, sender, sinceGp, before, after)
	if body, hit := s.resultCache.Get(ctx, cacheKey); hit {
		var cached dto.SearchResponse
		if err := json.Unmarshal(body, &cached); err == nil {
			return &cached, nil
		}
	}

	plan := search.BuildPlan(s.domain, parsed.Phrase, effectiveMode, queryEmbedding, search.Filters{
		SenderPrefix: sender,
		After:        after,
		Before:       before,
		ChannelID:    req.ChannelId,
		Site:         req.Site,
	}, s.maxDistance)

	rows, total, err := s.repo.Search(ctx, &plan, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	results := make([]any, 0, len(rows))
	for _, row := range rows {
		results = append(results, s.assemble(row))
	}

	resp := &dto.SearchResponse{
		Results:  results,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if body, err := json.Marshal(resp); err == nil {
		s.resultCache.Set(ctx, cacheKey, body)
	}
	return resp, nil
}

// cacheKey hashes the full request tuple; user text can never collide
// with the field boundaries of another query.
func (s *searchService[E]) cacheKey(req *dto.SearchRequest, mode search.Mode, phrase, sender, sinceGp string, before, after *time.Time) string {
	tuple, _ := json.Marshal([]string{
		s.domain.Name, string(mode), phrase, sender, sinceGp,
		formatTime(before), formatTime(after),
		req.ChannelId, req.Site,
		fmt.Sprintf("%d:%d", req.Page, req.PageSize),
	})
	sum := sha256.Sum256(tuple)
	return "search:" + s.domain.Name + ":" + hex.EncodeToString(sum[:])
}

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
