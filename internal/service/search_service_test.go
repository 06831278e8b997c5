package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"kb-search-be/internal/dto"
	"kb-search-be/internal/entity"
	"kb-search-be/internal/mapper"
	"kb-search-be/internal/model"
	"kb-search-be/internal/pkg/serverutils"
	"kb-search-be/internal/repository/contract"
	"kb-search-be/pkg/search"
	"kb-search-be/pkg/search/predicate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	calls    int
	lastPlan *search.Plan
	lastPage int
	lastSize int
	rows     []*entity.ChatMessage
	total    int64
	err      error
}

func (f *fakeRepo) Search(ctx context.Context, plan *search.Plan, page, pageSize int) ([]*entity.ChatMessage, int64, error) {
	f.calls++
	f.lastPlan = plan
	f.lastPage = page
	f.lastSize = pageSize
	return f.rows, f.total, f.err
}

type fakeVersions struct {
	version *entity.SpecVersion
	err     error
	pattern string
}

func (f *fakeVersions) ResolveLatest(ctx context.Context, pattern string) (*entity.SpecVersion, error) {
	f.pattern = pattern
	return f.version, f.err
}

type fakeEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return f.vec, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestService(repo *fakeRepo, versions *fakeVersions, embedder *fakeEmbedder) ISearchService {
	return NewSearchService[entity.ChatMessage](
		model.ChatMessageDomain, repo, versions, embedder,
		mapper.ChatMessageToResult, nil, nopLogger{}, 0.8,
	)
}

func baseRequest(q string) *dto.SearchRequest {
	req := &dto.SearchRequest{Q: q}
	req.ApplyDefaults()
	return req
}

func TestSearchAssemblesResultPage(t *testing.T) {
	repo := &fakeRepo{
		rows: []*entity.ChatMessage{
			{Id: 1, Sender: "alice", Content: "Byzantine consensus protocol", SentAt: time.Unix(100, 0)},
		},
		total: 1,
	}
	svc := newTestService(repo, &fakeVersions{}, &fakeEmbedder{})

	resp, err := svc.Search(context.Background(), baseRequest("consensus"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Empty(t, resp.Error)
	require.Len(t, resp.Results, 1)
	row, ok := resp.Results[0].(*dto.ChatMessageResult)
	require.True(t, ok)
	assert.Equal(t, "Byzantine consensus protocol", row.Content)
}

func TestSearchPassesPaginationThrough(t *testing.T) {
	repo := &fakeRepo{rows: make([]*entity.ChatMessage, 5), total: 25}
	for i := range repo.rows {
		repo.rows[i] = &entity.ChatMessage{Id: int64(i)}
	}
	svc := newTestService(repo, &fakeVersions{}, &fakeEmbedder{})

	req := baseRequest("consensus")
	req.Page = 3
	req.PageSize = 10

	resp, err := svc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastPage)
	assert.Equal(t, 10, repo.lastSize)
	assert.Len(t, resp.Results, 5)
	assert.Equal(t, int64(25), resp.Total)
}

func TestSearchUnknownSpecVersionShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	versions := &fakeVersions{version: nil}
	svc := newTestService(repo, versions, &fakeEmbedder{})

	req := baseRequest("consensus")
	req.FilterSinceGp = "9.9.*"
	req.FilterFrom = "alice" // other filters must not change the outcome

	resp, err := svc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, int64(0), resp.Total)
	assert.Contains(t, resp.Error, "9.9.*")
	assert.Equal(t, 0, repo.calls, "main query must be skipped")
}

func TestSearchSinceGpResolvesToStartBound(t *testing.T) {
	publishedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	versions := &fakeVersions{version: &entity.SpecVersion{Version: "0.6.2", PublishedAt: publishedAt}}
	svc := newTestService(repo, versions, &fakeEmbedder{})

	req := baseRequest("consensus since_gp:0.6.*")
	req.FilterAfter = "2020-01-01" // since_gp overrides the explicit bound

	_, err := svc.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "0.6.*", versions.pattern)
	require.NotNil(t, repo.lastPlan)
	_, args := predicate.Compile(repo.lastPlan.Predicate)
	assert.Contains(t, args, publishedAt)
}

func TestSearchSemanticFallsBackOnEmbedderFailure(t *testing.T) {
	repo := &fakeRepo{
		rows:  []*entity.ChatMessage{{Id: 1, Content: "finality gadget"}},
		total: 1,
	}
	embedder := &fakeEmbedder{err: errors.New("provider unreachable")}
	svc := newTestService(repo, &fakeVersions{}, embedder)

	req := baseRequest("finality")
	req.SearchMode = "semantic"

	resp, err := svc.Search(context.Background(), req)

	require.NoError(t, err, "embedding failure must never surface")
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, 1, embedder.calls)

	// The executed plan is lexical, not vector-based.
	sql, _ := predicate.Compile(repo.lastPlan.Predicate)
	assert.NotContains(t, sql, "<=>")
	assert.Contains(t, sql, "ILIKE")
}

func TestSearchSemanticUsesEmbedding(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{vec: []float32{0.1, 0.2}}
	svc := newTestService(repo, &fakeVersions{}, embedder)

	req := baseRequest("finality")
	req.SearchMode = "semantic"

	_, err := svc.Search(context.Background(), req)

	require.NoError(t, err)
	sql, _ := predicate.Compile(repo.lastPlan.Predicate)
	assert.Contains(t, sql, "<=>")
}

func TestSearchInlineTokenOverridesExplicitParam(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVersions{}, &fakeEmbedder{})

	req := baseRequest("from:bob hello")
	req.FilterFrom = "alice"

	_, err := svc.Search(context.Background(), req)

	require.NoError(t, err)
	_, args := predicate.Compile(repo.lastPlan.Predicate)
	assert.Contains(t, args, "^bob")
	assert.NotContains(t, args, "^alice")
}

func TestSearchInvalidDateIsValidationError(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeVersions{}, &fakeEmbedder{})

	req := baseRequest("hello")
	req.FilterBefore = "not-a-date"

	_, err := svc.Search(context.Background(), req)

	require.Error(t, err)
	var validationErr *serverutils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

type fakeResultCache struct {
	store map[string][]byte
	keys  []string
}

func (f *fakeResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := f.store[key]
	return v, ok
}

func (f *fakeResultCache) Set(ctx context.Context, key string, value []byte) {
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = value
	f.keys = append(f.keys, key)
}

func newCachedTestService(repo contract.ContentRepository[entity.ChatMessage], embedder *fakeEmbedder, rc *fakeResultCache) ISearchService {
	return &searchService[entity.ChatMessage]{
		domain:      model.ChatMessageDomain,
		repo:        repo,
		versions:    &fakeVersions{},
		embedder:    embedder,
		assemble:    mapper.ChatMessageToResult,
		resultCache: rc,
		log:         nopLogger{},
		maxDistance: 0.8,
	}
}

func TestSearchServesRepeatedQueryFromCache(t *testing.T) {
	rc := &fakeResultCache{}
	repo := &fakeRepo{rows: []*entity.ChatMessage{{Id: 1, Content: "finality"}}, total: 1}
	svc := newCachedTestService(repo, &fakeEmbedder{}, rc)

	_, err := svc.Search(context.Background(), baseRequest("finality"))
	require.NoError(t, err)
	resp, err := svc.Search(context.Background(), baseRequest("finality"))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "repeat query must be a cache hit")
	assert.Equal(t, int64(1), resp.Total)
}

func TestSearchCacheKeySeparatesAmbiguousQueries(t *testing.T) {
	rc := &fakeResultCache{}
	repoA := &fakeRepo{rows: []*entity.ChatMessage{{Id: 1, Content: "a|b"}}, total: 1}
	svc := newCachedTestService(repoA, &fakeEmbedder{}, rc)

	// Phrase "a|b" with sender "c" and phrase "a" with sender "b|c"
	// compile to different predicates and must never share an entry.
	reqA := baseRequest("a|b")
	reqA.FilterFrom = "c"
	respA, err := svc.Search(context.Background(), reqA)
	require.NoError(t, err)
	require.Len(t, respA.Results, 1)

	repoB := &fakeRepo{}
	svc = newCachedTestService(repoB, &fakeEmbedder{}, rc)
	reqB := baseRequest("a")
	reqB.FilterFrom = "b|c"
	respB, err := svc.Search(context.Background(), reqB)
	require.NoError(t, err)

	assert.Equal(t, 1, repoB.calls, "second query must not reuse the first query's entry")
	assert.Empty(t, respB.Results)
	require.Len(t, rc.keys, 2)
	assert.NotEqual(t, rc.keys[0], rc.keys[1])
}

func TestSearchDegradedPageNotServedAfterProviderRecovers(t *testing.T) {
	rc := &fakeResultCache{}
	repo := &fakeRepo{rows: []*entity.ChatMessage{{Id: 1, Content: "finality gadget"}}, total: 1}
	embedder := &fakeEmbedder{err: errors.New("provider unreachable")}
	svc := newCachedTestService(repo, embedder, rc)

	req := baseRequest("finality")
	req.SearchMode = "semantic"

	_, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	sql, _ := predicate.Compile(repo.lastPlan.Predicate)
	assert.Contains(t, sql, "ILIKE")

	embedder.err = nil
	embedder.vec = []float32{0.1, 0.2}

	_, err = svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "degraded entry must not satisfy a semantic request")
	sql, _ = predicate.Compile(repo.lastPlan.Predicate)
	assert.Contains(t, sql, "<=>")
}

// slicingRepo serves deterministic pages from a fixed row set.
type slicingRepo struct {
	rows []*entity.ChatMessage
}

func (f *slicingRepo) Search(ctx context.Context, plan *search.Plan, page, pageSize int) ([]*entity.ChatMessage, int64, error) {
	start := (page - 1) * pageSize
	if start > len(f.rows) {
		start = len(f.rows)
	}
	end := start + pageSize
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[start:end], int64(len(f.rows)), nil
}

func TestSearchPageWalkReconstructsFullResultSet(t *testing.T) {
	const total = 23
	store := &slicingRepo{}
	for i := 0; i < total; i++ {
		store.rows = append(store.rows, &entity.ChatMessage{Id: int64(i), Content: "epoch boundary"})
	}
	svc := newCachedTestService(store, &fakeEmbedder{}, &fakeResultCache{})

	seen := map[int64]bool{}
	for page := 1; ; page++ {
		req := baseRequest("epoch")
		req.Page = page
		req.PageSize = 5

		resp, err := svc.Search(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(total), resp.Total)
		if len(resp.Results) == 0 {
			break
		}
		for _, r := range resp.Results {
			row, ok := r.(*dto.ChatMessageResult)
			require.True(t, ok)
			assert.False(t, seen[row.Id], "row %d returned twice", row.Id)
			seen[row.Id] = true
		}
	}
	assert.Len(t, seen, total)
}

func TestSearchRepositoryErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("store down")}
	svc := newTestService(repo, &fakeVersions{}, &fakeEmbedder{})

	_, err := svc.Search(context.Background(), baseRequest("hello"))

	require.Error(t, err)
}
