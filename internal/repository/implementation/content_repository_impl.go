package implementation

import (
	"context"
	"fmt"

	"kb-search-be/internal/repository/contract"
	"kb-search-be/pkg/search"
	"kb-search-be/pkg/search/predicate"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ContentRepositoryImpl is the one search engine shared by all four
// content domains, parameterized by the domain descriptor and a
// model-to-entity converter.
type ContentRepositoryImpl[M, E any] struct {
	db       *gorm.DB
	domain   search.Domain
	toEntity func(*M) *E
}

func NewContentRepository[M, E any](db *gorm.DB, domain search.Domain, toEntity func(*M) *E) contract.ContentRepository[E] {
	return &ContentRepositoryImpl[M, E]{
		db:       db,
		domain:   domain,
		toEntity: toEntity,
	}
}

// Search compiles the plan once and issues the count and page queries
// concurrently from that single snapshot. The page query projects the
// plan's score expression under the alias the ordering chain refers to.
func (r *ContentRepositoryImpl[M, E]) Search(ctx context.Context, plan *search.Plan, page, pageSize int) ([]*E, int64, error) {
	whereSQL, whereArgs := predicate.Compile(plan.Predicate)
	scoreSQL, scoreArgs := predicate.CompileExpr(plan.Score)

	var total int64
	var models []*M

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Table(r.domain.Table).
			Where(whereSQL, whereArgs...).
			Count(&total).Error
	})
	g.Go(func() error {
		sel := fmt.Sprintf("%s.*, (%s) AS %s", r.domain.Table, scoreSQL, search.ScoreColumn)
		return r.db.WithContext(gctx).
			Table(r.domain.Table).
			Select(sel, scoreArgs...).
			Where(whereSQL, whereArgs...).
			Order(plan.OrderSQL()).
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&models).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.toEntity(m)
	}
	return entities, total, nil
}
