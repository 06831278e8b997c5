package contract

import (
	"context"

	"kb-search-be/pkg/search"
)

// ContentRepository executes a search plan against one content domain.
// Search returns the page rows and the total match count; both queries
// run against the same compiled predicate so the count can never drift
// from the visible pages.
type ContentRepository[E any] interface {
	Search(ctx context.Context, plan *search.Plan, page, pageSize int) ([]*E, int64, error)
}
