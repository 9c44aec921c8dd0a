package repository

import (
	"context"

	"farecast-service/internal/domain/entity"
)

// FacetCache caches computed facet summaries per normalized query key. A miss
// is (nil, nil); any error degrades to a recompute at the call site.
type FacetCache interface {
	GetFacets(ctx context.Context, key string) (*entity.FacetSummary, error)
	SetFacets(ctx context.Context, key string, facets *entity.FacetSummary) error
}
