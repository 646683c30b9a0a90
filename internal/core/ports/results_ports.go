package ports

import (
	"context"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
)

type ResultsCacheRepository interface {
	Upsert(ctx context.Context, results *domain.AggregateResult) error
	Get(ctx context.Context) (*domain.ResultsCache, error)
}

type ResultsService interface {
	Aggregate(ctx context.Context) (*domain.AggregateResult, error)
}

type CacheService interface {
	RefreshResultsCache(ctx context.Context) error
	CachedResults(ctx context.Context) (*domain.ResultsCache, error)
}
