package services

import (
	"context"
	"fmt"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type cacheService struct {
	results   ports.ResultsService
	cacheRepo ports.ResultsCacheRepository
}

func NewCacheService(results ports.ResultsService, cacheRepo ports.ResultsCacheRepository) ports.CacheService {
	return &cacheService{
		results:   results,
		cacheRepo: cacheRepo,
	}
}

// RefreshResultsCache recomputes the aggregate and stores it. The cache is
// advisory: the live reduce remains the source of truth.
func (s *cacheService) RefreshResultsCache(ctx context.Context) error {
	results, err := s.results.Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("failed to aggregate responses: %w", err)
	}

	if err := s.cacheRepo.Upsert(ctx, results); err != nil {
		return fmt.Errorf("failed to store results cache: %w", err)
	}

	return nil
}

func (s *cacheService) CachedResults(ctx context.Context) (*domain.ResultsCache, error) {
	return s.cacheRepo.Get(ctx)
}
