package services

import (
	"context"
	"fmt"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type resultsService struct {
	repo ports.ResponseRepository
}

func NewResultsService(repo ports.ResponseRepository) ports.ResultsService {
	return &resultsService{
		repo: repo,
	}
}

// Aggregate reduces the full response set into per-category counts in a
// single pass. The output is a point-in-time snapshot: a read failure yields
// no partial result.
func (s *resultsService) Aggregate(ctx context.Context) (*domain.AggregateResult, error) {
	responses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch responses: %w", err)
	}

	results := domain.NewAggregateResult()
	for _, response := range responses {
		results.CandidateCounts[response.Candidate]++
		for _, issue := range response.KeyIssues {
			results.IssueCounts[issue]++
		}
		results.Demographics.AgeGroups[response.Demographics.AgeGroup]++
		results.Demographics.Regions[response.Demographics.Region]++
		results.Demographics.Genders[response.Demographics.Gender]++
	}
	results.TotalResponses = int64(len(responses))

	return results, nil
}
