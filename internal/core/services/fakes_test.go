package services

import (
	"context"
	"errors"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

// memResponseRepository mimics the postgres adapter, including the
// uniqueness constraint on the identity token.
type memResponseRepository struct {
	responses []*domain.Response
	failAll   bool
}

var errStoreDown = errors.New("store unreachable")

func (r *memResponseRepository) Save(_ context.Context, response *domain.Response) error {
	if r.failAll {
		return errStoreDown
	}
	for _, existing := range r.responses {
		if existing.IPHash == response.IPHash {
			return domain.ErrAlreadyParticipated
		}
	}
	r.responses = append(r.responses, response)
	return nil
}

func (r *memResponseRepository) HasParticipated(_ context.Context, ipHash string) (bool, error) {
	if r.failAll {
		return false, errStoreDown
	}
	for _, existing := range r.responses {
		if existing.IPHash == ipHash {
			return true, nil
		}
	}
	return false, nil
}

func (r *memResponseRepository) GetAll(_ context.Context) ([]*domain.Response, error) {
	if r.failAll {
		return nil, errStoreDown
	}
	return r.responses, nil
}

func (r *memResponseRepository) CountAll(_ context.Context) (int64, error) {
	if r.failAll {
		return 0, errStoreDown
	}
	return int64(len(r.responses)), nil
}

type memCacheRepository struct {
	cache *domain.ResultsCache
}

func (r *memCacheRepository) Upsert(_ context.Context, results *domain.AggregateResult) error {
	r.cache = &domain.ResultsCache{Results: results}
	return nil
}

func (r *memCacheRepository) Get(_ context.Context) (*domain.ResultsCache, error) {
	return r.cache, nil
}

type recordingPublisher struct {
	events []ports.Event
}

func (p *recordingPublisher) Publish(event ports.Event) {
	p.events = append(p.events, event)
}
