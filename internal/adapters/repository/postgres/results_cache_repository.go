package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type resultsCacheRepository struct {
	db *sql.DB
}

func NewResultsCacheRepository(db *sql.DB) ports.ResultsCacheRepository {
	return &resultsCacheRepository{
		db: db,
	}
}

// A single row (id = 1) holds the latest materialized aggregate.
func (r *resultsCacheRepository) Upsert(ctx context.Context, results *domain.AggregateResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	query := `
		INSERT INTO results_cache (id, results, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET results = EXCLUDED.results,
		    updated_at = NOW();
	`
	_, err = r.db.ExecContext(ctx, query, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert results cache: %w", err)
	}

	return nil
}

func (r *resultsCacheRepository) Get(ctx context.Context) (*domain.ResultsCache, error) {
	query := `SELECT results, updated_at FROM results_cache WHERE id = 1`

	var payload []byte
	var cache domain.ResultsCache
	err := r.db.QueryRowContext(ctx, query).Scan(&payload, &cache.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get results cache: %w", err)
	}

	cache.Results = domain.NewAggregateResult()
	if err := json.Unmarshal(payload, cache.Results); err != nil {
		return nil, fmt.Errorf("failed to decode cached results: %w", err)
	}

	return &cache, nil
}
