package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type responseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) ports.ResponseRepository {
	return &responseRepository{
		db: db,
	}
}

func (r *responseRepository) Save(ctx context.Context, response *domain.Response) error {
	query := `
		INSERT INTO responses (id, presidential_candidate, key_issues, age_group, region, gender, ip_hash, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.ExecContext(ctx, query,
		response.ID,
		response.Candidate,
		pq.Array(response.KeyIssues),
		response.Demographics.AgeGroup,
		response.Demographics.Region,
		response.Demographics.Gender,
		response.IPHash,
		response.Fingerprint,
		response.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyParticipated
		}
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

func (r *responseRepository) HasParticipated(ctx context.Context, ipHash string) (bool, error) {
	query := `SELECT 1 FROM responses WHERE ip_hash = $1 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, ipHash).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing response: %w", err)
	}
	return true, nil
}

func (r *responseRepository) GetAll(ctx context.Context) ([]*domain.Response, error) {
	query := `
		SELECT id, presidential_candidate, key_issues, age_group, region, gender, ip_hash, fingerprint, created_at
		FROM responses
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all responses: %w", err)
	}
	defer rows.Close()

	var responses []*domain.Response
	for rows.Next() {
		var response domain.Response
		if err := rows.Scan(
			&response.ID,
			&response.Candidate,
			pq.Array(&response.KeyIssues),
			&response.Demographics.AgeGroup,
			&response.Demographics.Region,
			&response.Demographics.Gender,
			&response.IPHash,
			&response.Fingerprint,
			&response.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, &response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}
	return responses, nil
}

func (r *responseRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}

// 23505 is the Postgres unique_violation class. The unique index on ip_hash
// turns the insert itself into the duplicate check.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
