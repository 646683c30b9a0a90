package ports

import (
	"context"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
)

type ResponseRepository interface {
	// Save inserts a new response. The storage layer enforces identity-token
	// uniqueness: a second row for the same token fails with
	// domain.ErrAlreadyParticipated.
	Save(ctx context.Context, response *domain.Response) error
	HasParticipated(ctx context.Context, ipHash string) (bool, error)
	GetAll(ctx context.Context) ([]*domain.Response, error)
	CountAll(ctx context.Context) (int64, error)
}

type SubmissionInput struct {
	Candidate      string
	KeyIssues      []string
	Demographics   domain.Demographics
	Consent        bool
	RemoteIP       string
	UserAgent      string
	AcceptLanguage string
}

type SubmissionService interface {
	Submit(ctx context.Context, input SubmissionInput) (*domain.Response, error)
	// HasParticipated reports whether a response from this address is already
	// on record, so clients can short-circuit the form before submitting.
	HasParticipated(ctx context.Context, remoteIP string) (bool, error)
}
