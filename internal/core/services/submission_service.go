package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/identity"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type submissionService struct {
	repo      ports.ResponseRepository
	hasher    *identity.Hasher
	publisher ports.Publisher
}

func NewSubmissionService(repo ports.ResponseRepository, hasher *identity.Hasher, publisher ports.Publisher) ports.SubmissionService {
	return &submissionService{
		repo:      repo,
		hasher:    hasher,
		publisher: publisher,
	}
}

func (s *submissionService) Submit(ctx context.Context, input ports.SubmissionInput) (*domain.Response, error) {
	if !input.Consent {
		return nil, domain.ErrConsentRequired
	}

	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	response := &domain.Response{
		ID:           uuid.New(),
		Candidate:    input.Candidate,
		KeyIssues:    dedupeIssues(input.KeyIssues),
		Demographics: input.Demographics,
		IPHash:       s.hasher.TokenForIP(input.RemoteIP),
		Fingerprint:  identity.Fingerprint(input.UserAgent, input.AcceptLanguage),
		CreatedAt:    time.Now().UTC(),
	}

	// The insert is the duplicate check: the unique index on the identity
	// token makes concurrent same-address submissions race safely, with
	// exactly one winner.
	if err := s.repo.Save(ctx, response); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish(ports.Event{Name: "refresh"})
	}

	return response, nil
}

func (s *submissionService) HasParticipated(ctx context.Context, remoteIP string) (bool, error) {
	return s.repo.HasParticipated(ctx, s.hasher.TokenForIP(remoteIP))
}

func validateSubmission(input ports.SubmissionInput) error {
	var fields []string

	if input.Candidate == "" {
		fields = append(fields, "presidential_candidate")
	}
	if len(input.KeyIssues) == 0 {
		fields = append(fields, "key_issues")
	} else {
		for _, issue := range input.KeyIssues {
			if !domain.ValidKeyIssue(issue) {
				fields = append(fields, "key_issues")
				break
			}
		}
	}

	switch {
	case input.Demographics.AgeGroup == "":
		fields = append(fields, "demographics.age_group")
	case !domain.ValidAgeGroup(input.Demographics.AgeGroup):
		fields = append(fields, "demographics.age_group")
	}
	switch {
	case input.Demographics.Region == "":
		fields = append(fields, "demographics.region")
	case !domain.ValidRegion(input.Demographics.Region):
		fields = append(fields, "demographics.region")
	}
	switch {
	case input.Demographics.Gender == "":
		fields = append(fields, "demographics.gender")
	case !domain.ValidGender(input.Demographics.Gender):
		fields = append(fields, "demographics.gender")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// dedupeIssues collapses repeated selections so one submission cannot
// double-count an issue. Order of first appearance is preserved.
func dedupeIssues(issues []string) []string {
	seen := make(map[string]struct{}, len(issues))
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}
	return out
}
