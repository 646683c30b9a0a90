package http

import (
	"net/http"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
)

type CandidateHandler struct{}

func NewCandidateHandler() *CandidateHandler {
	return &CandidateHandler{}
}

type pollOptionsResponse struct {
	Candidates []domain.Candidate `json:"candidates"`
	KeyIssues  []string           `json:"key_issues"`
	AgeGroups  []string           `json:"age_groups"`
	Regions    []string           `json:"regions"`
	Genders    []string           `json:"genders"`
}

// GetCandidates serves the static catalog plus the fixed form enumerations
// so clients render the ballot from the API.
func (h *CandidateHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, pollOptionsResponse{
		Candidates: domain.Candidates,
		KeyIssues:  domain.KeyIssues,
		AgeGroups:  domain.AgeGroups,
		Regions:    domain.Regions,
		Genders:    domain.Genders,
	})
}
