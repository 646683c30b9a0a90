package domain

import (
	"time"

	"github.com/google/uuid"
)

type Demographics struct {
	AgeGroup string `json:"age_group"`
	Region   string `json:"region"`
	Gender   string `json:"gender"`
}

// Response is one participant's persisted submission. Rows are append-only:
// created once, never updated or deleted.
type Response struct {
	ID           uuid.UUID    `json:"id"`
	Candidate    string       `json:"presidential_candidate"`
	KeyIssues    []string     `json:"key_issues"`
	Demographics Demographics `json:"demographics"`
	IPHash       string       `json:"-"`
	Fingerprint  string       `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}

type DemographicCounts struct {
	AgeGroups map[string]int64 `json:"age_groups"`
	Regions   map[string]int64 `json:"regions"`
	Genders   map[string]int64 `json:"genders"`
}

// AggregateResult is a pure function of the current response set, recomputed
// per read. Only observed labels appear in the maps.
type AggregateResult struct {
	CandidateCounts map[string]int64  `json:"presidential_candidates"`
	IssueCounts     map[string]int64  `json:"key_issues"`
	Demographics    DemographicCounts `json:"demographics"`
	TotalResponses  int64             `json:"total_responses"`
}

func NewAggregateResult() *AggregateResult {
	return &AggregateResult{
		CandidateCounts: make(map[string]int64),
		IssueCounts:     make(map[string]int64),
		Demographics: DemographicCounts{
			AgeGroups: make(map[string]int64),
			Regions:   make(map[string]int64),
			Genders:   make(map[string]int64),
		},
	}
}

// ResultsCache holds the last materialized aggregate. Advisory only: any new
// Response invalidates it, the live reduce stays authoritative.
type ResultsCache struct {
	Results   *AggregateResult `json:"results"`
	UpdatedAt time.Time        `json:"updated_at"`
}
