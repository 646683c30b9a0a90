package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	repo "github.com/SchoolKitHub/nakedtruth-polling-app/internal/adapters/repository/postgres"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/config"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/identity"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/services"
)

// Seeds the database with weighted dummy responses for development and demo
// environments. Goes through the real submission service so every row obeys
// validation and the uniqueness constraint.

type weighted struct {
	value  string
	weight float64
}

var candidateWeights = []weighted{
	{"APC (All Progressives Congress)", 0.25},
	{"PDP (Peoples Democratic Party)", 0.23},
	{"LP (Labour Party)", 0.20},
	{"NNPP (New Nigeria Peoples Party)", 0.15},
	{"ADC (African Democratic Congress)", 0.07},
	{"SDP (Social Democratic Party)", 0.04},
	{"YPP (Young Progressives Party)", 0.03},
	{"APGA (All Progressives Grand Alliance)", 0.03},
}

var issueWeights = []weighted{
	{"Economy & Job Creation", 0.30},
	{"Security & Safety", 0.22},
	{"Corruption & Governance", 0.15},
	{"Healthcare System", 0.10},
	{"Education Reform", 0.08},
	{"Infrastructure Development", 0.07},
	{"Youth Empowerment", 0.05},
	{"Agricultural Development", 0.03},
}

var ageWeights = []weighted{
	{"18-24", 0.25}, {"25-34", 0.30}, {"35-44", 0.20},
	{"45-54", 0.15}, {"55-64", 0.07}, {"65+", 0.03},
}

var regionWeights = []weighted{
	{"North West", 0.20}, {"South West", 0.18}, {"North Central", 0.15},
	{"South East", 0.15}, {"South South", 0.16}, {"North East", 0.16},
}

var genderWeights = []weighted{
	{"Male", 0.52}, {"Female", 0.46}, {"Prefer not to say", 0.02},
}

func main() {
	cfg := config.Load()

	var count int
	flag.IntVar(&count, "count", 100, "number of responses to generate")
	flag.Parse()

	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to reach database")
	}

	responseRepo := repo.NewResponseRepository(db)
	hasher := identity.NewHasher(cfg.IdentitySalt)
	submissionSvc := services.NewSubmissionService(responseRepo, hasher, nil)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	inserted := 0
	for i := 0; i < count; i++ {
		input := ports.SubmissionInput{
			Candidate:    pick(rng, candidateWeights),
			KeyIssues:    pickIssues(rng),
			Demographics: domain.Demographics{AgeGroup: pick(rng, ageWeights), Region: pick(rng, regionWeights), Gender: pick(rng, genderWeights)},
			Consent:      true,
			RemoteIP:     randomIP(rng),
			UserAgent:    "nakedtruth-seed/1.0",
		}

		if _, err := submissionSvc.Submit(ctx, input); err != nil {
			// Random addresses can collide on the identity token; skip and move on.
			if errors.Is(err, domain.ErrAlreadyParticipated) {
				continue
			}
			logrus.WithError(err).Fatal("failed to insert dummy response")
		}
		inserted++
	}

	logrus.WithField("inserted", inserted).Info("seeding complete")
}

func pick(rng *rand.Rand, items []weighted) string {
	random := rng.Float64()
	cumulative := 0.0
	for _, item := range items {
		cumulative += item.weight
		if random <= cumulative {
			return item.value
		}
	}
	return items[0].value
}

// pickIssues selects 2-4 distinct issues biased towards top priorities.
func pickIssues(rng *rand.Rand) []string {
	n := rng.Intn(3) + 2
	seen := make(map[string]struct{}, n)
	var issues []string
	for len(issues) < n {
		issue := pick(rng, issueWeights)
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		issues = append(issues, issue)
	}
	return issues
}

func randomIP(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d", rng.Intn(255), rng.Intn(255), rng.Intn(255), rng.Intn(255))
}
