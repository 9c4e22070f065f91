// Package fraud implements the advisory fraud heuristics shown on the admin
// dashboard. Every heuristic is a pure pass over a Dataset; passes are
// independent and a user may be flagged by several of them.
package fraud

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"traffic-exchange/internal/core/domain"
)

// Dataset is the bounded, recent window of rows the passes look at.
type Dataset struct {
	Visits       []domain.VisitActivity
	Profiles     []domain.Profile
	Transactions []domain.CreditTransaction
	Now          time.Time
}

// Pass is one heuristic.
type Pass struct {
	Category domain.FindingCategory
	Detect   func(ds Dataset) []domain.FraudFinding
}

// DefaultPasses is the heuristic set run by Analyze when no passes are given.
var DefaultPasses = []Pass{
	{Category: domain.CategoryRapidVisits, Detect: RapidVisits},
	{Category: domain.CategoryBotDuration, Detect: BotDuration},
	{Category: domain.CategorySelfVisit, Detect: SelfVisits},
	{Category: domain.CategoryNewAccountBalance, Detect: NewAccountHighBalance},
	{Category: domain.CategoryHighFailureRate, Detect: HighFailureRate},
	{Category: domain.CategoryRapidCredits, Detect: RapidCreditAccumulation},
}

// Analyze runs passes (DefaultPasses when none are given) over ds and
// returns the concatenated findings ranked by score, highest first.
func Analyze(ds Dataset, passes ...Pass) []domain.FraudFinding {
	if len(passes) == 0 {
		passes = DefaultPasses
	}
	if ds.Now.IsZero() {
		ds.Now = time.Now()
	}

	findings := make([]domain.FraudFinding, 0)
	for _, p := range passes {
		findings = append(findings, p.Detect(ds)...)
	}

	slices.SortStableFunc(findings, func(a, b domain.FraudFinding) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Severity.Rank(), a.Severity.Rank()); c != 0 {
			return c
		}
		if c := strings.Compare(a.UserID, b.UserID); c != 0 {
			return c
		}
		return strings.Compare(string(a.Category), string(b.Category))
	})
	return findings
}

// Summarize derives dashboard statistics from findings. AverageScore is
// rounded to one decimal and is 0 for an empty set.
func Summarize(findings []domain.FraudFinding, now time.Time) domain.FraudStats {
	stats := domain.FraudStats{TotalFindings: len(findings)}
	if len(findings) == 0 {
		return stats
	}

	cutoff := now.Add(-24 * time.Hour)
	var sum int
	for _, f := range findings {
		sum += f.Score
		switch f.Status {
		case domain.ReviewBlocked:
			if f.ReviewedAt != nil && !f.ReviewedAt.Before(cutoff) {
				stats.BlockedLast24h++
			}
		case domain.ReviewFalsePositive:
			stats.FalsePositives++
		}
	}
	stats.AverageScore = math.Round(float64(sum)/float64(len(findings))*10) / 10
	return stats
}

// ApplyReviews copies stored dispositions onto matching findings. Findings
// without a review are marked pending.
func ApplyReviews(findings []domain.FraudFinding, reviews []domain.FraudReview) {
	type key struct {
		user     string
		category domain.FindingCategory
	}
	byKey := make(map[key]domain.FraudReview, len(reviews))
	for _, r := range reviews {
		byKey[key{r.UserID, r.Category}] = r
	}
	for i := range findings {
		r, ok := byKey[key{findings[i].UserID, findings[i].Category}]
		if !ok {
			findings[i].Status = domain.ReviewPending
			findings[i].ReviewedAt = nil
			continue
		}
		reviewedAt := r.ReviewedAt
		findings[i].Status = r.Status
		findings[i].ReviewedAt = &reviewedAt
	}
}

func capScore(v int) int {
	return min(max(v, 0), 100)
}

func newFinding(ds Dataset, userID string, category domain.FindingCategory, severity domain.Severity, score int, description string) domain.FraudFinding {
	return domain.FraudFinding{
		UserID:      userID,
		Category:    category,
		Severity:    severity,
		Description: description,
		Score:       capScore(score),
		DetectedAt:  ds.Now,
		Status:      domain.ReviewPending,
	}
}

// visitsByVisitor groups visits per visitor and returns the visitor ids in
// sorted order so the passes are deterministic.
func visitsByVisitor(visits []domain.VisitActivity) ([]string, map[string][]domain.VisitActivity) {
	groups := make(map[string][]domain.VisitActivity)
	for _, v := range visits {
		groups[v.VisitorID] = append(groups[v.VisitorID], v)
	}
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, groups
}
