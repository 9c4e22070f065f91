package fraud

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-exchange/internal/core/domain"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func visitAt(visitor, owner string, ago time.Duration) domain.VisitActivity {
	return domain.VisitActivity{
		Visit: domain.Visit{
			ID:         fmt.Sprintf("%s-%d", visitor, ago),
			VisitorID:  visitor,
			CampaignID: "camp-" + owner,
			IsValid:    true,
			StartedAt:  now.Add(-ago),
		},
		CampaignOwnerID: owner,
	}
}

func withDuration(v domain.VisitActivity, seconds int) domain.VisitActivity {
	v.DurationSeconds = &seconds
	completed := v.StartedAt.Add(time.Duration(seconds) * time.Second)
	v.CompletedAt = &completed
	return v
}

func findByCategory(findings []domain.FraudFinding, c domain.FindingCategory) []domain.FraudFinding {
	var out []domain.FraudFinding
	for _, f := range findings {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// TestRapidVisitsCapped covers 25 visits to one campaign in the last hour.
func TestRapidVisitsCapped(t *testing.T) {
	var visits []domain.VisitActivity
	for i := 0; i < 25; i++ {
		visits = append(visits, visitAt("v1", "owner", time.Duration(i+1)*time.Minute))
	}

	findings := RapidVisits(Dataset{Visits: visits, Now: now})
	require.Len(t, findings, 1)
	assert.Equal(t, "v1", findings[0].UserID)
	assert.Equal(t, domain.SeverityCritical, findings[0].Severity)
	assert.Equal(t, 100, findings[0].Score)
}

func TestRapidVisitsThresholds(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		want     bool
		severity domain.Severity
		score    int
	}{
		{"at threshold", 10, false, "", 0},
		{"just above", 11, true, domain.SeverityMedium, 55},
		{"twenty is medium", 20, true, domain.SeverityMedium, 100},
		{"above twenty is critical", 21, true, domain.SeverityCritical, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var visits []domain.VisitActivity
			for i := 0; i < tc.count; i++ {
				visits = append(visits, visitAt("v1", "owner", time.Duration(i+1)*time.Minute/2))
			}
			findings := RapidVisits(Dataset{Visits: visits, Now: now})
			if !tc.want {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tc.severity, findings[0].Severity)
			assert.Equal(t, tc.score, findings[0].Score)
		})
	}
}

func TestRapidVisitsIgnoresOlderVisits(t *testing.T) {
	var visits []domain.VisitActivity
	for i := 0; i < 30; i++ {
		visits = append(visits, visitAt("v1", "owner", 2*time.Hour+time.Duration(i)*time.Minute))
	}
	assert.Empty(t, RapidVisits(Dataset{Visits: visits, Now: now}))
}

func TestBotDuration(t *testing.T) {
	visits := []domain.VisitActivity{
		withDuration(visitAt("bot", "o", 3*time.Hour), 1),
		withDuration(visitAt("bot", "o", 4*time.Hour), 2),
		withDuration(visitAt("bot", "o", 5*time.Hour), 3),
		withDuration(visitAt("bot", "o", 6*time.Hour), 4),
		withDuration(visitAt("bot", "o", 7*time.Hour), 30),
		withDuration(visitAt("human", "o", 3*time.Hour), 45),
		withDuration(visitAt("human", "o", 4*time.Hour), 2),
		visitAt("bot", "o", 8*time.Hour),
	}

	findings := BotDuration(Dataset{Visits: visits, Now: now})
	require.Len(t, findings, 1)
	assert.Equal(t, "bot", findings[0].UserID)
	assert.Equal(t, domain.SeverityMedium, findings[0].Severity)
	assert.Equal(t, 40, findings[0].Score)
}

func TestSelfVisitsOneFindingPerVisitor(t *testing.T) {
	visits := []domain.VisitActivity{
		visitAt("cheat", "cheat", time.Hour),
		visitAt("cheat", "cheat", 2*time.Hour),
		visitAt("honest", "other", time.Hour),
	}

	findings := SelfVisits(Dataset{Visits: visits, Now: now})
	require.Len(t, findings, 1)
	assert.Equal(t, "cheat", findings[0].UserID)
	assert.Equal(t, domain.SeverityCritical, findings[0].Severity)
	assert.Equal(t, 95, findings[0].Score)
}

// TestNewAccountHighBalance covers a profile created an hour ago with 500 credits.
func TestNewAccountHighBalance(t *testing.T) {
	profiles := []domain.Profile{
		{ID: "fresh", CreditBalance: 500, CreatedAt: now.Add(-time.Hour)},
		{ID: "old", CreditBalance: 5000, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "poor", CreditBalance: 100, CreatedAt: now.Add(-time.Hour)},
		{ID: "whale", CreditBalance: 9000, CreatedAt: now.Add(-time.Minute)},
	}

	findings := NewAccountHighBalance(Dataset{Profiles: profiles, Now: now})
	require.Len(t, findings, 2)
	assert.Equal(t, "fresh", findings[0].UserID)
	assert.Equal(t, 50, findings[0].Score)
	assert.Equal(t, domain.SeverityMedium, findings[0].Severity)
	assert.Equal(t, "whale", findings[1].UserID)
	assert.Equal(t, 100, findings[1].Score)
}

func TestHighFailureRate(t *testing.T) {
	var visits []domain.VisitActivity
	for i := 0; i < 10; i++ {
		v := visitAt("flaky", "o", time.Duration(i+1)*time.Hour)
		v.IsValid = i >= 8
		visits = append(visits, v)
	}
	for i := 0; i < 10; i++ {
		v := visitAt("border", "o", time.Duration(i+1)*time.Hour)
		v.IsValid = i >= 7
		visits = append(visits, v)
	}

	findings := HighFailureRate(Dataset{Visits: visits, Now: now})
	require.Len(t, findings, 1)
	assert.Equal(t, "flaky", findings[0].UserID)
	assert.Equal(t, 100, findings[0].Score)
}

func TestRapidCreditAccumulation(t *testing.T) {
	txs := []domain.CreditTransaction{
		{UserID: "farmer", Amount: 30, CreatedAt: now.Add(-10 * time.Minute)},
		{UserID: "farmer", Amount: 25, CreatedAt: now.Add(-20 * time.Minute)},
		{UserID: "farmer", Amount: -40, CreatedAt: now.Add(-5 * time.Minute)},
		{UserID: "slow", Amount: 60, CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: "edge", Amount: 50, CreatedAt: now.Add(-time.Minute)},
	}

	findings := RapidCreditAccumulation(Dataset{Transactions: txs, Now: now})
	require.Len(t, findings, 1)
	assert.Equal(t, "farmer", findings[0].UserID)
	assert.Equal(t, domain.SeverityCritical, findings[0].Severity)
	assert.Equal(t, 100, findings[0].Score)
}

func TestAnalyzeRanksAndStacksFindings(t *testing.T) {
	var visits []domain.VisitActivity
	for i := 0; i < 12; i++ {
		visits = append(visits, visitAt("busy", "o", time.Duration(i+1)*time.Minute))
	}
	visits = append(visits, visitAt("cheat", "cheat", time.Hour*3))

	ds := Dataset{
		Visits:   visits,
		Profiles: []domain.Profile{{ID: "busy", CreditBalance: 200, CreatedAt: now.Add(-time.Hour)}},
		Now:      now,
	}

	findings := Analyze(ds)
	require.Len(t, findings, 3)
	assert.Equal(t, domain.CategorySelfVisit, findings[0].Category)
	assert.Equal(t, domain.CategoryRapidVisits, findings[1].Category)
	assert.Equal(t, 60, findings[1].Score)
	assert.Equal(t, domain.CategoryNewAccountBalance, findings[2].Category)
	assert.Equal(t, 20, findings[2].Score)
	assert.Len(t, findByCategory(findings, domain.CategoryRapidVisits), 1)
	for _, f := range findings {
		assert.Equal(t, domain.ReviewPending, f.Status)
		assert.Equal(t, now, f.DetectedAt)
	}
}

func TestAnalyzeWithCustomPasses(t *testing.T) {
	called := false
	pass := Pass{Category: "custom", Detect: func(ds Dataset) []domain.FraudFinding {
		called = true
		return []domain.FraudFinding{{UserID: "x", Score: 1}}
	}}

	findings := Analyze(Dataset{Now: now}, pass)
	assert.True(t, called)
	assert.Len(t, findings, 1)
}

func TestSummarize(t *testing.T) {
	recent := now.Add(-time.Hour)
	stale := now.Add(-48 * time.Hour)
	findings := []domain.FraudFinding{
		{Score: 100, Status: domain.ReviewBlocked, ReviewedAt: &recent},
		{Score: 50, Status: domain.ReviewBlocked, ReviewedAt: &stale},
		{Score: 95, Status: domain.ReviewFalsePositive, ReviewedAt: &recent},
		{Score: 20, Status: domain.ReviewPending},
	}

	stats := Summarize(findings, now)
	assert.Equal(t, 4, stats.TotalFindings)
	assert.Equal(t, 1, stats.BlockedLast24h)
	assert.Equal(t, 1, stats.FalsePositives)
	assert.Equal(t, 66.3, stats.AverageScore)

	assert.Equal(t, domain.FraudStats{}, Summarize(nil, now))
}

func TestApplyReviews(t *testing.T) {
	findings := []domain.FraudFinding{
		{UserID: "a", Category: domain.CategorySelfVisit},
		{UserID: "a", Category: domain.CategoryRapidVisits},
	}
	reviews := []domain.FraudReview{
		{UserID: "a", Category: domain.CategorySelfVisit, Status: domain.ReviewBlocked, ReviewedAt: now},
	}

	ApplyReviews(findings, reviews)
	assert.Equal(t, domain.ReviewBlocked, findings[0].Status)
	require.NotNil(t, findings[0].ReviewedAt)
	assert.Equal(t, now, *findings[0].ReviewedAt)
	assert.Equal(t, domain.ReviewPending, findings[1].Status)
	assert.Nil(t, findings[1].ReviewedAt)
}
