package domain

import "time"

// FindingCategory names the heuristic that produced a finding.
type FindingCategory string

const (
	CategoryRapidVisits       FindingCategory = "rapid_visits"
	CategoryBotDuration       FindingCategory = "bot_duration"
	CategorySelfVisit         FindingCategory = "self_visit"
	CategoryNewAccountBalance FindingCategory = "new_account_high_balance"
	CategoryHighFailureRate   FindingCategory = "high_failure_rate"
	CategoryRapidCredits      FindingCategory = "rapid_credit_accumulation"
)

// Valid reports whether c names one of the known heuristics.
func (c FindingCategory) Valid() bool {
	switch c {
	case CategoryRapidVisits, CategoryBotDuration, CategorySelfVisit,
		CategoryNewAccountBalance, CategoryHighFailureRate, CategoryRapidCredits:
		return true
	}
	return false
}

// Severity ranks how urgently a finding needs review.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities, higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	}
	return 0
}

// ReviewStatus is the admin disposition of a finding.
type ReviewStatus string

const (
	ReviewPending       ReviewStatus = "pending"
	ReviewBlocked       ReviewStatus = "blocked"
	ReviewFalsePositive ReviewStatus = "false_positive"
)

// Valid reports whether s is a known disposition.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewBlocked, ReviewFalsePositive:
		return true
	}
	return false
}

// FraudFinding is an advisory flag raised for admin review. Score is in
// [0,100]. Status and ReviewedAt come from a stored FraudReview, if any.
type FraudFinding struct {
	UserID      string
	Category    FindingCategory
	Severity    Severity
	Description string
	Score       int
	DetectedAt  time.Time
	Status      ReviewStatus
	ReviewedAt  *time.Time
}

// FraudReview is an admin disposition for a (user, category) pair.
type FraudReview struct {
	UserID     string
	Category   FindingCategory
	Status     ReviewStatus
	Note       string
	ReviewedBy string
	ReviewedAt time.Time
}

// FraudStats summarizes a set of findings.
type FraudStats struct {
	TotalFindings  int
	BlockedLast24h int
	FalsePositives int
	AverageScore   float64
}
