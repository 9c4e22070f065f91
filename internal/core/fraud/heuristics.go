package fraud

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"traffic-exchange/internal/core/domain"
)

const (
	rapidWindow          = time.Hour
	rapidVisitThreshold  = 10
	rapidVisitCritical   = 20
	botDurationSeconds   = 5
	botShortShare        = 0.8
	selfVisitScore       = 95
	newAccountAge        = 24 * time.Hour
	newAccountBalance    = 100
	failureRateThreshold = 0.7
	rapidCreditThreshold = 50
)

// RapidVisits flags visitors with more than 10 visits in the trailing hour.
func RapidVisits(ds Dataset) []domain.FraudFinding {
	cutoff := ds.Now.Add(-rapidWindow)
	ids, groups := visitsByVisitor(ds.Visits)

	var out []domain.FraudFinding
	for _, id := range ids {
		count := 0
		for _, v := range groups[id] {
			if !v.StartedAt.Before(cutoff) {
				count++
			}
		}
		if count <= rapidVisitThreshold {
			continue
		}
		severity := domain.SeverityMedium
		if count > rapidVisitCritical {
			severity = domain.SeverityCritical
		}
		out = append(out, newFinding(ds, id, domain.CategoryRapidVisits, severity, count*5,
			fmt.Sprintf("%d visits in the last hour", count)))
	}
	return out
}

// BotDuration flags visitors for whom at least 80% of completed visits
// lasted under 5 seconds. Visits without a recorded duration are ignored.
func BotDuration(ds Dataset) []domain.FraudFinding {
	ids, groups := visitsByVisitor(ds.Visits)

	var out []domain.FraudFinding
	for _, id := range ids {
		measured, short := 0, 0
		for _, v := range groups[id] {
			if v.DurationSeconds == nil {
				continue
			}
			measured++
			if *v.DurationSeconds < botDurationSeconds {
				short++
			}
		}
		if measured == 0 || float64(short) < botShortShare*float64(measured) {
			continue
		}
		out = append(out, newFinding(ds, id, domain.CategoryBotDuration, domain.SeverityMedium, short*10,
			fmt.Sprintf("%d of %d visits lasted under %ds", short, measured, botDurationSeconds)))
	}
	return out
}

// SelfVisits flags visitors with recorded visits to their own campaigns.
// The ledger refuses such visits, so any hit means bad historical data or a
// bypassed check.
func SelfVisits(ds Dataset) []domain.FraudFinding {
	ids, groups := visitsByVisitor(ds.Visits)

	var out []domain.FraudFinding
	for _, id := range ids {
		count := 0
		for _, v := range groups[id] {
			if v.CampaignOwnerID != "" && v.CampaignOwnerID == v.VisitorID {
				count++
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, newFinding(ds, id, domain.CategorySelfVisit, domain.SeverityCritical, selfVisitScore,
			fmt.Sprintf("%d visits to own campaigns", count)))
	}
	return out
}

// NewAccountHighBalance flags profiles younger than a day holding more than
// 100 credits.
func NewAccountHighBalance(ds Dataset) []domain.FraudFinding {
	cutoff := ds.Now.Add(-newAccountAge)

	var out []domain.FraudFinding
	for _, p := range ds.Profiles {
		if p.CreatedAt.Before(cutoff) || p.CreditBalance <= newAccountBalance {
			continue
		}
		out = append(out, newFinding(ds, p.ID, domain.CategoryNewAccountBalance, domain.SeverityMedium,
			int(min(p.CreditBalance/10, 100)),
			fmt.Sprintf("account created %s ago holds %d credits", ds.Now.Sub(p.CreatedAt).Round(time.Minute), p.CreditBalance)))
	}
	slices.SortFunc(out, func(a, b domain.FraudFinding) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return out
}

// HighFailureRate flags visitors whose share of invalid visits exceeds 70%.
func HighFailureRate(ds Dataset) []domain.FraudFinding {
	ids, groups := visitsByVisitor(ds.Visits)

	var out []domain.FraudFinding
	for _, id := range ids {
		visits := groups[id]
		failed := 0
		for _, v := range visits {
			if !v.IsValid {
				failed++
			}
		}
		if float64(failed) <= failureRateThreshold*float64(len(visits)) {
			continue
		}
		out = append(out, newFinding(ds, id, domain.CategoryHighFailureRate, domain.SeverityMedium, failed*15,
			fmt.Sprintf("%d of %d visits invalid", failed, len(visits))))
	}
	return out
}

// RapidCreditAccumulation flags users who earned more than 50 credits in the
// trailing hour. Only positive transactions count.
func RapidCreditAccumulation(ds Dataset) []domain.FraudFinding {
	cutoff := ds.Now.Add(-rapidWindow)
	earned := make(map[string]int64)
	for _, tx := range ds.Transactions {
		if tx.Amount > 0 && !tx.CreatedAt.Before(cutoff) {
			earned[tx.UserID] += tx.Amount
		}
	}

	ids := make([]string, 0, len(earned))
	for id := range earned {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []domain.FraudFinding
	for _, id := range ids {
		total := earned[id]
		if total <= rapidCreditThreshold {
			continue
		}
		out = append(out, newFinding(ds, id, domain.CategoryRapidCredits, domain.SeverityCritical,
			int(min(total*2, 100)),
			fmt.Sprintf("%d credits earned in the last hour", total)))
	}
	return out
}
