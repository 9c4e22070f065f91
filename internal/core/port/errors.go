package port

import "errors"

// Ledger rejections. Each is reported to the caller as is so the UI can
// render a specific message; none of them is transient.
var (
	ErrNotFound           = errors.New("not found")
	ErrSelfVisitForbidden = errors.New("visiting your own campaign is not allowed")
	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrCampaignExhausted  = errors.New("campaign budget is exhausted")
	ErrAttemptCapReached  = errors.New("visit attempt cap reached for this campaign")
)

// ErrTransactionFailure means the atomic write could not complete and was
// rolled back in full. Callers may resubmit.
var ErrTransactionFailure = errors.New("transaction failed")

var (
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientCredits   = errors.New("insufficient credits")
	ErrCampaignLimitReached  = errors.New("campaign limit reached for role")
	ErrVisitAlreadyCompleted = errors.New("visit already completed")
	ErrAnalysisUnavailable   = errors.New("fraud analysis unavailable")
)

// IsRejection reports whether err is a business rule rejection rather than
// an infrastructure failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrSelfVisitForbidden,
		ErrCampaignInactive,
		ErrCampaignExhausted,
		ErrAttemptCapReached,
		ErrForbidden,
		ErrInvalidInput,
		ErrInsufficientCredits,
		ErrCampaignLimitReached,
		ErrVisitAlreadyCompleted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
