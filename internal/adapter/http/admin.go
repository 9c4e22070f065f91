package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

// handleFraudReport returns the advisory fraud report. If any of the reads
// behind it fails the whole report is unavailable (503).
func (h *Handler) handleFraudReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.fraud.Analyze(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toFraudReportResponse(report))
}

func (h *Handler) handleReviewFinding(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	rev, err := h.fraud.ReviewFinding(r.Context(), callerID(r), port.ReviewFindingReq{
		UserID:   req.UserID,
		Category: domain.FindingCategory(req.Category),
		Status:   domain.ReviewStatus(req.Status),
		Note:     req.Note,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reviewResponse{
		UserID:     rev.UserID,
		Category:   string(rev.Category),
		Status:     string(rev.Status),
		Note:       rev.Note,
		ReviewedBy: rev.ReviewedBy,
		ReviewedAt: rev.ReviewedAt,
	})
}

func (h *Handler) handleSetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	p, err := h.profiles.SetRole(r.Context(), chi.URLParam(r, "id"), domain.Role(req.Role))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// handleAdjustCredits applies a signed manual correction, booked as an
// admin_adjustment ledger entry.
func (h *Handler) handleAdjustCredits(w http.ResponseWriter, r *http.Request) {
	var req adjustCreditsRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	p, err := h.profiles.AdjustCredits(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	rec, err := h.profiles.Reconcile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reconciliationResponse{
		UserID:     rec.UserID,
		Balance:    rec.Balance,
		LedgerSum:  rec.LedgerSum,
		Consistent: rec.Consistent,
	})
}
