package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"traffic-exchange/internal/core/port"
)

// handleRecordVisit records a visit of the caller to the campaign in the
// path and credits the caller in the same step. On success it returns 201
// with the receipt. Ledger rejections map to distinct codes so the client
// can tell a self-visit from an exhausted budget.
func (h *Handler) handleRecordVisit(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.ledger.RecordVisit(r.Context(), callerID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "visit recorded",
		slog.String("visit_id", receipt.VisitID),
		slog.Int64("credits_earned", receipt.CreditsEarned),
	)
	h.writeJSON(w, http.StatusCreated, receiptResponse{
		VisitID:           receipt.VisitID,
		Attempt:           receipt.Attempt,
		CreditsEarned:     receipt.CreditsEarned,
		Balance:           receipt.Balance,
		CampaignCompleted: receipt.CampaignCompleted,
	})
}

// handleCompleteVisit stores the duration and fraud score reported by the
// client once the visit timer ends.
func (h *Handler) handleCompleteVisit(w http.ResponseWriter, r *http.Request) {
	var req completeVisitRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	v, err := h.ledger.CompleteVisit(r.Context(), callerID(r), port.CompleteVisitReq{
		VisitID:         chi.URLParam(r, "id"),
		DurationSeconds: *req.DurationSeconds,
		FraudScore:      *req.FraudScore,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVisitResponse(v))
}
