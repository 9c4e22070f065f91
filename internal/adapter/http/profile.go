package httpadapter

import (
	"net/http"

	"traffic-exchange/internal/core/port"
)

// handleEnsureProfile creates the caller's profile on first sign-in and
// returns it. Email and display name default to the token claims.
func (h *Handler) handleEnsureProfile(w http.ResponseWriter, r *http.Request) {
	var req ensureProfileRequest
	if !h.decode(w, r, &req, true) {
		return
	}
	id := IdentityFrom(r.Context())
	if req.Email == "" {
		req.Email = id.Email
	}
	if req.DisplayName == "" {
		req.DisplayName = id.Name
	}

	p, err := h.profiles.EnsureProfile(r.Context(), port.EnsureProfileReq{
		UserID:      id.UserID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetProfile(r.Context(), callerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// handleListTransactions returns the caller's ledger, newest first. The
// optional limit query parameter bounds the page.
func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.profiles.ListTransactions(r.Context(), callerID(r), queryLimit(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toTransactionResponses(txs))
}
