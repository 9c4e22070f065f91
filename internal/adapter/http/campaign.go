package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

func (h *Handler) handleListMyCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.campaigns.ListMine(r.Context(), callerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponses(cs))
}

// handleCreateCampaign funds a new campaign from the caller's balance. It
// returns 201 with the campaign on success.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	c, err := h.campaigns.Create(r.Context(), callerID(r), port.CreateCampaignReq{
		Title:   req.Title,
		URL:     req.URL,
		Credits: req.Credits,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListAvailable lists campaigns the caller may visit.
func (h *Handler) handleListAvailable(w http.ResponseWriter, r *http.Request) {
	cs, err := h.campaigns.ListAvailable(r.Context(), callerID(r), queryLimit(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponses(cs))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), callerID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.changeCampaign(w, r, h.campaigns.Pause)
}

func (h *Handler) handleResumeCampaign(w http.ResponseWriter, r *http.Request) {
	h.changeCampaign(w, r, h.campaigns.Resume)
}

func (h *Handler) handleAddCredits(w http.ResponseWriter, r *http.Request) {
	var req addCreditsRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	h.changeCampaign(w, r, func(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error) {
		return h.campaigns.AddCredits(ctx, ownerID, campaignID, req.Credits)
	})
}

// handleDeleteCampaign soft-deletes the campaign and refunds what is left
// of its budget. It returns 204.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), callerID(r), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeCampaign(
	w http.ResponseWriter,
	r *http.Request,
	change func(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error),
) {
	c, err := change(r.Context(), callerID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
