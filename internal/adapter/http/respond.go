package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"traffic-exchange/internal/core/port"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{port.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
	{port.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{port.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{port.ErrSelfVisitForbidden, http.StatusForbidden, "SELF_VISIT_FORBIDDEN"},
	{port.ErrCampaignInactive, http.StatusConflict, "CAMPAIGN_INACTIVE"},
	{port.ErrCampaignExhausted, http.StatusConflict, "CAMPAIGN_EXHAUSTED"},
	{port.ErrAttemptCapReached, http.StatusConflict, "ATTEMPT_CAP_REACHED"},
	{port.ErrVisitAlreadyCompleted, http.StatusConflict, "VISIT_ALREADY_COMPLETED"},
	{port.ErrInsufficientCredits, http.StatusUnprocessableEntity, "INSUFFICIENT_CREDITS"},
	{port.ErrCampaignLimitReached, http.StatusUnprocessableEntity, "CAMPAIGN_LIMIT_REACHED"},
	{port.ErrTransactionFailure, http.StatusConflict, "TRANSACTION_FAILED"},
	{port.ErrAnalysisUnavailable, http.StatusServiceUnavailable, "ANALYSIS_UNAVAILABLE"},
	{errUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
}

// writeError maps err onto a status and a stable code. Errors that are not
// part of the taxonomy are logged and hidden behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		detail := errorDetail{Code: m.code, Message: m.err.Error()}
		if m.err == port.ErrTransactionFailure {
			detail.Retryable = true
			h.logger.WarnContext(r.Context(), "transaction failed", slog.Any("error", err))
		}
		if m.err == port.ErrAnalysisUnavailable {
			h.logger.ErrorContext(r.Context(), "fraud analysis failed", slog.Any("error", err))
		}
		h.writeJSON(w, m.status, errorBody{Error: detail})
		return
	}

	h.logger.ErrorContext(r.Context(), "unhandled error",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
		Code:    "INTERNAL",
		Message: "internal error",
	}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode reads a JSON body into dst and validates it. An empty body is
// accepted when allowEmpty is set. It writes the error response itself and
// reports whether the caller may continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst)
	if err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    "INVALID_JSON",
			Message: "invalid JSON body",
		}})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    "INVALID_INPUT",
			Message: validationMessage(err),
		}})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fe.Field() + " failed " + fe.Tag() + "=" + fe.Param()
	}
	return fe.Field() + " failed " + fe.Tag()
}

// queryLimit parses the optional limit query parameter. Bad values fall
// back to zero, which the use cases turn into their default.
func queryLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
