package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-exchange/internal/adapter/memory"
	"traffic-exchange/internal/adapter/usecase"
	"traffic-exchange/internal/config/configs"
	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

const testSecret = "test-secret-with-enough-entropy"

type testServer struct {
	handler  http.Handler
	profiles *usecase.ProfileUseCase
}

func newTestServer(t *testing.T, limiter *RateLimiter) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()

	profiles := usecase.NewProfileUseCase(store, store, usecase.ProfileOptions{SignupBonus: 100}, logger)
	h := NewHandler(Deps{
		Ledger:    usecase.NewLedgerUseCase(store, logger),
		Campaigns: usecase.NewCampaignUseCase(store, store, logger),
		Profiles:  profiles,
		Fraud:     usecase.NewFraudUseCase(store, nil, usecase.FraudOptions{}, logger),
		Verifier:  NewTokenVerifier(configs.Auth{Secret: testSecret}),
		Limiter:   limiter,
		Logger:    logger,
	})
	return &testServer{handler: h.Router(), profiles: profiles}
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	tok, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Claim("email", subject+"@example.com").
		Claim("name", "User "+subject).
		Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), []byte(secret)))
	require.NoError(t, err)
	return string(signed)
}

// do sends a request as user (empty means anonymous) and decodes the JSON
// response into out when out is not nil.
func (s *testServer) do(t *testing.T, method, path, user string, body any, out any) int {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, user))
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (s *testServer) signup(t *testing.T, user string) profileResponse {
	t.Helper()
	var p profileResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/profile", user, nil, &p))
	return p
}

func (s *testServer) createCampaign(t *testing.T, owner string, credits int64) campaignResponse {
	t.Helper()
	var c campaignResponse
	code := s.do(t, http.MethodPost, "/api/v1/campaigns", owner, createCampaignRequest{
		Title:   "My site",
		URL:     "https://example.com/" + owner,
		Credits: credits,
	}, &c)
	require.Equal(t, http.StatusCreated, code)
	return c
}

func TestHealthNeedsNoToken(t *testing.T) {
	s := newTestServer(t, nil)
	var body map[string]string
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthz", "", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"foreign secret", "Bearer " + signToken(t, "another-secret", "u1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		})
	}
}

func TestEnsureProfileUsesTokenClaims(t *testing.T) {
	s := newTestServer(t, nil)

	p := s.signup(t, "alice")
	assert.Equal(t, "alice", p.ID)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, "User alice", p.DisplayName)
	assert.Equal(t, "free", p.Role)
	assert.EqualValues(t, 100, p.CreditBalance)

	// the bonus is paid once
	p = s.signup(t, "alice")
	assert.EqualValues(t, 100, p.CreditBalance)

	var txs []transactionResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/profile/transactions", "alice", nil, &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, "signup_bonus", txs[0].Reason)
}

func TestGetProfileBeforeSignup(t *testing.T) {
	s := newTestServer(t, nil)
	var body errorBody
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/profile", "ghost", nil, &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestVisitFlow(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "owner")
	s.signup(t, "visitor")
	camp := s.createCampaign(t, "owner", 2)
	assert.EqualValues(t, 2, camp.CreditsRemaining)

	var available []campaignResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/available", "visitor", nil, &available))
	require.Len(t, available, 1)
	assert.Equal(t, camp.ID, available[0].ID)

	visitPath := "/api/v1/campaigns/" + camp.ID + "/visits"

	var errBody errorBody
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, visitPath, "owner", nil, &errBody))
	assert.Equal(t, "SELF_VISIT_FORBIDDEN", errBody.Error.Code)

	var receipt receiptResponse
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, visitPath, "visitor", nil, &receipt))
	assert.Equal(t, 1, receipt.Attempt)
	assert.EqualValues(t, 1, receipt.CreditsEarned)
	assert.EqualValues(t, 101, receipt.Balance)
	assert.False(t, receipt.CampaignCompleted)
	firstVisit := receipt.VisitID

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, visitPath, "visitor", nil, &receipt))
	assert.Equal(t, 2, receipt.Attempt)
	assert.True(t, receipt.CampaignCompleted)

	errBody = errorBody{}
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, visitPath, "visitor", nil, &errBody))
	assert.Equal(t, "CAMPAIGN_INACTIVE", errBody.Error.Code)

	completePath := "/api/v1/visits/" + firstVisit + "/complete"
	var visit visitResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, completePath, "visitor", map[string]int{
		"duration_seconds": 30,
		"fraud_score":      85,
	}, &visit))
	assert.False(t, visit.IsValid)
	require.NotNil(t, visit.FraudScore)
	assert.Equal(t, 85, *visit.FraudScore)
	assert.EqualValues(t, 1, visit.CreditsEarned)

	errBody = errorBody{}
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, completePath, "visitor", map[string]int{
		"duration_seconds": 30,
		"fraud_score":      0,
	}, &errBody))
	assert.Equal(t, "VISIT_ALREADY_COMPLETED", errBody.Error.Code)

	var p profileResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/profile", "visitor", nil, &p))
	assert.EqualValues(t, 102, p.CreditBalance)
}

func TestCompleteVisitRequiresBothFields(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "visitor")

	var body errorBody
	code := s.do(t, http.MethodPost, "/api/v1/visits/v1/complete", "visitor", map[string]int{"duration_seconds": 10}, &body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	assert.Contains(t, body.Error.Message, "fraud_score")
}

func TestCampaignLifecycle(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "owner")
	camp := s.createCampaign(t, "owner", 30)
	base := "/api/v1/campaigns/" + camp.ID

	var c campaignResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/pause", "owner", nil, &c))
	assert.Equal(t, "paused", c.Status)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/resume", "owner", nil, &c))
	assert.Equal(t, "active", c.Status)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/credits", "owner", addCreditsRequest{Credits: 20}, &c))
	assert.EqualValues(t, 50, c.CreditsAllocated)

	var body errorBody
	require.Equal(t, http.StatusUnprocessableEntity,
		s.do(t, http.MethodPost, base+"/credits", "owner", addCreditsRequest{Credits: 1000}, &body))
	assert.Equal(t, "INSUFFICIENT_CREDITS", body.Error.Code)

	s.signup(t, "mallory")
	body = errorBody{}
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, base+"/pause", "mallory", nil, &body))
	assert.Equal(t, "FORBIDDEN", body.Error.Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, base, "owner", nil, nil))

	var p profileResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/profile", "owner", nil, &p))
	assert.EqualValues(t, 100, p.CreditBalance)

	var mine []campaignResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns", "owner", nil, &mine))
	for _, m := range mine {
		assert.NotEqual(t, camp.ID, m.ID)
	}
}

func TestGetCampaign(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "owner")
	s.signup(t, "visitor")
	camp := s.createCampaign(t, "owner", 30)
	base := "/api/v1/campaigns/" + camp.ID

	var c campaignResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, base, "visitor", nil, &c))
	assert.Equal(t, camp.ID, c.ID)
	assert.Equal(t, "active", c.Status)
	assert.EqualValues(t, 30, c.CreditsAllocated)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/pause", "owner", nil, nil))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, base, "owner", nil, &c))
	assert.Equal(t, "paused", c.Status)

	var body errorBody
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, base, "visitor", nil, &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/campaigns/missing", "owner", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, base, "", nil, nil))
}

func TestCreateCampaignValidation(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "owner")

	tests := []struct {
		name string
		body any
		code string
	}{
		{"bad url", createCampaignRequest{Title: "t", URL: "ftp://example.com", Credits: 1}, "INVALID_INPUT"},
		{"missing title", createCampaignRequest{URL: "https://example.com", Credits: 1}, "INVALID_INPUT"},
		{"zero credits", createCampaignRequest{Title: "t", URL: "https://example.com"}, "INVALID_INPUT"},
		{"not json", "{", "INVALID_JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorBody
			assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/campaigns", "owner", tt.body, &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestCampaignLimitReached(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "owner")
	for i := 0; i < 3; i++ {
		s.createCampaign(t, "owner", 1)
	}
	var body errorBody
	code := s.do(t, http.MethodPost, "/api/v1/campaigns", "owner", createCampaignRequest{
		Title: "one too many", URL: "https://example.com/4", Credits: 1,
	}, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "CAMPAIGN_LIMIT_REACHED", body.Error.Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "root")
	s.signup(t, "bob")

	var body errorBody
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/admin/fraud", "bob", nil, &body))
	assert.Equal(t, "FORBIDDEN", body.Error.Code)

	body = errorBody{}
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/admin/fraud", "stranger", nil, &body))

	_, err := s.profiles.SetRole(context.Background(), "root", domain.RoleAdmin)
	require.NoError(t, err)

	var report fraudReportResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/admin/fraud", "root", nil, &report))
	assert.NotNil(t, report.Findings)

	var p profileResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/v1/admin/profiles/bob/role", "root", setRoleRequest{Role: "premium"}, &p))
	assert.Equal(t, "premium", p.Role)
	assert.InDelta(t, 1.2, p.CreditMultiplier, 0.0001)
	assert.Equal(t, 20, p.CampaignLimit)

	body = errorBody{}
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/v1/admin/profiles/bob/role", "root", setRoleRequest{Role: "owner"}, &body))
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/admin/profiles/bob/credits", "root", adjustCreditsRequest{Amount: -40}, &p))
	assert.EqualValues(t, 60, p.CreditBalance)

	body = errorBody{}
	require.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPost, "/api/v1/admin/profiles/bob/credits", "root", adjustCreditsRequest{Amount: -61}, &body))
	assert.Equal(t, "INSUFFICIENT_CREDITS", body.Error.Code)

	var rec reconciliationResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/admin/profiles/bob/reconciliation", "root", nil, &rec))
	assert.True(t, rec.Consistent)
	assert.EqualValues(t, 60, rec.LedgerSum)

	var review reviewResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/v1/admin/fraud/reviews", "root", reviewRequest{
		UserID: "bob", Category: "self_visit", Status: "false_positive", Note: "shared office",
	}, &review))
	assert.Equal(t, "root", review.ReviewedBy)
	assert.Equal(t, "false_positive", review.Status)

	body = errorBody{}
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/v1/admin/fraud/reviews", "root", reviewRequest{
		UserID: "ghost", Category: "self_visit", Status: "blocked",
	}, &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestRateLimitedVisits(t *testing.T) {
	limiter := NewRateLimiter(nil, configs.RateLimit{Requests: 1, Window: time.Minute, Burst: 1},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := newTestServer(t, limiter)
	s.signup(t, "visitor")

	path := "/api/v1/campaigns/missing/visits"
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, path, "visitor", nil, nil))

	var body errorBody
	assert.Equal(t, http.StatusTooManyRequests, s.do(t, http.MethodPost, path, "visitor", nil, &body))
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
	assert.True(t, body.Error.Retryable)

	// other users have their own budget
	s.signup(t, "other")
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, path, "other", nil, nil))
}

func TestWriteErrorMapping(t *testing.T) {
	h := &Handler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	tests := []struct {
		err       error
		status    int
		code      string
		retryable bool
	}{
		{port.ErrSelfVisitForbidden, http.StatusForbidden, "SELF_VISIT_FORBIDDEN", false},
		{port.ErrCampaignInactive, http.StatusConflict, "CAMPAIGN_INACTIVE", false},
		{port.ErrCampaignExhausted, http.StatusConflict, "CAMPAIGN_EXHAUSTED", false},
		{port.ErrAttemptCapReached, http.StatusConflict, "ATTEMPT_CAP_REACHED", false},
		{port.ErrNotFound, http.StatusNotFound, "NOT_FOUND", false},
		{fmt.Errorf("record visit: %w: %w", port.ErrTransactionFailure, errors.New("serialization")), http.StatusConflict, "TRANSACTION_FAILED", true},
		{fmt.Errorf("analyze: %w", port.ErrAnalysisUnavailable), http.StatusServiceUnavailable, "ANALYSIS_UNAVAILABLE", false},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.retryable, body.Error.Retryable)
		})
	}
}
