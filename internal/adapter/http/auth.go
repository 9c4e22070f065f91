package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"traffic-exchange/internal/config/configs"
	"traffic-exchange/internal/core/port"
)

type contextKey string

const identityKey contextKey = "identity"

var errUnauthorized = errors.New("missing or invalid bearer token")

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// TokenVerifier checks HS256 bearer tokens issued by the external identity
// provider. The subject claim is the user id.
type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenVerifier(cfg configs.Auth) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

// Verify parses and validates token and returns the identity it carries.
func (v *TokenVerifier) Verify(token string) (Identity, error) {
	opts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256(), v.secret),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(30 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	tok, err := jwt.Parse([]byte(token), opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("verify token: %w: %w", errUnauthorized, err)
	}
	subject, ok := tok.Subject()
	if !ok || subject == "" {
		return Identity{}, fmt.Errorf("verify token: missing subject: %w", errUnauthorized)
	}

	id := Identity{UserID: subject}
	// email and name are optional profile hints
	_ = tok.Get("email", &id.Email)
	_ = tok.Get("name", &id.Name)
	return id, nil
}

// Authenticator rejects requests without a valid bearer token and stores
// the caller's Identity in the request context.
func Authenticator(v *TokenVerifier, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				onError(w, r, errUnauthorized)
				return
			}
			id, err := v.Verify(token)
			if err != nil {
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
		})
	}
}

// IdentityFrom returns the authenticated caller. The zero Identity means
// the request did not pass Authenticator.
func IdentityFrom(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}

func callerID(r *http.Request) string {
	return IdentityFrom(r.Context()).UserID
}

func extractToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireAdmin lets the request through only when the caller's stored
// profile has the admin role. Roles are never taken from the token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.profiles.GetProfile(r.Context(), callerID(r))
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				err = port.ErrForbidden
			}
			h.writeError(w, r, err)
			return
		}
		if !p.IsAdmin() {
			h.writeError(w, r, port.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
