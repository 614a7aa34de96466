package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type actorKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 tokens issued by the user service. The subject
// is the user id, the role claim is one of the marketplace roles.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Parse(token string) (entities.Actor, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !tok.Valid {
		return entities.Actor{}, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	role := entities.Role(strings.ToLower(c.Role))
	if c.Subject == "" || !role.Valid() {
		return entities.Actor{}, fmt.Errorf("%w: invalid claims", ErrUnauthenticated)
	}
	return entities.Actor{ID: c.Subject, Role: role}, nil
}

// Issue signs a token for actor. Used by tooling and tests; production tokens
// come from the user service.
func (a *Authenticator) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(a.secret)
}

// Authenticate rejects requests without a valid token and stores the actor in
// the request context.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := a.Parse(bearerToken(r))
		if err != nil {
			utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, actor.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken reads the Authorization header. Browsers cannot set headers on
// websocket upgrades, so the token query parameter is accepted too.
func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return r.URL.Query().Get("token")
}
