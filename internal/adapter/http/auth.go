package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund-escrow/internal/core/domain"
)

type identityKey struct{}

// Authenticator verifies HS256 bearer tokens. The token subject is the
// caller identity.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator returns an Authenticator for secret. A non-empty issuer
// must match the iss claim.
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for sub valid for ttl.
func (a *Authenticator) Issue(sub domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(sub),
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Identify returns the identity carried by a valid token.
func (a *Authenticator) Identify(token string) (domain.Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return domain.Identity(claims.Subject), nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "bearer token required")
			return
		}
		id, err := a.Identify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
	})
}

// caller returns the authenticated identity of the request.
func caller(r *http.Request) domain.Identity {
	id, _ := r.Context().Value(identityKey{}).(domain.Identity)
	return id
}
