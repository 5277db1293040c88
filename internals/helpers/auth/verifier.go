// file: internals/helpers/auth/verifier.go
package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
)

// ErrNoSession covers every "not signed in" outcome: missing, malformed,
// expired, revoked or wrongly signed tokens.
var ErrNoSession = errors.New("no valid session")

type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Verifier validates a session token issued by the hosted identity provider.
// Errors other than ErrNoSession are internal failures.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Session, error)
}

/* ==========================
   JWT sessions (HS256 / RS256)
========================== */

type JWTVerifierOpts struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
	Audience     string
}

type JWTVerifier struct {
	opts  JWTVerifierOpts
	keyFn jwt.Keyfunc
}

func NewJWTVerifier(o JWTVerifierOpts) (*JWTVerifier, error) {
	v := &JWTVerifier{opts: o}

	switch {
	case strings.TrimSpace(o.PublicKeyPEM) != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(o.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		v.keyFn = func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return pub, nil
		}
	case strings.TrimSpace(o.Secret) != "":
		secret := []byte(o.Secret)
		v.keyFn = func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		}
	default:
		return nil, errors.New("JWTVerifier: secret or public key is required")
	}
	return v, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, rawToken string) (Session, error) {
	raw := strings.TrimSpace(rawToken)
	if raw == "" {
		return Session{}, ErrNoSession
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, v.keyFn)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if !tok.Valid {
		return Session{}, fmt.Errorf("%w: invalid token", ErrNoSession)
	}
	if v.opts.Issuer != "" && !claims.VerifyIssuer(v.opts.Issuer, true) {
		return Session{}, fmt.Errorf("%w: issuer mismatch", ErrNoSession)
	}
	if v.opts.Audience != "" && !claims.VerifyAudience(v.opts.Audience, true) {
		return Session{}, fmt.Errorf("%w: audience mismatch", ErrNoSession)
	}

	userID := firstStringClaim(claims, "sub", "user_id", "id")
	if userID == "" {
		return Session{}, fmt.Errorf("%w: token has no subject", ErrNoSession)
	}

	s := Session{
		UserID: userID,
		Email:  firstStringClaim(claims, "email"),
		Token:  raw,
	}
	if exp, ok := claims["exp"].(float64); ok {
		s.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return s, nil
}

func firstStringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := claims[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

/* ==========================
   Google ID tokens
========================== */

type GoogleVerifier struct {
	ClientID string
	verifier googleAuthIDTokenVerifier.Verifier
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

// Verify treats any verification failure, including an unreachable
// certificate endpoint, as "no session".
func (g *GoogleVerifier) Verify(ctx context.Context, rawToken string) (Session, error) {
	raw := strings.TrimSpace(rawToken)
	if raw == "" {
		return Session{}, ErrNoSession
	}
	if err := g.verifier.VerifyIDToken(raw, []string{g.ClientID}); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(raw)
	if err != nil {
		return Session{}, fmt.Errorf("decode google id token: %w", err)
	}
	if claimSet.Sub == "" {
		return Session{}, fmt.Errorf("%w: token has no subject", ErrNoSession)
	}
	return Session{
		UserID:    claimSet.Sub,
		Email:     claimSet.Email,
		Token:     raw,
		ExpiresAt: time.Unix(claimSet.Exp, 0).UTC(),
	}, nil
}

/* ==========================
   Revocation
========================== */

// RevocationChecker reports whether a raw token was revoked locally.
type RevocationChecker func(ctx context.Context, rawToken string) (bool, error)

type revocationVerifier struct {
	next    Verifier
	revoked RevocationChecker
}

// WithRevocation rejects revoked tokens as ErrNoSession. A failing check is an
// internal failure.
func WithRevocation(next Verifier, check RevocationChecker) Verifier {
	if check == nil {
		return next
	}
	return &revocationVerifier{next: next, revoked: check}
}

func (r *revocationVerifier) Verify(ctx context.Context, rawToken string) (Session, error) {
	s, err := r.next.Verify(ctx, rawToken)
	if err != nil {
		return Session{}, err
	}
	revoked, err := r.revoked(ctx, s.Token)
	if err != nil {
		return Session{}, fmt.Errorf("check revoked session: %w", err)
	}
	if revoked {
		return Session{}, fmt.Errorf("%w: session revoked", ErrNoSession)
	}
	return s, nil
}
