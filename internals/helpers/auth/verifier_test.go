package helper

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "identity-secret"

func signHS(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTVerifier_HMAC(t *testing.T) {
	v, err := NewJWTVerifier(JWTVerifierOpts{Secret: testSecret})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token yields subject", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		tok := signHS(t, testSecret, jwt.MapClaims{"sub": "user_2abc", "email": "a@school.test", "exp": exp})

		s, err := v.Verify(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, "user_2abc", s.UserID)
		assert.Equal(t, "a@school.test", s.Email)
		assert.Equal(t, tok, s.Token)
		assert.Equal(t, exp, s.ExpiresAt.Unix())
	})

	t.Run("user_id claim is a fallback", func(t *testing.T) {
		tok := signHS(t, testSecret, jwt.MapClaims{"user_id": "u-9", "exp": time.Now().Add(time.Minute).Unix()})
		s, err := v.Verify(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, "u-9", s.UserID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := v.Verify(ctx, "  ")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signHS(t, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Minute).Unix()})
		_, err := v.Verify(ctx, tok)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signHS(t, "other", jwt.MapClaims{"sub": "u"})
		_, err := v.Verify(ctx, tok)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("no subject", func(t *testing.T) {
		tok := signHS(t, testSecret, jwt.MapClaims{"email": "x@y.z"})
		_, err := v.Verify(ctx, tok)
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestJWTVerifier_IssuerAudience(t *testing.T) {
	v, err := NewJWTVerifier(JWTVerifierOpts{Secret: testSecret, Issuer: "https://id.school.test", Audience: "schoolhub"})
	require.NoError(t, err)

	ok := signHS(t, testSecret, jwt.MapClaims{"sub": "u", "iss": "https://id.school.test", "aud": "schoolhub"})
	_, err = v.Verify(context.Background(), ok)
	assert.NoError(t, err)

	badIss := signHS(t, testSecret, jwt.MapClaims{"sub": "u", "iss": "https://evil.test", "aud": "schoolhub"})
	_, err = v.Verify(context.Background(), badIss)
	assert.ErrorIs(t, err, ErrNoSession)

	badAud := signHS(t, testSecret, jwt.MapClaims{"sub": "u", "iss": "https://id.school.test", "aud": "other"})
	_, err = v.Verify(context.Background(), badAud)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestJWTVerifier_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	v, err := NewJWTVerifier(JWTVerifierOpts{PublicKeyPEM: string(pubPEM)})
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "user_rsa"}).SignedString(key)
	require.NoError(t, err)
	s, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user_rsa", s.UserID)

	// an HMAC token must not pass an RSA verifier
	hs := signHS(t, string(pubPEM), jwt.MapClaims{"sub": "attacker"})
	_, err = v.Verify(context.Background(), hs)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestNewJWTVerifier_RequiresKey(t *testing.T) {
	_, err := NewJWTVerifier(JWTVerifierOpts{})
	assert.Error(t, err)

	_, err = NewJWTVerifier(JWTVerifierOpts{PublicKeyPEM: "not pem"})
	assert.Error(t, err)
}

type stubVerifier struct {
	s   Session
	err error
}

func (s stubVerifier) Verify(ctx context.Context, raw string) (Session, error) { return s.s, s.err }

func TestWithRevocation(t *testing.T) {
	base := stubVerifier{s: Session{UserID: "u", Token: "tok"}}
	ctx := context.Background()

	v := WithRevocation(base, func(ctx context.Context, raw string) (bool, error) { return false, nil })
	s, err := v.Verify(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u", s.UserID)

	v = WithRevocation(base, func(ctx context.Context, raw string) (bool, error) { return true, nil })
	_, err = v.Verify(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)

	boom := errors.New("db down")
	v = WithRevocation(base, func(ctx context.Context, raw string) (bool, error) { return false, boom })
	_, err = v.Verify(ctx, "tok")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoSession)

	// upstream rejection is returned untouched
	v = WithRevocation(stubVerifier{err: ErrNoSession}, func(ctx context.Context, raw string) (bool, error) {
		t.Fatal("checker must not run for rejected tokens")
		return false, nil
	})
	_, err = v.Verify(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)

	assert.Equal(t, Verifier(base), WithRevocation(base, nil))
}
