package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/databases/dbtest"
	authModel "schoolhub_backend/internals/features/users/auth/model"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func TestNewVerifier_RejectsRevokedTokens(t *testing.T) {
	db := dbtest.Open(t, &authModel.RevokedSession{})
	cfg := configs.IdentityConfig{Provider: "jwt", JWTSecret: "s3cret", RevocationSecret: "rev"}

	v, err := NewVerifier(cfg, db)
	require.NoError(t, err)

	exp := time.Now().Add(time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user_1", "exp": exp.Unix()}).
		SignedString([]byte("s3cret"))
	require.NoError(t, err)

	ctx := context.Background()
	s, err := v.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "user_1", s.UserID)

	require.NoError(t, authRepo.RevokeSession(ctx, db, tok, "rev", "user_1", exp))
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, helperAuth.ErrNoSession)
}

func TestNewVerifier_Providers(t *testing.T) {
	_, err := NewVerifier(configs.IdentityConfig{Provider: "saml"}, nil)
	assert.Error(t, err)

	_, err = NewVerifier(configs.IdentityConfig{Provider: "jwt"}, nil)
	assert.Error(t, err, "jwt provider needs a key")

	v, err := NewVerifier(configs.IdentityConfig{Provider: "google", GoogleClientID: "cid"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &helperAuth.GoogleVerifier{}, v)
}

func TestNewUserDeleter(t *testing.T) {
	assert.IsType(t, helperAuth.NoopUserDeleter{}, NewUserDeleter(configs.IdentityConfig{}))

	d := NewUserDeleter(configs.IdentityConfig{APIURL: "https://api.id.test/v1", APISecret: "sk"})
	pd, ok := d.(*helperAuth.ProviderUserDeleter)
	require.True(t, ok)
	assert.Equal(t, "https://api.id.test/v1", pd.BaseURL)
}
