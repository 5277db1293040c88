package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "s3cret")
	t.Setenv("IMAGE_REMOTE_HOSTS", "")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "jwt", cfg.Identity.Provider)
	assert.Equal(t, "__session", cfg.Identity.SessionCookie)
	assert.Empty(t, cfg.Identity.SignInURL)
	assert.Equal(t, DefaultImageRemoteHosts, cfg.Images.RemoteHosts)
	assert.Equal(t, 8<<20, cfg.Images.MaxBytes)
	assert.Equal(t, "s3cret", cfg.Identity.RevocationSecret)
	assert.False(t, cfg.Twilio.Enabled())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IDENTITY_PROVIDER", "Google")
	t.Setenv("GOOGLE_CLIENT_ID", "cid.apps.googleusercontent.com")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("IMAGE_REMOTE_HOSTS", " CDN.school.test, ,utfs.io ")
	t.Setenv("IMAGE_MAX_BYTES", "not-a-number")
	t.Setenv("IDENTITY_API_URL", "https://api.id.test/v1/")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_FROM_NUMBER", "+15005550006")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 100.64.0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "google", cfg.Identity.Provider)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, []string{"cdn.school.test", "utfs.io"}, cfg.Images.RemoteHosts)
	assert.Equal(t, 8<<20, cfg.Images.MaxBytes)
	assert.Equal(t, "https://api.id.test/v1", cfg.Identity.APIURL)
	assert.True(t, cfg.Twilio.Enabled())
	assert.Equal(t, []string{"10.0.0.0/8", "100.64.0.1"}, cfg.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")

	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("IDENTITY_PROVIDER", "jwt")
	t.Setenv("IDENTITY_JWT_SECRET", "")
	t.Setenv("IDENTITY_JWT_PUBLIC_KEY", "")
	_, err = Load()
	assert.ErrorContains(t, err, "IDENTITY_JWT_SECRET")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SCHOOLHUB_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("SCHOOLHUB_EMPTY", "fallback"))
	assert.Equal(t, "", GetEnv("SCHOOLHUB_EMPTY"))

	t.Setenv("SCHOOLHUB_SET", "value")
	assert.Equal(t, "value", GetEnv("SCHOOLHUB_SET", "fallback"))
}

func TestDSNs(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "n", SSLMode: "disable"}
	assert.Contains(t, d.PostgresDSN(), "postgres://u:p@h:5432/n?sslmode=disable")
	assert.Equal(t, "u:p@tcp(h:5432)/n?charset=utf8mb4&parseTime=True&loc=UTC", d.MySQLDSN())

	d.DSN = "explicit"
	assert.Equal(t, "explicit", d.PostgresDSN())
	assert.Equal(t, "explicit", d.MySQLDSN())
}
