package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// =======================
// TYPED CONFIG
// =======================

type Config struct {
	Env  string
	Port string

	DB       DatabaseConfig
	Identity IdentityConfig
	Twilio   TwilioConfig
	Images   ImageConfig
	Log      LogConfig

	CorsOrigins           []string
	RevokedSessionTTLDays int
	RequestTimeout        time.Duration

	// IPs or CIDRs allowed to set X-Forwarded-For. Empty means the socket address is the client IP.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Driver   string // postgres | mysql | sqlite
	DSN      string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

type IdentityConfig struct {
	Provider      string // jwt | google
	JWTSecret     string
	JWTPublicKey  string // PEM, RS256
	Issuer        string
	Audience      string
	SessionCookie string
	SignInURL     string

	GoogleClientID string

	// Backend API of the hosted provider, used to delete users.
	APIURL    string
	APISecret string

	// Keys the HMAC of revoked session tokens.
	RevocationSecret string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Enabled reports whether real SMS delivery is configured.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

type ImageConfig struct {
	RemoteHosts []string
	MaxBytes    int
}

type LogConfig struct {
	Level    string
	Format   string
	TimeZone string
}

// Remote image hosts accepted by /_img when IMAGE_REMOTE_HOSTS is not set.
var DefaultImageRemoteHosts = []string{"img.clerk.com", "images.clerk.dev", "utfs.io"}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env unless running on Railway, where the platform injects ENV.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info().Msg("running in Railway, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found, using system ENV")
		return
	}
	log.Info().Msg(".env loaded")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in ENV, using default")
	}
	return def
}

func getEnvList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return append([]string(nil), def...)
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Load reads the typed config from the environment. Call LoadEnv first.
func Load() (*Config, error) {
	cfg := &Config{
		Env:  GetEnv("APP_ENV", "development"),
		Port: GetEnv("PORT", "3000"),
		DB: DatabaseConfig{
			Driver:          strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
			DSN:             GetEnv("DB_DSN"),
			User:            GetEnv("DB_USER"),
			Password:        GetEnv("DB_PASSWORD"),
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			Name:            GetEnv("DB_NAME"),
			SSLMode:         GetEnv("DB_SSLMODE", "require"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxIdleTime: 60 * time.Second,
			ConnMaxLifetime: 10 * time.Minute,
		},
		Identity: IdentityConfig{
			Provider:       strings.ToLower(GetEnv("IDENTITY_PROVIDER", "jwt")),
			JWTSecret:      GetEnv("IDENTITY_JWT_SECRET"),
			JWTPublicKey:   GetEnv("IDENTITY_JWT_PUBLIC_KEY"),
			Issuer:         GetEnv("IDENTITY_ISSUER"),
			Audience:       GetEnv("IDENTITY_AUDIENCE"),
			SessionCookie:  GetEnv("IDENTITY_SESSION_COOKIE", "__session"),
			SignInURL:      GetEnv("IDENTITY_SIGN_IN_URL"),
			GoogleClientID: GetEnv("GOOGLE_CLIENT_ID"),
			APIURL:         strings.TrimRight(GetEnv("IDENTITY_API_URL"), "/"),
			APISecret:      GetEnv("IDENTITY_API_SECRET"),
		},
		Twilio: TwilioConfig{
			AccountSID: GetEnv("TWILIO_ACCOUNT_SID"),
			AuthToken:  GetEnv("TWILIO_AUTH_TOKEN"),
			FromNumber: GetEnv("TWILIO_FROM_NUMBER"),
		},
		Images: ImageConfig{
			RemoteHosts: getEnvList("IMAGE_REMOTE_HOSTS", DefaultImageRemoteHosts),
			MaxBytes:    getEnvInt("IMAGE_MAX_BYTES", 8<<20),
		},
		Log: LogConfig{
			Level:    GetEnv("LOG_LEVEL", "info"),
			Format:   GetEnv("LOG_FORMAT", "json"),
			TimeZone: GetEnv("LOG_TIMEZONE", "UTC"),
		},
		CorsOrigins:           getEnvList("CORS_ORIGINS", nil),
		RevokedSessionTTLDays: getEnvInt("REVOKED_SESSION_TTL_DAYS", 7),
		RequestTimeout:        5 * time.Second,
		TrustedProxies:        getEnvList("TRUSTED_PROXIES", nil),
	}

	cfg.Identity.RevocationSecret = GetEnv("IDENTITY_REVOCATION_SECRET",
		firstNonEmpty(cfg.Identity.JWTSecret, cfg.Identity.APISecret, cfg.Identity.GoogleClientID))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	switch c.Identity.Provider {
	case "jwt":
		if c.Identity.JWTSecret == "" && c.Identity.JWTPublicKey == "" {
			return fmt.Errorf("IDENTITY_JWT_SECRET or IDENTITY_JWT_PUBLIC_KEY must be set")
		}
	case "google":
		if c.Identity.GoogleClientID == "" {
			return fmt.Errorf("GOOGLE_CLIENT_ID must be set for the google identity provider")
		}
	default:
		return fmt.Errorf("unsupported IDENTITY_PROVIDER %q", c.Identity.Provider)
	}
	return nil
}

// PostgresDSN builds a DSN from parts when DB_DSN is empty.
func (d DatabaseConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func (d DatabaseConfig) MySQLDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}
