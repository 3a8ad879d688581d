package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is the development signing secret. Production refuses it.
const DefaultJWTSecret = "dev-secret-change-in-production"

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName    string
	AppVersion string
	Env        string // development, staging, production
	Port       string
	GinMode    string
	APIPrefix  string

	// Session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Password hashing cost for seeded credentials
	BcryptCost int

	// CORS
	FrontendURL        string
	CORSAllowedOrigins string // comma-separated, appended to FrontendURL

	// Rate limiting on the API group
	RateLimitMax           int
	RateLimitWindow        time.Duration
	RateLimitBypassPrivate bool // skip loopback and private client addresses

	// Proxies whose forwarding headers are trusted (comma-separated IPs or CIDRs).
	// Empty trusts none and uses the peer address.
	TrustedProxies string

	// Redis (empty address disables rate limiting and shared revocation)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ (empty URL disables notification publishing)
	RabbitMQURL         string
	RabbitMQNotifyQueue string

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// Email sending toggle
	MailSendEnabled bool

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool

	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		AppName:    getenv("APP_NAME", "wil-portal"),
		AppVersion: getenv("APP_VERSION", "1.0.0"),
		Env:        getenv("APP_ENV", "development"),
		Port:       getenv("PORT", "3001"),
		GinMode:    getenv("GIN_MODE", "release"),
		APIPrefix:  getenv("API_PREFIX", "/api"),

		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:  getdur("TOKEN_TTL", 24*time.Hour),

		BcryptCost: getint("BCRYPT_COST", bcrypt.DefaultCost),

		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:3000"),
		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		RateLimitMax:           getint("RATE_LIMIT_MAX", 100),
		RateLimitWindow:        getdur("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitBypassPrivate: getbool("RATE_LIMIT_BYPASS_PRIVATE", false),

		TrustedProxies: getenv("TRUSTED_PROXIES", ""),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RabbitMQURL:         getenv("RABBITMQ_URL", ""),
		RabbitMQNotifyQueue: getenv("RABBITMQ_NOTIFY_QUEUE", "wil.notifications"),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", false),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),

		// HTTP access log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),

		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Printf("BCRYPT_COST %d out of range, using default %d", cfg.BcryptCost, bcrypt.DefaultCost)
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return cfg
}

// CORSOrigins returns the allowed origins as slice, frontend URL first
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.FrontendURL+","+c.CORSAllowedOrigins, ",")
	seen := make(map[string]struct{}, len(parts))
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		res = append(res, p)
	}
	return res
}

// TrustedProxyList returns the trusted proxy entries; nil trusts none.
func (c *Config) TrustedProxyList() []string {
	var res []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Validate rejects settings that are only acceptable in development.
func (c *Config) Validate() error {
	if c.Env == "production" && (c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

// RedisEnabled reports whether a Redis address was configured
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

// NotificationsEnabled reports whether submissions are published to RabbitMQ
func (c *Config) NotificationsEnabled() bool { return c.RabbitMQURL != "" && c.RabbitMQNotifyQueue != "" }
