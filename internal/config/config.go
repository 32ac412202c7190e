package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port           int      `env:"PORT" envDefault:"5000"`
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	FrontendURL    string   `env:"FRONTEND_URL"`
	APIBaseURL     string   `env:"API_BASE_URL"`
	MigrateOnStart bool     `env:"MIGRATE_ON_START" envDefault:"true"`

	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Mail     MailConfig
	Redis    RedisConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_DATABASE" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns int32  `env:"DB_MIN_CONNS" envDefault:"1"`
}

type AuthConfig struct {
	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

type StorageConfig struct {
	Endpoint       string `env:"STORAGE_ENDPOINT"`
	AccessKey      string `env:"STORAGE_ACCESS_KEY"`
	SecretKey      string `env:"STORAGE_SECRET_KEY"`
	Region         string `env:"STORAGE_REGION"`
	UseSSL         bool   `env:"STORAGE_USE_SSL" envDefault:"true"`
	Bucket         string `env:"STORAGE_BUCKET" envDefault:"visionreports"`
	PublicURL      string `env:"STORAGE_PUBLIC_URL"`
	MaxUploadBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
}

type MailConfig struct {
	Host          string        `env:"SMTP_HOST" envDefault:"smtp-relay.brevo.com"`
	Port          int           `env:"SMTP_PORT" envDefault:"587"`
	Username      string        `env:"SMTP_USERNAME"`
	Password      string        `env:"SMTP_PASSWORD"`
	InsecureTLS   bool          `env:"SMTP_INSECURE_TLS" envDefault:"false"`
	From          string        `env:"MAIL_FROM"`
	FromName      string        `env:"MAIL_FROM_NAME" envDefault:"Portfolio"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	Timeout       time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`
	BrandName     string        `env:"BRAND_NAME" envDefault:"Portfolio"`
	OwnerName     string        `env:"OWNER_NAME"`
	OwnerTitle    string        `env:"OWNER_TITLE"`
	OwnerLocation string        `env:"OWNER_LOCATION"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
	File   string `env:"LOG_FILE"`
	Source bool   `env:"LOG_SOURCE" envDefault:"false"`
}

// ErrMissingDatabaseKey is returned by Validate when no database credentials
// are configured.
var ErrMissingDatabaseKey = errors.New("database key not configured: set DATABASE_URL or DB_HOST and DB_PASSWORD")

// Load reads an optional .env file and parses the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, strings.TrimRight(o, "/"))
		}
	}
	c.CORSOrigins = origins
	c.Storage.PublicURL = strings.TrimRight(c.Storage.PublicURL, "/")
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}
}

// Validate checks the options the server cannot start without.
func (c *Config) Validate() error {
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Password == "") {
		return ErrMissingDatabaseKey
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// DSN returns the Postgres connection string, built from the DB_* parts when
// DATABASE_URL is empty.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	userInfo := url.UserPassword(d.User, d.Password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		userInfo.String(),
		d.Host,
		d.Port,
		url.PathEscape(d.Name),
		d.SSLMode,
	)
}

// Redacted returns the DSN host/database for logging, without credentials.
func (d DatabaseConfig) Redacted() string {
	u, err := url.Parse(d.DSN())
	if err != nil {
		return "postgres://***"
	}
	return fmt.Sprintf("postgres://%s%s", u.Host, u.Path)
}

// Enabled reports whether an object store endpoint is configured.
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != ""
}

// Enabled reports whether SMTP credentials are configured.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Username != "" && m.Password != ""
}
