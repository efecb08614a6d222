package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Payment   PaymentConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
	Notify    NotificationConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration. An empty NSQDAddress
// disables publishing and notifications are only logged.
type NSQConfig struct {
	NSQDAddress       string
	LookupdAddresses  []string
	NotificationTopic string
	NotifierChannel   string
}

// PaymentConfig contains checkout provider configuration
type PaymentConfig struct {
	StripeAPIKey        string
	StripeWebhookSecret string
	Currency            string
	SourceTag           string
}

// CatalogConfig contains catalog service configuration
type CatalogConfig struct {
	CacheTTL time.Duration
}

// RateLimitConfig configures the Redis fixed-window limiter on public write endpoints
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// NotificationConfig configures outgoing email notifications
type NotificationConfig struct {
	AdminEmail  string
	FromAddress string
	StoreName   string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}
