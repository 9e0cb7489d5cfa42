package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Gateway     GatewayConfig     `mapstructure:"gateway"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Proxy       ProxyConfig       `mapstructure:"proxy"`
	Auth        AuthConfig        `mapstructure:"auth"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// GatewayConfig describes the bank's remote funds-transfer endpoints.
type GatewayConfig struct {
	SandboxURL      string        `mapstructure:"sandbox_url"`
	ProductionURL   string        `mapstructure:"production_url"`
	ActionNamespace string        `mapstructure:"action_namespace"`
	Timeout         time.Duration `mapstructure:"timeout"`       // 0 = transport default (none)
	PendingCodes    []string      `mapstructure:"pending_codes"` // response codes callers treat as pending
	UseSandbox      bool          `mapstructure:"use_sandbox"`
	Concurrency     int           `mapstructure:"concurrency"` // fan-out limit for batch helpers
}

// CredentialsConfig holds the shared secrets embedded in every signed request.
// Only client-side processes need these; the proxy never reads them.
type CredentialsConfig struct {
	AccessCode string `mapstructure:"access_code"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
}

type ProxyConfig struct {
	URL          string `mapstructure:"url"`   // where clients reach the proxy front
	Token        string `mapstructure:"token"` // bearer token clients present to the proxy
	AllowOrigin  string `mapstructure:"allow_origin"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// AuthConfig enables the bearer-token gate on the relay when Secret is set.
type AuthConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	Expiry time.Duration `mapstructure:"expiry"`
}

type RateLimitConfig struct {
	Limit  int64         `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GAPS_.
// Nested keys use underscore: GAPS_GATEWAY_SANDBOX_URL, GAPS_CREDENTIALS_PASSWORD, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("gateway.sandbox_url", "https://gtweb.gtbank.com/Gaps_FileUploader/FileUploader.asmx")
	v.SetDefault("gateway.production_url", "https://ebank2.gtbank.com/Gaps_FileUploader/FileUploader.asmx")
	v.SetDefault("gateway.action_namespace", "http://tempuri.org/")
	v.SetDefault("gateway.timeout", "0s")
	v.SetDefault("gateway.pending_codes", []string{})
	v.SetDefault("gateway.use_sandbox", true)
	v.SetDefault("gateway.concurrency", 4)
	v.SetDefault("credentials.access_code", "")
	v.SetDefault("credentials.username", "")
	v.SetDefault("credentials.password", "")
	v.SetDefault("proxy.url", "http://localhost:8080/")
	v.SetDefault("proxy.token", "")
	v.SetDefault("proxy.allow_origin", "*")
	v.SetDefault("proxy.max_body_bytes", 1<<20)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "gaps-gateway")
	v.SetDefault("auth.expiry", "24h")
	v.SetDefault("ratelimit.limit", 120)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "gaps_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// GAPS_GATEWAY_SANDBOX_URL -> gateway.sandbox_url
	v.SetEnvPrefix("GAPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	if c.Gateway.SandboxURL == "" || c.Gateway.ProductionURL == "" {
		return errors.New("gateway.sandbox_url and gateway.production_url are required")
	}
	if c.Gateway.ActionNamespace == "" {
		return errors.New("gateway.action_namespace is required")
	}
	return nil
}
