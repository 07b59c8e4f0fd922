package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported connection protocols. ProtocolTCP is used by network databases,
// ProtocolMem and ProtocolFile select an in-memory or file-backed SQLite store.
const (
	ProtocolTCP  = "tcp"
	ProtocolMem  = "mem"
	ProtocolFile = "file"
)

// DatabaseConfig holds the relational store connection settings.
// Driver, Protocol, User, Password and Name describe the connection; the rest
// tunes Postgres and the database/sql pool.
type DatabaseConfig struct {
	Driver             string `koanf:"db_driver" validate:"required,oneof=postgres sqlite"`
	Protocol           string `koanf:"db_protocol" validate:"required,oneof=tcp mem file"`
	Host               string `koanf:"db_host" validate:"required_if=Driver postgres"`
	Port               string `koanf:"db_port"`
	User               string `koanf:"db_user" validate:"required_if=Driver postgres"`
	Password           string `koanf:"db_password"`
	Name               string `koanf:"db_name" validate:"required"`
	SSLMode            string `koanf:"db_sslmode"`
	MaxOpenConns       int    `koanf:"db_max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `koanf:"db_max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `koanf:"db_conn_max_lifetime_sec" validate:"gte=0"`
	// InitData enables loading and clearing the seed rows on startup.
	InitData bool `koanf:"db_init_data"`
}

// CacheConfig selects the cache backend used by the service layer.
type CacheConfig struct {
	Driver    string `koanf:"cache_driver" validate:"oneof=memory redis"`
	TTLSec    int    `koanf:"cache_ttl_sec" validate:"gte=0"`
	RedisAddr string `koanf:"redis_addr" validate:"required_if=Driver redis"`
	RedisDB   int    `koanf:"redis_db"`
}

// MinIOConfig holds object storage settings for MinIO.
// Storage is optional: an empty Endpoint disables the storage routes.
type MinIOConfig struct {
	Endpoint  string `koanf:"minio_endpoint"`
	AccessKey string `koanf:"minio_access_key"`
	SecretKey string `koanf:"minio_secret_key"`
	Bucket    string `koanf:"minio_bucket"`
	UseSSL    bool   `koanf:"minio_use_ssl"`
}

// Enabled reports whether an object store endpoint was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// HTTPConfig tunes the response middleware shared by every route.
type HTTPConfig struct {
	// CORSAllowOrigins is a comma separated list; "*" allows any origin.
	CORSAllowOrigins string `koanf:"cors_allow_origins" validate:"required"`
	CORSAllowHeaders string `koanf:"cors_allow_headers"`
	// CompressLevel maps to compress.Level: -1 disabled, 0 default, 1 speed, 2 size.
	CompressLevel int  `koanf:"compress_level" validate:"gte=-1,lte=2"`
	ETag          bool `koanf:"etag_enabled"`
	// CacheMaxAgeSec sets max-age on successful GET responses; 0 sends no-cache.
	CacheMaxAgeSec int `koanf:"cache_max_age_sec" validate:"gte=0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env      string         `koanf:"app_env" validate:"oneof=dev prod"`
	AppHost  string         `koanf:"app_host" validate:"excludes=:"`
	Port     string         `koanf:"port" validate:"required"`
	LogLevel string         `koanf:"log_level"`
	Database DatabaseConfig `koanf:",squash"`
	Cache    CacheConfig    `koanf:",squash"`
	MinIO    MinIOConfig    `koanf:",squash"`
	HTTP     HTTPConfig     `koanf:",squash"`
}

// ListenAddr is the host:port the HTTP server binds to.
// An empty AppHost listens on every interface.
func (c *AppConfig) ListenAddr() string {
	return net.JoinHostPort(c.AppHost, c.Port)
}

// Default returns the configuration used when no variable overrides it:
// an in-memory SQLite store with seed data, like a fresh development run.
func Default() *AppConfig {
	return &AppConfig{
		Env:      "dev",
		AppHost:  "localhost",
		Port:     "8080",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver:             DriverSQLite,
			Protocol:           ProtocolMem,
			Port:               "5432",
			Name:               "representantes",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
			InitData:           true,
		},
		Cache: CacheConfig{
			Driver: "memory",
			TTLSec: 60,
		},
		HTTP: HTTPConfig{
			CORSAllowOrigins: "*",
			CORSAllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
			ETag:             true,
		},
	}
}

// Load reads configuration from environment variables on top of Default.
// A .env file is auto-loaded by the binary via _ "github.com/joho/godotenv/autoload";
// real environment variables take precedence.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// DB_HOST -> db_host; names never contain the "." delimiter so keys stay flat.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
