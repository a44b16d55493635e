package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // display timezone must resolve on minimal images

	"github.com/caarlos0/env/v11"
	"github.com/cloudpower/site-backend/pkg/logger"
	mysqldrv "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	CORS      CORSConfig      `yaml:"cors"`
	Storage   StorageConfig   `yaml:"storage"`
	Mail      MailConfig      `yaml:"mail"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port     int    `yaml:"port" env:"PORT"`
	Mode     string `yaml:"mode" env:"APP_MODE"` // development | production
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	TimeZone string `yaml:"timezone" env:"TZ_DISPLAY"`
}

// DatabaseConfig database settings
type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"DB_DRIVER"` // mysql | postgres | sqlite
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            int    `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	Path            string `yaml:"path" env:"DB_PATH"` // sqlite file
	SSLMode         string `yaml:"sslmode"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	AutoMigrate     bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// RedisConfig Redis settings; an empty host disables Redis
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST"`
	Port     int    `yaml:"port" env:"REDIS_PORT"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig token settings
type JWTConfig struct {
	Secret    string `yaml:"secret" env:"JWT_SECRET"`
	ExpiresIn int    `yaml:"expires_in" env:"JWT_EXPIRES_IN"` // seconds
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins" env:"ALLOW_ORIGIN"` // comma separated
}

// StorageConfig S3 compatible object storage settings
type StorageConfig struct {
	Enabled         bool   `yaml:"enabled" env:"STORAGE_ENABLED"`
	Endpoint        string `yaml:"endpoint" env:"STORAGE_ENDPOINT"`
	Region          string `yaml:"region" env:"STORAGE_REGION"`
	AccessKeyID     string `yaml:"access_key_id" env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	Bucket          string `yaml:"bucket" env:"STORAGE_BUCKET"`
	CDNURL          string `yaml:"cdn_url" env:"STORAGE_CDN_URL"`
	BasePath        string `yaml:"base_path"`
	ForcePathStyle  bool   `yaml:"force_path_style"`
	MaxUploadMB     int    `yaml:"max_upload_mb" env:"STORAGE_MAX_UPLOAD_MB"`
}

// MailConfig SMTP settings for contact notifications
type MailConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	FromName string `yaml:"from_name"`
	NotifyTo string `yaml:"notify_to" env:"CONTACT_NOTIFY_EMAIL"`
}

// RateLimitConfig request limits per client IP
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_PER_MINUTE"`
	ContactPerMinute  int `yaml:"contact_per_minute" env:"CONTACT_RATE_LIMIT_PER_MINUTE"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     3000,
			Mode:     "development",
			LogLevel: "info",
			TimeZone: "Asia/Taipei",
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "localhost",
			Port:            3306,
			User:            "root",
			DBName:          "site",
			Path:            "site.db",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Port:     6379,
			PoolSize: 10,
		},
		JWT: JWTConfig{
			ExpiresIn: 86400,
		},
		CORS: CORSConfig{
			AllowOrigins: "http://localhost:3000",
		},
		Storage: StorageConfig{
			BasePath:    "",
			MaxUploadMB: 10,
		},
		Mail: MailConfig{
			Port: 587,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			ContactPerMinute:  5,
		},
	}
}

// Load reads the YAML file at path (a missing file falls back to the
// defaults), overlays the variables named in the env tags and validates
// the result. Set variables that do not parse are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// env-only configuration
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("jwt secret is required (JWT_SECRET)")
		}
		c.JWT.Secret = "dev-only-insecure-secret"
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("jwt expires_in must be positive")
	}
	if _, err := time.LoadLocation(c.Server.TimeZone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Server.TimeZone, err)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return errors.New("storage bucket is required when storage is enabled")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == "development" || c.Server.Mode == "dev" || c.Server.Mode == "local"
}

// Location returns the display timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Origins splits the comma separated CORS origin list
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// GetDSN returns the driver specific connection string
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	case "sqlite":
		return d.Path
	default:
		mc := mysqldrv.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
		mc.DBName = d.DBName
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// LogResolved logs the effective configuration without secrets
func LogResolved(c *Config) {
	logger.GetLogger().Info().
		Str("mode", c.Server.Mode).
		Int("port", c.Server.Port).
		Str("timezone", c.Server.TimeZone).
		Str("db_driver", c.Database.Driver).
		Str("db_host", c.Database.Host).
		Str("db_name", c.Database.DBName).
		Bool("redis", c.Redis.Host != "").
		Bool("storage", c.Storage.Enabled).
		Bool("mail", c.Mail.Host != "").
		Strs("cors_origins", c.CORS.Origins()).
		Msg("configuration resolved")
}
