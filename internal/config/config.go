package config

import (
	"fmt"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Auth Configuration (JWT signing)
	Auth AuthConfig `json:"auth"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (GridFS media storage)
	MongoDB MongoConfig `json:"mongodb"`

	// Firebase Configuration (push notifications)
	Firebase FirebaseConfig `json:"firebase"`

	// Event bus configuration (interaction counters, notifications)
	Events EventConfig `json:"events"`

	// Feed composition configuration
	Feed FeedConfig `json:"feed"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// AuthConfig contains token signing configuration. The secret is required;
// startup fails when it is missing.
type AuthConfig struct {
	JWTSecret string `json:"-"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains GridFS media storage configuration
type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// FirebaseConfig contains Firebase Cloud Messaging configuration
type FirebaseConfig struct {
	ProjectID           string `json:"project_id"`
	CredentialsFilePath string `json:"credentials_file_path"`
	Enabled             bool   `json:"enabled"`
}

// EventConfig controls the in-process interaction event bus.
type EventConfig struct {
	Workers           int `json:"workers"`             // Number of worker goroutines
	ChannelBufferSize int `json:"channel_buffer_size"` // Channel buffer size
}

// FeedConfig controls feed composition. Quotas are per-page candidate counts
// per source; the composer tops up from remaining candidates when a source
// comes back short.
type FeedConfig struct {
	PageSize         int `json:"page_size"`
	FollowingQuota   int `json:"following_quota"`
	RecommendedQuota int `json:"recommended_quota"`
	PopularQuota     int `json:"popular_quota"`
	NewQuota         int `json:"new_quota"`
	RandomQuota      int `json:"random_quota"`
	NeighborFanOut   int `json:"neighbor_fan_out"` // collaborative-filter neighbor bound per content
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, console
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) MongoURI() string {
	if cfg.MongoDB.Host == "" {
		cfg.MongoDB.Host = "localhost"
	}
	if cfg.MongoDB.Port == "" {
		cfg.MongoDB.Port = "27017"
	}

	if cfg.MongoDB.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			cfg.MongoDB.Username, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}
