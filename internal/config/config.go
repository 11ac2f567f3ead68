// Package config loads service settings from an optional YAML file and
// SUPPLYOPS_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SUPPLYOPS"

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	Store      StoreConfig      `mapstructure:"store"`
	DynamoDB   DynamoDBConfig   `mapstructure:"dynamodb"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Lock       LockConfig       `mapstructure:"lock"`
	Escalation EscalationConfig `mapstructure:"escalation"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type DynamoDBConfig struct {
	Region   string       `mapstructure:"region"`
	Endpoint string       `mapstructure:"endpoint"`
	Tables   TablesConfig `mapstructure:"tables"`
	// CreateTables creates missing tables and their indexes at startup.
	CreateTables bool `mapstructure:"create_tables"`
}

type TablesConfig struct {
	Orders     string `mapstructure:"orders"`
	Links      string `mapstructure:"links"`
	Complaints string `mapstructure:"complaints"`
	Incidents  string `mapstructure:"incidents"`
}

// RedisConfig is optional. With an empty Addr the service uses the
// in-process lock and publishes no events.
type RedisConfig struct {
	Addr          string `mapstructure:"addr"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db"`
	EventsChannel string `mapstructure:"events_channel"`
}

type LockConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type EscalationConfig struct {
	DefaultSeverity string `mapstructure:"default_severity"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.tables.orders", "supplyops_orders")
	v.SetDefault("dynamodb.tables.links", "supplyops_links")
	v.SetDefault("dynamodb.tables.complaints", "supplyops_complaints")
	v.SetDefault("dynamodb.tables.incidents", "supplyops_incidents")
	v.SetDefault("dynamodb.create_tables", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.events_channel", "supplyops.lifecycle")
	v.SetDefault("lock.ttl", 5*time.Second)
	v.SetDefault("lock.retries", 20)
	v.SetDefault("lock.retry_delay", 50*time.Millisecond)
	v.SetDefault("escalation.default_severity", "MEDIUM")
}

// Load reads configPath when non-empty, then applies environment overrides
// such as SUPPLYOPS_STORE_BACKEND or SUPPLYOPS_DYNAMODB_TABLES_ORDERS.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.Escalation.DefaultSeverity = strings.ToUpper(strings.TrimSpace(cfg.Escalation.DefaultSeverity))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port == "" {
		return fmt.Errorf("http.port is required")
	}
	switch c.Store.Backend {
	case BackendMemory:
	case BackendDynamoDB:
		t := c.DynamoDB.Tables
		if t.Orders == "" || t.Links == "" || t.Complaints == "" || t.Incidents == "" {
			return fmt.Errorf("dynamodb.tables.* are required for the dynamodb backend")
		}
		if c.DynamoDB.Region == "" {
			return fmt.Errorf("dynamodb.region is required for the dynamodb backend")
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q", BackendMemory, BackendDynamoDB, c.Store.Backend)
	}
	switch c.Escalation.DefaultSeverity {
	case "LOW", "MEDIUM", "HIGH":
	default:
		return fmt.Errorf("escalation.default_severity must be LOW, MEDIUM or HIGH")
	}
	if c.Lock.Retries < 0 {
		return fmt.Errorf("lock.retries must not be negative")
	}
	if c.Lock.TTL <= 0 {
		return fmt.Errorf("lock.ttl must be positive")
	}
	return nil
}
