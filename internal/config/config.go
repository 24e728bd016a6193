package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
	DefaultTenant string `mapstructure:"DEFAULT_TENANT"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	GroupsTable   string `mapstructure:"GROUPS_TABLE"`
	MembersTable  string `mapstructure:"MEMBERS_TABLE"`
	QuotesTable   string `mapstructure:"QUOTES_TABLE"`
	ReviewsTable  string `mapstructure:"REVIEWS_TABLE"`
	PoliciesTable string `mapstructure:"POLICIES_TABLE"`

	RedisAddr                string `mapstructure:"REDIS_ADDR"`
	RedisPassword            string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                  int    `mapstructure:"REDIS_DB"`
	DashboardCacheTTLSeconds int    `mapstructure:"DASHBOARD_CACHE_TTL_SECONDS"`

	GeminiAPIKey            string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel             string `mapstructure:"GEMINI_MODEL"`
	NarrativeTimeoutSeconds int    `mapstructure:"NARRATIVE_TIMEOUT_SECONDS"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "DEFAULT_TENANT",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"GROUPS_TABLE", "MEMBERS_TABLE", "QUOTES_TABLE", "REVIEWS_TABLE", "POLICIES_TABLE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DASHBOARD_CACHE_TTL_SECONDS",
	"GEMINI_API_KEY", "GEMINI_MODEL", "NARRATIVE_TIMEOUT_SECONDS",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DEFAULT_TENANT", "default")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("GROUPS_TABLE", "stoploss_groups")
	v.SetDefault("MEMBERS_TABLE", "stoploss_members")
	v.SetDefault("QUOTES_TABLE", "stoploss_quotes")
	v.SetDefault("REVIEWS_TABLE", "stoploss_underwriting_reviews")
	v.SetDefault("POLICIES_TABLE", "stoploss_policies")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DASHBOARD_CACHE_TTL_SECONDS", 60)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("NARRATIVE_TIMEOUT_SECONDS", 15)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// LLMEnabled reports whether Gemini narratives can be attempted.
func (c *Config) LLMEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

func (c *Config) DashboardCacheTTL() time.Duration {
	return time.Duration(c.DashboardCacheTTLSeconds) * time.Second
}

func (c *Config) NarrativeTimeout() time.Duration {
	return time.Duration(c.NarrativeTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is usable before any client is built.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DashboardCacheTTLSeconds <= 0 {
		return fmt.Errorf("DASHBOARD_CACHE_TTL_SECONDS must be positive, got %d", c.DashboardCacheTTLSeconds)
	}
	if c.NarrativeTimeoutSeconds <= 0 {
		return fmt.Errorf("NARRATIVE_TIMEOUT_SECONDS must be positive, got %d", c.NarrativeTimeoutSeconds)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"json\" or \"console\", got %q", c.LogFormat)
	}
	return nil
}
