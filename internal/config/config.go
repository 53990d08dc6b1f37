// Package config loads pokedex settings from defaults, an optional yaml
// file, POKEDEX_* environment variables and bound command-line flags.
package config

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Catalog backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// EnvPrefix is prepended to every environment override, e.g. POKEDEX_API_TIMEOUT
const EnvPrefix = "POKEDEX"

// Config is the effective configuration of the CLI
type Config struct {
	API struct {
		BaseURL   string        `mapstructure:"base_url" yaml:"base_url"`
		Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
		ListLimit int           `mapstructure:"list_limit" yaml:"list_limit"`
		UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	} `mapstructure:"api" yaml:"api"`

	Catalog struct {
		Backend string        `mapstructure:"backend" yaml:"backend"`
		TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
		Scope   string        `mapstructure:"scope" yaml:"scope"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Redis struct {
		Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
		PoolSize int    `mapstructure:"pool_size" yaml:"pool_size"`
		UseTLS   bool   `mapstructure:"use_tls" yaml:"use_tls"`
	} `mapstructure:"redis" yaml:"redis"`

	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
}

// SetDefaults registers every key with its default so env overrides resolve
// even when no config file is present.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://pokeapi.co/api/v2/")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.list_limit", 100000)
	v.SetDefault("api.user_agent", "pokedex/1.0")
	v.SetDefault("catalog.backend", BackendMemory)
	v.SetDefault("catalog.ttl", "24h")
	v.SetDefault("catalog.scope", "global")
	v.SetDefault("redis.endpoint", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("log.level", "info")
}

// Load reads configuration into v and decodes it. A missing config file is
// not an error; an unreadable or malformed one is. Flags must be bound to v
// before calling Load for them to take precedence.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pokedex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pokedex")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field rules that viper cannot express
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("api.base_url", c.API.BaseURL, vb)
	if c.API.Timeout < 0 {
		vb.Field("api.timeout", "must not be negative")
	}
	errors.ValidateRange("api.list_limit", c.API.ListLimit, 1, 1000000, vb)

	errors.ValidateEnum("catalog.backend", c.Catalog.Backend, []string{BackendMemory, BackendRedis}, vb)
	errors.ValidateRequired("catalog.scope", c.Catalog.Scope, vb)
	if c.Catalog.Backend == BackendRedis {
		errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
		if c.Redis.PoolSize < 0 {
			vb.Field("redis.pool_size", "must not be negative")
		}
	}

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}
