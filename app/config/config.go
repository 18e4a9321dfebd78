package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries the process tunables. Engine data (gazetteer and
// neighborhood directory) is embedded, not configured here.
type Config struct {
	Port string
	Env  string

	RedisEnabled bool
	RedisURL     string
	RedisTTL     time.Duration

	ResolutionCacheSize int
	SuggestionCacheSize int

	// MinResolveLength is the shortest address worth resolving; the UI
	// fires resolution once typed text crosses it.
	MinResolveLength int

	// ProjectorSeed seeds the proximity-term pick; any fixed value makes
	// generator context reproducible across restarts.
	ProjectorSeed int64
}

// Load reads configuration from an optional yaml file plus environment
// overrides, with defaults suitable for local development.
func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.url", "redis://localhost:6379")
	viper.SetDefault("redis.ttl", "24h")
	viper.SetDefault("cache.resolution_size", 10000)
	viper.SetDefault("cache.suggestion_size", 2048)
	viper.SetDefault("engine.min_resolve_length", 10)
	viper.SetDefault("engine.projector_seed", 1)

	viper.AutomaticEnv()

	// Missing config file is fine; defaults plus env cover it.
	_ = viper.ReadInConfig()

	return &Config{
		Port:                viper.GetString("app.port"),
		Env:                 viper.GetString("app.env"),
		RedisEnabled:        viper.GetBool("redis.enabled"),
		RedisURL:            viper.GetString("redis.url"),
		RedisTTL:            viper.GetDuration("redis.ttl"),
		ResolutionCacheSize: viper.GetInt("cache.resolution_size"),
		SuggestionCacheSize: viper.GetInt("cache.suggestion_size"),
		MinResolveLength:    viper.GetInt("engine.min_resolve_length"),
		ProjectorSeed:       viper.GetInt64("engine.projector_seed"),
	}, nil
}
