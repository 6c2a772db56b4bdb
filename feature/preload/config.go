package preload

import (
	"strings"
	"time"
)

// Config holds configuration for opportunistic preloading.
type Config struct {
	// Enabled toggles all preloading behavior.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Critical is a comma-separated list of object keys loaded eagerly at
	// startup (and by the warm command).
	Critical string `mapstructure:"critical" default:""`
	// Idle is a comma-separated list of object keys queued for the idle
	// warmer.
	Idle string `mapstructure:"idle" default:""`
	// IdleAfterSeconds is how long the server must be quiet before the idle
	// warmer loads the next queued key.
	IdleAfterSeconds int `mapstructure:"idle_after_seconds" default:"30"`
	// IdleIntervalSeconds is how often the idle warmer checks for quietness.
	IdleIntervalSeconds int `mapstructure:"idle_interval_seconds" default:"5"`
	// Concurrency bounds the parallelism of the critical batch.
	Concurrency int `mapstructure:"concurrency" default:"4"`
}

// CriticalKeys returns the parsed critical-path object keys.
func (c Config) CriticalKeys() []string {
	return splitKeys(c.Critical)
}

// IdleKeys returns the parsed idle-warmer queue.
func (c Config) IdleKeys() []string {
	return splitKeys(c.Idle)
}

// IdleAfter returns the quiet period required before idle warming.
func (c Config) IdleAfter() time.Duration {
	if c.IdleAfterSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.IdleAfterSeconds) * time.Second
}

// IdleInterval returns the idle warmer's polling interval.
func (c Config) IdleInterval() time.Duration {
	if c.IdleIntervalSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.IdleIntervalSeconds) * time.Second
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return 4
	}
	return c.Concurrency
}

func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
