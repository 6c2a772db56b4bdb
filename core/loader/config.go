package loader

import "time"

const (
	// DefaultMaxAttempts is the attempt budget used when none is configured.
	DefaultMaxAttempts = 3
	// DefaultBackoff is the base backoff used when none is configured. The
	// wait after failed attempt k is k*DefaultBackoff.
	DefaultBackoff = 1000 * time.Millisecond
)

// Config holds configuration for the resource loader.
type Config struct {
	// MaxAttempts is the number of load attempts before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// BackoffMillis is the base backoff in milliseconds between attempts.
	BackoffMillis int `mapstructure:"backoff_millis" default:"1000"`
}

func (c Config) attempts() int {
	if c.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

func (c Config) backoffBase() time.Duration {
	if c.BackoffMillis <= 0 {
		return DefaultBackoff
	}
	return time.Duration(c.BackoffMillis) * time.Millisecond
}
