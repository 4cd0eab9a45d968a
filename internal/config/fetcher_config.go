package config

import "time"

// FetcherConfig defines configuration for the robots.txt fetcher.
type FetcherConfig struct {
	// HTTP timeout per attempt, in seconds.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	// Maximum number of connection attempts before giving up.
	MaxAttempts int `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" validate:"omitempty,min=1,max=20"`
	// Delay between connection attempts, in seconds.
	RetryWaitSeconds int `json:"retry_wait_seconds,omitempty" yaml:"retry_wait_seconds,omitempty" validate:"omitempty,min=0,max=3600"`
}

// NewDefaultFetcherConfig creates default fetcher configuration
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		TimeoutSeconds:   40,
		MaxAttempts:      5,
		RetryWaitSeconds: 120,
	}
}

// Timeout returns the per-attempt HTTP timeout as a duration.
func (c FetcherConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryWait returns the inter-attempt delay as a duration.
func (c FetcherConfig) RetryWait() time.Duration {
	return time.Duration(c.RetryWaitSeconds) * time.Second
}
