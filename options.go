package catalogd

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver      string // "memory", "redis" or "valkey"
	datasetPath string
	addrs       []string
	username    string
	password    string
	database    int

	readinessTimeout time.Duration
	logger           *zap.Logger
}

// WithMemory serves the catalog from the embedded sample dataset. This is
// the default.
func WithMemory() Option {
	return func(c *clientConfig) {
		c.driver = "memory"
	}
}

// WithDataset serves the catalog from a JSON file instead of the embedded
// dataset. Implies the memory driver.
func WithDataset(path string) Option {
	return func(c *clientConfig) {
		c.driver = "memory"
		c.datasetPath = path
	}
}

// WithRedis loads the catalog from a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithValkey loads the catalog from a Valkey instance.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithReadinessTimeout bounds the wait for store connectivity at startup.
// Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}

// WithLogger enables structured logging for catalog loading.
// Default: no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
