package monotonic

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// weakeningChecks is the process-wide switch read by every Incremental.
var weakeningChecks atomic.Bool

// SetWeakeningChecks turns weakening verification on or off for every
// Incremental in the process. It is off by default. Instances built with
// WithWeakeningChecks verify regardless of this switch.
//
// The check is O(n) per call and intended for tests and debugging.
func SetWeakeningChecks(on bool) {
	weakeningChecks.Store(on)
}

// WeakeningChecksEnabled reports the state of the process-wide switch.
func WeakeningChecksEnabled() bool {
	return weakeningChecks.Load()
}

// Option customizes an Incremental at construction time.
type Option func(*config)

// config is the resolved set of options of an Incremental.
type config struct {
	checks bool
	logger *slog.Logger
}

// defaultConfig returns checks off and a logger that drops every record.
func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000),
		})),
	}
}

// WithWeakeningChecks enables weakening verification for one instance,
// independently of SetWeakeningChecks.
func WithWeakeningChecks() Option {
	return func(c *config) {
		c.checks = true
	}
}

// WithLogger sets the structured logger used for check diagnostics.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("monotonic: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
