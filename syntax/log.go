package syntax

import "log/slog"

// ParseOption configures optional ambient behavior of Parse and the
// format passes. The convention follows mdhender-tnrpt's cstParser: a
// struct field defaulting to slog.Default(), overridable by the caller.
type ParseOption func(*parseConfig)

// parseConfig holds everything a ParseOption can set. It is never
// consulted by the grammar itself — only by the coarse, low-frequency
// diagnostic logging described below — so the roundtrip invariant (§3)
// never depends on whether a caller supplied WithLogger.
type parseConfig struct {
	logger *slog.Logger
}

// WithLogger attaches logger for diagnostic logging during parsing and
// the format passes: entering the glue layer, item counts, which pass
// ran. Logging happens only at Debug level and never per-token; it is a
// breadcrumb, not an error channel (panics carry fatal conditions, per
// §7). A nil logger is treated as slog.Default().
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newParseConfig(opts []ParseOption) *parseConfig {
	c := &parseConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
