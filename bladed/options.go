package bladed

import "go.uber.org/zap"

// Option configures a ResultSet at construction.
type Option func(*ResultSet)

// WithUnload makes every Get release the decoded payload immediately after
// extracting the requested slice, trading repeated I/O for bounded memory
// when many large result sets are open at once.
func WithUnload() Option {
	return func(rs *ResultSet) {
		rs.unload = true
	}
}

// WithLogger sets the logger used for scan diagnostics and data-consistency
// warnings. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(rs *ResultSet) {
		if logger != nil {
			rs.logger = logger
		}
	}
}
