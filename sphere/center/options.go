package center

import (
	"log/slog"

	"github.com/cwbudde/algo-sphere/sphere/grid"
)

// DefaultTruncation is the spectral truncation used when none is given.
const DefaultTruncation = 85

// Config holds Preprocessor construction settings.
type Config struct {
	Truncation int
	GridType   grid.Type
	Logger     *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns truncation 85 on a regular grid with logging
// discarded.
func DefaultConfig() Config {
	return Config{
		Truncation: DefaultTruncation,
		GridType:   grid.Regular,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithTruncation sets the spectral truncation degree.
func WithTruncation(n int) Option {
	return func(cfg *Config) {
		cfg.Truncation = n
	}
}

// WithGridType sets the latitude sampling scheme.
func WithGridType(t grid.Type) Option {
	return func(cfg *Config) {
		cfg.GridType = t
	}
}

// WithLogger sets the logger for construction diagnostics. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
