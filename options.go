package hjarta

import (
	"io"

	jsonformatter "github.com/0xalexb/hjarta-config/config/formatter/json"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	Formatter []jsonformatter.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithFormatter configures the JSON formatter provided to the container.
// Repeated calls accumulate; extensions are registered in call order.
func WithFormatter(formatterOpts ...jsonformatter.Option) Option {
	return func(opts *Options) {
		opts.Formatter = append(opts.Formatter, formatterOpts...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output. Defaults to os.Stderr, in which case the
// app logger also becomes the slog default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
