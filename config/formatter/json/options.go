package json

import (
	"log/slog"

	jsoniter "github.com/json-iterator/go"
)

// Options holds the construction settings of a Formatter.
type Options struct {
	// Codec replaces the default codec. Nil selects DefaultCodec.
	Codec jsoniter.API
	// Extensions are registered on Codec by New, in order.
	Extensions []jsoniter.Extension
	Logger     *slog.Logger
}

// Option defines a function type for applying Formatter options.
type Option func(*Options)

// WithCodec replaces the default codec with the given one.
func WithCodec(codec jsoniter.API) Option {
	return func(opts *Options) {
		opts.Codec = codec
	}
}

// WithExtensions queues extensions for registration. It may be called multiple times;
// registration follows call order.
func WithExtensions(extensions ...jsoniter.Extension) Option {
	return func(opts *Options) {
		opts.Extensions = append(opts.Extensions, extensions...)
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
