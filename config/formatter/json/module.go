package json

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

const moduleName = "json-formatter"

// NewModule creates an Fx module that provides a *Formatter built from opts.
// The Formatter is also exposed as config.Formatter and config.Parser.
// A *slog.Logger in the container is used unless opts set one explicitly.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module(moduleName,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) *Formatter {
					return New(append([]Option{WithLogger(logger)}, opts...)...)
				},
				fx.ParamTags(`optional:"true"`),
				fx.As(fx.Self()),
				fx.As(new(config.Formatter)),
				fx.As(new(config.Parser)),
			),
		),
	)
}
