package hjarta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsonformatter "github.com/0xalexb/hjarta-config/config/formatter/json"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application carrying the shared logger and a JSON config formatter.
type App struct {
	app       *fx.App
	formatter *jsonformatter.Formatter
}

// NewApp creates a new App. Construction errors surface from Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, &app.formatter)

	return app
}

func configure(options *Options, formatter **jsonformatter.Formatter) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}

	logger := createLogger(loggerConfig, options.LogOutput)

	// a redirected logger stays local to the app
	if options.LogOutput == nil {
		slog.SetDefault(logger)
	}

	logger.Debug("configuring app", slog.String("version", Version), slog.Int("modules", len(options.Modules)))

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		jsonformatter.NewModule(options.Formatter...),
		fx.Populate(formatter),
		fx.Options(options.Modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return logging.NewLogger(config, w)
}

// Formatter returns the JSON formatter built by the container, or nil if construction failed.
func (app *App) Formatter() *jsonformatter.Formatter {
	if app == nil {
		return nil
	}

	return app.formatter
}

// Start starts the Fx application.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
