package config

import (
	"fmt"
	"log/slog"
)

// Reader decodes a Source into target. Failures wrap ErrNoValue.
type Reader interface {
	Read(src Source, target any) error
}

// Writer encodes a value into its textual form. Failures wrap ErrEncode.
type Writer interface {
	Write(v any) (string, error)
}

// Formatter converts configuration both ways.
type Formatter interface {
	Reader
	Writer
}

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/formatter/json for an implementation.
type Parser interface {
	Parse(src Source, target any, path string) error
}

// DataFetcher defines an interface for obtaining raw configuration input.
type DataFetcher interface {
	Fetch() (Source, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// ReadAs reads src into a new value of type T.
// On failure the zero T is returned together with the error.
func ReadAs[T any](reader Reader, src Source) (T, error) {
	var target T

	err := reader.Read(src, &target)
	if err != nil {
		var zero T

		return zero, err
	}

	return target, nil
}

// Provider returns a function that fetches, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataFetcher DataFetcher) (*T, error) {
		src, err := dataFetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("fetching source error: %w", err)
		}

		err = parser.Parse(src, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
