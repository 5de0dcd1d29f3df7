package json

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"unicode/utf8"

	"github.com/0xalexb/hjarta-config/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/knadh/koanf/v2"
)

// ErrEmptyData is returned when the source holds no content.
var ErrEmptyData = errors.New("empty data")

var (
	_ config.Formatter = (*Formatter)(nil)
	_ config.Parser    = (*Formatter)(nil)
	_ koanf.Parser     = (*Formatter)(nil)
)

// Formatter converts configuration between JSON and Go values.
// The codec is fixed at construction and safe for concurrent use afterwards.
type Formatter struct {
	codec  jsoniter.API
	logger *slog.Logger
}

// New builds a Formatter. Extensions are registered on the codec in the order given,
// before the Formatter is returned.
func New(opts ...Option) *Formatter {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	codec := options.Codec
	if codec == nil {
		codec = DefaultCodec()
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for i, ext := range options.Extensions {
		codec.RegisterExtension(ext)
		logger.Debug("json extension registered",
			slog.Int("index", i),
			slog.String("extension", fmt.Sprintf("%T", ext)),
		)
	}

	return &Formatter{
		codec:  codec,
		logger: logger,
	}
}

// DefaultCodec returns a new codec with compact output, sorted map keys and HTML escaping.
// Each call returns an independent codec, so extensions registered on one never leak into another.
func DefaultCodec() jsoniter.API {
	return jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
}

// Read decodes src into target, which must be a non-nil pointer.
// The source is consumed. Content and source failures wrap config.ErrNoValue;
// a target that is not a non-nil pointer yields config.ErrInvalidTarget.
// The value behind target is replaced only when decoding succeeds.
func (f *Formatter) Read(src config.Source, target any) error {
	err := f.read(src, target)
	if err != nil {
		f.logger.Debug("json read failed", slog.String("source", fmt.Sprintf("%T", src)), slog.Any("error", err))

		return err
	}

	return nil
}

func (f *Formatter) read(src config.Source, target any) error {
	dest, err := targetValue(target)
	if err != nil {
		return err
	}

	data, err := f.load(src)
	if err != nil {
		return err
	}

	// the codec reports a truncated document as a clean EOF
	if !f.codec.Valid(data) {
		return fmt.Errorf("%w: invalid json document", config.ErrMalformedInput)
	}

	err = f.decode(data, dest)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrMalformedInput, err)
	}

	return nil
}

// targetValue returns the element target points to.
func targetValue(target any) (reflect.Value, error) {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: got %T", config.ErrInvalidTarget, target)
	}

	return ptr.Elem(), nil
}

// decode unmarshals data into a fresh value and stores it in dest only on success.
func (f *Formatter) decode(data []byte, dest reflect.Value) error {
	fresh := reflect.New(dest.Type())

	err := f.codec.Unmarshal(data, fresh.Interface())
	if err != nil {
		return err
	}

	dest.Set(fresh.Elem())

	return nil
}

func (f *Formatter) load(src config.Source) ([]byte, error) {
	data, err := config.ReadAll(src)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %w", config.ErrMalformedInput, ErrEmptyData)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", config.ErrMalformedInput)
	}

	return data, nil
}

// Write encodes v as compact JSON. Map keys are written in sorted order.
func (f *Formatter) Write(v any) (string, error) {
	out, err := f.codec.MarshalToString(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", config.ErrEncode, err)
	}

	return out, nil
}
