package json

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
)

// Parse decodes the section of src addressed by path into target.
// The path uses colon (:) as separator; an empty path decodes the whole document.
// Like Read, target is left untouched on failure.
func (f *Formatter) Parse(src config.Source, target any, path string) error {
	if path == "" {
		return f.Read(src, target)
	}

	err := f.parsePath(src, target, path)
	if err != nil {
		f.logger.Debug("json parse failed", slog.String("path", path), slog.Any("error", err))

		return err
	}

	return nil
}

func (f *Formatter) parsePath(src config.Source, target any, path string) error {
	dest, err := targetValue(target)
	if err != nil {
		return err
	}

	data, err := f.load(src)
	if err != nil {
		return err
	}

	if !f.codec.Valid(data) {
		return fmt.Errorf("%w: invalid json document", config.ErrMalformedInput)
	}

	value := f.codec.Get(data, splitPath(path)...)
	if value.LastError() != nil {
		return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
	}

	section, err := f.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: reading path %q: %w", config.ErrMalformedInput, path, err)
	}

	err = f.decode(section, dest)
	if err != nil {
		return fmt.Errorf("%w: decoding path %q: %w", config.ErrMalformedInput, path, err)
	}

	return nil
}

// splitPath converts "api:permissions" into the key list jsoniter.API.Get expects.
func splitPath(path string) []any {
	parts := strings.Split(path, ":")
	keys := make([]any, len(parts))

	for i, part := range parts {
		keys[i] = part
	}

	return keys
}
