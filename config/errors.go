package config

import (
	"errors"
	"fmt"
)

// ErrNoValue is the single failure signal of a read: no value could be produced.
// Every read failure below wraps it, so callers that do not care why can test for it alone.
var ErrNoValue = errors.New("no value present")

// ErrMalformedInput is returned when the content cannot be decoded.
var ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrNoValue)

// ErrUnsupportedSourceType is returned when the source is not one of the supported variants.
var ErrUnsupportedSourceType = fmt.Errorf("%w: unsupported source type", ErrNoValue)

// ErrPathNotFound is returned when a navigation path does not exist in the document.
var ErrPathNotFound = fmt.Errorf("%w: path not found", ErrNoValue)

// ErrEncode is returned when a value cannot be serialized.
var ErrEncode = errors.New("encode failed")

// ErrInvalidTarget is returned when a read target is not a non-nil pointer.
// It reports a caller mistake, so it does not wrap ErrNoValue.
var ErrInvalidTarget = errors.New("target must be a non-nil pointer")
