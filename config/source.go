package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// errInvalidUTF8 marks a character stream that yielded an undecodable rune.
var errInvalidUTF8 = errors.New("invalid UTF-8")

// Source is raw configuration input. It is closed over exactly three variants:
// ByteStream, CharStream and Text.
type Source interface {
	source()
}

// ByteStream is a UTF-8 encoded byte stream.
type ByteStream struct {
	R io.Reader
}

// CharStream is a stream of already decoded characters.
type CharStream struct {
	R io.RuneReader
}

// Text is configuration content held in memory.
type Text string

func (ByteStream) source() {}
func (CharStream) source() {}
func (Text) source()       {}

// SourceOf converts an arbitrary runtime value into a Source.
//
// Accepted values are a Source, a string, a []byte, an io.Reader (treated as bytes)
// and an io.RuneReader that is not also an io.Reader. Anything else yields
// ErrUnsupportedSourceType.
func SourceOf(v any) (Source, error) {
	switch value := v.(type) {
	case Source:
		return value, nil
	case string:
		return Text(value), nil
	case []byte:
		return ByteStream{R: bytes.NewReader(value)}, nil
	case io.Reader:
		return ByteStream{R: value}, nil
	case io.RuneReader:
		return CharStream{R: value}, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedSourceType, v)
}

// ReadAll consumes src and returns its content as UTF-8 bytes.
func ReadAll(src Source) ([]byte, error) {
	switch s := src.(type) {
	case Text:
		return []byte(s), nil
	case ByteStream:
		if s.R == nil {
			return nil, fmt.Errorf("%w: nil byte stream", ErrUnsupportedSourceType)
		}

		data, err := io.ReadAll(s.R)
		if err != nil {
			return nil, fmt.Errorf("%w: reading byte stream: %w", ErrMalformedInput, err)
		}

		return data, nil
	case CharStream:
		if s.R == nil {
			return nil, fmt.Errorf("%w: nil char stream", ErrUnsupportedSourceType)
		}

		text, err := readRunes(s.R)
		if err != nil {
			return nil, fmt.Errorf("%w: reading char stream: %w", ErrMalformedInput, err)
		}

		return []byte(text), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSourceType, src)
	}
}

func readRunes(r io.RuneReader) (string, error) {
	var builder strings.Builder

	for {
		ch, size, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			return builder.String(), nil
		}

		if err != nil {
			return "", err
		}

		// a real U+FFFD is three bytes wide
		if ch == utf8.RuneError && size <= 1 {
			return "", errInvalidUTF8
		}

		builder.WriteRune(ch)
	}
}
