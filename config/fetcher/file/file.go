package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/config"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

var _ config.DataFetcher = (*Fetcher)(nil)

// Fetcher implements config.DataFetcher for file-based configuration.
// The file is read once at construction and served from memory afterwards.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a file-based Fetcher.
// The returned constructor is Fx-friendly: the DI container decides when the file is read.
// It fails if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the Fetcher was built from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a fresh byte stream over the cached file content.
// Each call starts at the beginning; the cache itself is never exposed.
func (f *Fetcher) Fetch() (config.Source, error) {
	return config.ByteStream{R: bytes.NewReader(f.data)}, nil
}
