// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached. Every Fetch returns a new
// config.ByteStream positioned at the start of the cached content, so a formatter
// can consume it without affecting later fetches.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.json")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	src, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
