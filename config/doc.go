// Package config provides format-agnostic configuration contracts.
//
// Raw input is a Source, one of three variants:
//   - ByteStream: UTF-8 bytes behind an io.Reader
//   - CharStream: decoded characters behind an io.RuneReader
//   - Text: an in-memory string
//
// SourceOf maps arbitrary runtime values onto these variants and rejects everything
// else with ErrUnsupportedSourceType.
//
// # Extension points
//
//   - Reader / Writer / Formatter: decode a Source, encode a value
//   - Parser: decode a Source with path navigation support
//   - DataFetcher: obtains the Source (file, static data, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Errors
//
// All read failures wrap ErrNoValue. The finer kinds, ErrMalformedInput,
// ErrUnsupportedSourceType and ErrPathNotFound, stay distinguishable with errors.Is:
//
//	cfg, err := config.ReadAs[map[string]string](formatter, config.Text(`{ hello bob }`))
//	errors.Is(err, config.ErrNoValue)        // true
//	errors.Is(err, config.ErrMalformedInput) // true
//
// # Path Navigation
//
// The Provider function accepts a path parameter that targets a section of the document.
// Paths use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `json:"timeout"`
//	    BaseURL string `json:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(jsonformatter.New(), fetcher)
package config
