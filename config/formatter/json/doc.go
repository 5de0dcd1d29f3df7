// Package json provides a JSON Formatter for the config package.
//
// The Formatter wraps a github.com/json-iterator/go codec. Codec extensions
// (jsoniter.Extension) are registered once, in order, when the Formatter is built;
// the codec is never changed afterwards, so a Formatter is safe for concurrent use.
//
// Usage:
//
//	formatter := json.New(json.WithExtensions(json.FieldNaming(json.SnakeCase)))
//
//	cfg, err := config.ReadAs[map[string]string](formatter, config.Text(`{"test":"json"}`))
//	if errors.Is(err, config.ErrNoValue) {
//	    // malformed content or unsupported source
//	}
//
//	out, err := formatter.Write(cfg) // {"test":"json"}
//
// Output is compact and map keys are sorted. The Formatter also implements
// config.Parser (colon-separated path navigation) and koanf.Parser.
package json
