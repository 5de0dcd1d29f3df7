// Package logging builds the structured slog logger shared by the application and the formatters.
// JSON output is the default; text output is available for local runs.
package logging
