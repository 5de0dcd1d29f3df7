// Package hjarta wires JSON configuration handling into an Fx application.
//
// NewApp supplies a slog logger and a config/formatter/json Formatter to the
// container. Modules added with WithModules can depend on *json.Formatter,
// config.Formatter or config.Parser.
package hjarta
