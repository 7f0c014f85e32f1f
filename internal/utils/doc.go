// Package utils exposes the ambient helpers shared by the CLI and the migrator:
// a Viper-backed ConfigurationLoader, a zap LoggerFactory, a context accessor
// for per-command values, and a FlushingWriter for console output.
package utils
