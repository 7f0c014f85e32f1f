// Package cli constructs the authmigrate command-line interface, wiring the
// Cobra root command, the Viper configuration loader with embedded defaults,
// and zap diagnostics around the migrate command.
package cli
