// Package logging builds structured slog loggers and the attributes used to log paths.
// Output is JSON by default; the text handler is available for local debugging.
// FxLogger adapts a logger to the Fx event logger so DI lifecycle events share the same output.
package logging
